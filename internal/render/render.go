// Package render turns reports into text, JSON or YAML for the terminal.
package render

import (
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []Format{Text, JSON, YAML}

// ParseFormat accepts text, json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", errors.Newf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Renderer writes values in one format. Color only affects Text.
type Renderer struct {
	W      io.Writer
	Format Format
	Color  bool
}

func New(w io.Writer, f Format, color bool) *Renderer {
	return &Renderer{W: w, Format: f, Color: color}
}

// Render writes v. Text output knows the report types of this module and
// falls back to YAML for anything else.
func (r *Renderer) Render(v any) error {
	switch r.Format {
	case JSON:
		b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		b = append(b, '\n')
		_, err = r.W.Write(b)
		return err
	case YAML:
		return r.yaml(v)
	default:
		s, ok := r.text(v)
		if !ok {
			return r.yaml(v)
		}
		_, err := io.WriteString(r.W, s)
		return err
	}
}

func (r *Renderer) yaml(v any) error {
	enc := yaml.NewEncoder(r.W)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}
