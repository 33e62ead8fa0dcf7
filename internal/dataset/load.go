package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KaramelBytes/statloom-cli/internal/logging"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/cockroachdb/errors"
)

// Options selects how a source file is read.
type Options struct {
	Delimiter rune   // CSV only; zero means DefaultDelimiter
	Sheet     string // XLSX only; empty means the first sheet
}

// ReadTable reads path as XLSX when its extension is .xlsx and as CSV
// otherwise.
func ReadTable(path string, opts Options) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, opts.Sheet)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open csv")
		}
		defer f.Close()
		return ReadCSV(f, opts.Delimiter)
	}
}

// Load reads and normalizes path into a collection. Any malformed row fails
// the whole load.
func Load(path string, opts Options) (*match.Collection, error) {
	start := time.Now()
	log := logging.Default().With("source", path)

	t, err := ReadTable(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filepath.Base(path))
	}
	if err := match.CheckHeader(t.Header); err != nil {
		return nil, errors.Wrapf(err, "load %s", filepath.Base(path))
	}
	col, err := match.Normalize(path, t.Rows, t.Lines)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filepath.Base(path))
	}
	log.Debug("dataset loaded", "id", col.ID(), "rows", col.Len(), "elapsed", time.Since(start))
	return col, nil
}
