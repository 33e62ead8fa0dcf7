// Package workspace keeps named dataset registrations so commands can refer
// to a source file by name instead of by path.
package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/KaramelBytes/statloom-cli/internal/dataset"
	"github.com/KaramelBytes/statloom-cli/internal/utils"
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

const registryFileName = "datasets.json"

var (
	ErrNotFound = errors.New("dataset not registered")
	ErrExists   = errors.New("dataset already registered")
)

// Entry is one registered dataset.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Delimiter string    `json:"delimiter,omitempty"`
	Sheet     string    `json:"sheet,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Registry is the datasets.json file of a workspace directory.
type Registry struct {
	Datasets  map[string]*Entry `json:"datasets"`
	UpdatedAt time.Time         `json:"updated_at"`

	dir string
}

// Open loads the registry in dir. A missing file yields an empty registry.
func Open(dir string) (*Registry, error) {
	r := &Registry{Datasets: make(map[string]*Entry), dir: dir}
	b, err := os.ReadFile(filepath.Join(dir, registryFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, nil
		}
		return nil, errors.Wrap(err, "read registry")
	}
	if err := sonic.Unmarshal(b, r); err != nil {
		return nil, errors.Wrap(err, "parse registry")
	}
	if r.Datasets == nil {
		r.Datasets = make(map[string]*Entry)
	}
	return r, nil
}

// Dir returns the on-disk workspace directory.
func (r *Registry) Dir() string { return r.dir }

// Save writes datasets.json using atomic write.
func (r *Registry) Save() error {
	if r.dir == "" {
		return errors.New("workspace directory not set")
	}
	if err := utils.EnsureDir(r.dir); err != nil {
		return errors.Wrap(err, "ensure dir")
	}
	r.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(r)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(r.dir, registryFileName), data)
}

func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Add registers path under name. The path is stored absolute and must exist.
func (r *Registry) Add(name, path, delimiter, sheet string) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("dataset name is required")
	}
	if _, ok := r.Datasets[key(name)]; ok {
		return nil, errors.Wrapf(ErrExists, "%s", name)
	}
	if _, err := dataset.ParseDelimiter(delimiter); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve path")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrap(err, "stat dataset")
	}
	if info.IsDir() {
		return nil, errors.Newf("%s is a directory", abs)
	}
	e := &Entry{
		ID:        uuid.NewString(),
		Name:      name,
		Path:      abs,
		Delimiter: delimiter,
		Sheet:     sheet,
		AddedAt:   time.Now(),
	}
	r.Datasets[key(name)] = e
	return e, nil
}

// Get looks a dataset up by name, case-insensitively.
func (r *Registry) Get(name string) (*Entry, error) {
	if e, ok := r.Datasets[key(name)]; ok {
		return e, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "%s", name)
}

// Remove drops a registration. The file itself is left alone.
func (r *Registry) Remove(name string) error {
	if _, ok := r.Datasets[key(name)]; !ok {
		return errors.Wrapf(ErrNotFound, "%s", name)
	}
	delete(r.Datasets, key(name))
	return nil
}

// List returns the entries sorted by name.
func (r *Registry) List() []*Entry {
	out := make([]*Entry, 0, len(r.Datasets))
	for _, e := range r.Datasets {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i].Name) < key(out[j].Name) })
	return out
}
