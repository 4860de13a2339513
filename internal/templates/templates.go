// Package templates resolves named template files and parses the JSON ones
// into ordered trees.
//
// Templates are looked up in layers, first match wins:
//
//  1. an override directory (templates_dir setting or --templates-dir)
//  2. a templates/ directory next to the installed executable
//  3. the built-in templates embedded in the binary
//
// JSON templates may carry // and /* */ comments.
package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
	"go.uber.org/zap"

	"github.com/gorewood/minecorg/internal/jsontree"
)

// Built-in template names.
const (
	Entity            = "entity.json"
	ClientEntity      = "entity.entity.json"
	RenderControllers = "entity.render_controllers.json"
	Geometry          = "entity.geo.json"
	FolderStructure   = "folder_structure.json"
	PackageJSON       = "package.json"
	BehaviorManifest  = "bp_manifest.json"
	ResourceManifest  = "rp_manifest.json"
	TSConfig          = "tsconfig.json"
	JustConfig        = "just.config.ts"
	ESLintConfig      = "eslint.config.mjs"
	GitIgnore         = "gitignore"
	MainScript        = "main.ts"
)

const installTemplatesSubdir = "templates"

// Source names a template layer.
type Source string

// Template layers, highest priority first.
const (
	SourceOverride Source = "override"
	SourceInstall  Source = "install"
	SourceBuiltin  Source = "built-in"
)

// ErrNotFound is returned when no layer has the named template.
var ErrNotFound = errors.New("template not found")

// Info describes a template for listing.
type Info struct {
	Name      string `json:"name"`
	Source    Source `json:"source"`
	Path      string `json:"path,omitempty"`
	Overrides Source `json:"overrides,omitempty"`
}

type layer struct {
	source Source
	dir    string
	fsys   fs.FS
}

// Loader reads templates from its layers.
type Loader struct {
	layers []layer
	logger *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithOverrideDir adds a directory searched before all others. An empty dir
// is ignored.
func WithOverrideDir(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.layers = append(l.layers, layer{source: SourceOverride, dir: dir, fsys: os.DirFS(dir)})
		}
	}
}

// WithInstallDir sets the directory searched after the override. An empty
// dir disables the layer.
func WithInstallDir(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.layers = append(l.layers, layer{source: SourceInstall, dir: dir, fsys: os.DirFS(dir)})
		}
	}
}

// WithLogger sets the logger used for soft failures.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New returns a Loader over the given layers followed by the built-in
// templates. Options are applied in order, so pass WithOverrideDir before
// WithInstallDir.
func New(opts ...Option) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	l.layers = append(l.layers, layer{source: SourceBuiltin, fsys: Builtin()})
	return l
}

// InstallDir returns the templates/ directory next to the running
// executable, or "" when the executable cannot be located.
func InstallDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), installTemplatesSubdir)
}

// Load reads and parses a JSON template. It never fails: a missing or
// malformed template is logged as a warning and yields an empty Object.
// Callers that need content check IsEmptyObject on the result.
func (l *Loader) Load(name string) jsontree.Value {
	tree, source, err := l.Parse(name)
	if err != nil {
		l.logger.Warn("template unavailable, using empty object",
			zap.String("template", name),
			zap.Error(err))
		return jsontree.EmptyObject()
	}
	l.logger.Debug("template loaded",
		zap.String("template", name),
		zap.String("source", string(source)))
	return tree
}

// Parse is Load with the error returned instead of logged. A malformed
// template in a higher layer is an error; it does not fall through to the
// built-in copy.
func (l *Loader) Parse(name string) (jsontree.Value, Source, error) {
	data, source, err := l.read(name)
	if err != nil {
		return jsontree.Value{}, "", err
	}
	tree, err := jsontree.Parse(jsonc.ToJSON(data))
	if err != nil {
		return jsontree.Value{}, source, fmt.Errorf("parsing %s template %s: %w", source, name, err)
	}
	return tree, source, nil
}

// Raw returns a template's bytes verbatim. Used for non-JSON templates.
func (l *Loader) Raw(name string) ([]byte, error) {
	data, _, err := l.read(name)
	return data, err
}

func (l *Loader) read(name string) ([]byte, Source, error) {
	if !validName(name) {
		return nil, "", fmt.Errorf("%w: invalid name %q", ErrNotFound, name)
	}
	for _, ly := range l.layers {
		data, err := fs.ReadFile(ly.fsys, name)
		if err == nil {
			return data, ly.source, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, ly.source, fmt.Errorf("reading %s template %s: %w", ly.source, name, err)
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// validName accepts plain file names only.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && fs.ValidPath(name)
}

// List returns every available template once, from the layer that wins,
// noting which lower layer it shadows.
func (l *Loader) List() []Info {
	winners := make(map[string]int)
	var infos []Info

	for _, ly := range l.layers {
		entries, err := fs.ReadDir(ly.fsys, ".")
		if err != nil {
			continue // directory might not exist
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if idx, seen := winners[name]; seen {
				if infos[idx].Overrides == "" {
					infos[idx].Overrides = ly.source
				}
				continue
			}
			info := Info{Name: name, Source: ly.source}
			if ly.dir != "" {
				info.Path = filepath.Join(ly.dir, name)
			}
			winners[name] = len(infos)
			infos = append(infos, info)
		}
	}

	sort.SliceStable(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
