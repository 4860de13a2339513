package entity

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
	"go.uber.org/zap"

	"github.com/gorewood/minecorg/internal/jsontree"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/rewrite"
	"github.com/gorewood/minecorg/internal/templates"
)

// File kinds in a Plan.
const (
	KindBehavior         = "behavior_entity"
	KindClient           = "client_entity"
	KindRenderController = "render_controller"
	KindModel            = "model"
	KindTexture          = "texture"
)

// Model sources.
const (
	ModelFromFlag    = "file"
	ModelFromProject = "project"
	ModelFromBuiltin = "template"
)

// Options control entity generation.
type Options struct {
	Name        string
	ModelPath   string // model to use instead of the project's or the template
	TexturePath string // texture to copy into the resource pack
	Force       bool   // replace an existing entity definition
}

// File is one output of a Plan. JSON outputs carry Tree; copied files
// carry Data.
type File struct {
	Kind string         `json:"kind"`
	Path string         `json:"path"`
	Tree jsontree.Value `json:"-"`
	Data []byte         `json:"-"`
}

// Plan is every change needed for a new entity, computed before anything
// is written.
type Plan struct {
	Entity      Entity              `json:"entity"`
	ModelSource string              `json:"model_source"`
	Files       []File              `json:"files"`
	Lang        []project.LangEntry `json:"-"`

	project *project.Project
}

// Generator builds Plans from templates.
type Generator struct {
	loader *templates.Loader
	logger *zap.Logger
}

// NewGenerator returns a Generator reading templates from loader.
func NewGenerator(loader *templates.Loader, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{loader: loader, logger: logger}
}

// Plan validates opts and computes every output file. Nothing is written.
func (g *Generator) Plan(ctx context.Context, p *project.Project, opts Options) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ent, err := New(opts.Name, p.Meta.Namespace)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(p.EntityFile(ent.Name)); err == nil && !opts.Force {
		return nil, fmt.Errorf("%w: %s", ErrExists, p.Rel(p.EntityFile(ent.Name)))
	}

	plan := &Plan{Entity: ent, Lang: ent.LangEntries(), project: p}

	// The model goes first: an unrecognized model aborts before any other
	// template work.
	model, source, err := g.model(p, ent, opts.ModelPath)
	if err != nil {
		return nil, err
	}
	plan.ModelSource = source

	behavior, err := g.behavior(ent)
	if err != nil {
		return nil, err
	}
	client, err := g.client(ent)
	if err != nil {
		return nil, err
	}
	controllers, err := g.renderControllers(ent)
	if err != nil {
		return nil, err
	}

	plan.Files = append(plan.Files,
		File{Kind: KindBehavior, Path: p.EntityFile(ent.Name), Tree: behavior},
		File{Kind: KindClient, Path: p.ClientEntityFile(ent.Name), Tree: client},
		File{Kind: KindRenderController, Path: p.RenderControllerFile(ent.Name), Tree: controllers},
		File{Kind: KindModel, Path: p.ModelFile(ent.Name), Tree: model},
	)

	if opts.TexturePath != "" {
		texture, err := readTexture(p, ent, opts.TexturePath)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, texture)
	}

	g.logger.Debug("entity planned",
		zap.String("id", ent.ID),
		zap.String("model_source", source),
		zap.Int("files", len(plan.Files)))
	return plan, nil
}

func (g *Generator) required(name string) (jsontree.Value, error) {
	tree := g.loader.Load(name)
	if tree.IsEmptyObject() {
		return jsontree.Value{}, fmt.Errorf("%w: %s", ErrEmptyTemplate, name)
	}
	return tree, nil
}

func (g *Generator) behavior(ent Entity) (jsontree.Value, error) {
	tmpl, err := g.required(templates.Entity)
	if err != nil {
		return jsontree.Value{}, err
	}
	return rewrite.SubstituteValues(tmpl,
		[]string{PlaceholderID, PlaceholderName},
		[]string{ent.ID, ent.Name})
}

func (g *Generator) client(ent Entity) (jsontree.Value, error) {
	tmpl, err := g.required(templates.ClientEntity)
	if err != nil {
		return jsontree.Value{}, err
	}
	return rewrite.SubstituteValues(tmpl,
		[]string{PlaceholderID, PlaceholderTexture, PlaceholderGeometry, PlaceholderRenderController},
		[]string{ent.ID, project.TexturePath(ent.Name), ent.GeometryID(), ent.RenderControllerID()})
}

func (g *Generator) renderControllers(ent Entity) (jsontree.Value, error) {
	tmpl, err := g.required(templates.RenderControllers)
	if err != nil {
		return jsontree.Value{}, err
	}
	return rewrite.RenameKey(tmpl, PlaceholderRenderController, ent.RenderControllerID()), nil
}

// model resolves the geometry file: an explicit path, the model already in
// the project, or the built-in template. Its identifier is rewritten to
// geometry.<name>.
func (g *Generator) model(p *project.Project, ent Entity, modelPath string) (jsontree.Value, string, error) {
	var (
		tree   jsontree.Value
		source string
		from   string
		err    error
	)
	existing := p.ModelFile(ent.Name)
	switch {
	case modelPath != "":
		source, from = ModelFromFlag, modelPath
		tree, err = readJSON(modelPath)
	case fileExists(existing):
		source, from = ModelFromProject, p.Rel(existing)
		tree, err = readJSON(existing)
	default:
		source, from = ModelFromBuiltin, templates.Geometry
		tree, err = g.required(templates.Geometry)
	}
	if err != nil {
		return jsontree.Value{}, "", err
	}

	rewritten, err := rewrite.GeometryIdentifier(tree, ent.GeometryID())
	if err != nil {
		return jsontree.Value{}, "", fmt.Errorf("%s: %w", from, err)
	}
	return rewritten, source, nil
}

func readJSON(path string) (jsontree.Value, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a model chosen by the user
	if err != nil {
		return jsontree.Value{}, fmt.Errorf("reading model: %w", err)
	}
	tree, err := jsontree.Parse(jsonc.ToJSON(data))
	if err != nil {
		return jsontree.Value{}, fmt.Errorf("parsing model %s: %w", path, err)
	}
	return tree, nil
}

func readTexture(p *project.Project, ent Entity, path string) (File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".tga" {
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedTexture, path)
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is a texture chosen by the user
	if err != nil {
		return File{}, fmt.Errorf("reading texture: %w", err)
	}
	return File{Kind: KindTexture, Path: p.TextureFile(ent.Name, ext), Data: data}, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Write writes every planned file and appends the lang entries. It returns
// the project-relative paths written. Files are written in place: a
// failure part way leaves earlier files behind.
func (pl *Plan) Write() ([]string, error) {
	written := make([]string, 0, len(pl.Files)+1)
	for _, f := range pl.Files {
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil { //nolint:gosec // pack directories are shared with the game
			return written, fmt.Errorf("creating %s: %w", filepath.Dir(f.Path), err)
		}
		var err error
		if f.Data != nil {
			err = os.WriteFile(f.Path, f.Data, 0o644) //nolint:gosec // pack files are meant to be readable
		} else {
			err = jsontree.WriteFile(f.Path, f.Tree)
		}
		if err != nil {
			return written, fmt.Errorf("writing %s: %w", pl.project.Rel(f.Path), err)
		}
		written = append(written, pl.project.Rel(f.Path))
	}

	added, err := pl.project.AppendLang(pl.Lang)
	if err != nil {
		return written, err
	}
	if len(added) > 0 {
		written = append(written, pl.project.Rel(pl.project.LangFile()))
	}
	return written, nil
}

// Paths returns the project-relative output paths.
func (pl *Plan) Paths() []string {
	paths := make([]string, 0, len(pl.Files))
	for _, f := range pl.Files {
		paths = append(paths, pl.project.Rel(f.Path))
	}
	return paths
}
