package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/gorewood/minecorg/internal/entity"
	"github.com/gorewood/minecorg/internal/project"
)

// --- Shared helpers ---

// load resolves the project for a call: the explicit path if given,
// otherwise the server's default root.
func (t *tools) load(path string) (*project.Project, error) {
	root := path
	if root == "" {
		root = t.root
	}
	if root == "" {
		return nil, errors.New("no project path given and the server has no default project")
	}
	p, err := project.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return p, nil
}

// --- project_info tool ---

// ProjectInfoInput is the input for the project_info tool.
type ProjectInfoInput struct {
	Path string `json:"path,omitempty" jsonschema:"project root (defaults to the server's project)"`
}

// ProjectInfoOutput is the output for the project_info tool.
type ProjectInfoOutput struct {
	Root             string `json:"root"               jsonschema:"project root directory"`
	ProjectName      string `json:"project_name"       jsonschema:"human project name"`
	ModName          string `json:"mod_name"           jsonschema:"pack folder name"`
	Namespace        string `json:"namespace"          jsonschema:"identifier namespace"`
	Description      string `json:"description,omitempty" jsonschema:"project description"`
	MinEngineVersion string `json:"min_engine_version" jsonschema:"minimum Bedrock engine version"`
	BehaviorPack     string `json:"behavior_pack"      jsonschema:"behavior pack directory, relative to root"`
	ResourcePack     string `json:"resource_pack"      jsonschema:"resource pack directory, relative to root"`
}

func (t *tools) handleProjectInfo(_ context.Context, _ *mcp.CallToolRequest, input ProjectInfoInput) (*mcp.CallToolResult, ProjectInfoOutput, error) {
	p, err := t.load(input.Path)
	if err != nil {
		return nil, ProjectInfoOutput{}, err
	}
	return nil, ProjectInfoOutput{
		Root:             p.Root,
		ProjectName:      p.Meta.ProjectName,
		ModName:          p.Meta.ModName,
		Namespace:        p.Meta.Namespace,
		Description:      p.Meta.Description,
		MinEngineVersion: p.Meta.EngineVersion(),
		BehaviorPack:     p.Rel(p.BehaviorPack()),
		ResourcePack:     p.Rel(p.ResourcePack()),
	}, nil
}

// --- scan tool ---

// ScanInput is the input for the scan tool.
type ScanInput struct {
	Path string `json:"path,omitempty" jsonschema:"project root (defaults to the server's project)"`
}

// ScanOutput is the output for the scan tool.
type ScanOutput struct {
	Root     string         `json:"root"              jsonschema:"project root directory"`
	Complete bool           `json:"complete"          jsonschema:"true when nothing is missing"`
	Missing  []project.Item `json:"missing,omitempty" jsonschema:"missing files and directories, relative to root"`
}

func (t *tools) handleScan(_ context.Context, _ *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
	p, err := t.load(input.Path)
	if err != nil {
		return nil, ScanOutput{}, err
	}
	missing, err := t.scaffolder.Scan(p)
	if err != nil {
		return nil, ScanOutput{}, err
	}
	return nil, ScanOutput{Root: p.Root, Complete: len(missing) == 0, Missing: missing}, nil
}

// --- list_assets tool ---

// ListAssetsInput is the input for the list_assets tool.
type ListAssetsInput struct {
	Kind     string `json:"kind"               jsonschema:"entities, models or textures"`
	Category string `json:"category,omitempty" jsonschema:"entity or blocks (default entity)"`
	Path     string `json:"path,omitempty"     jsonschema:"project root (defaults to the server's project)"`
}

// ListAssetsOutput is the output for the list_assets tool.
type ListAssetsOutput struct {
	Count  int             `json:"count"  jsonschema:"number of assets found"`
	Assets []project.Asset `json:"assets" jsonschema:"assets sorted by file path"`
}

func (t *tools) handleListAssets(_ context.Context, _ *mcp.CallToolRequest, input ListAssetsInput) (*mcp.CallToolResult, ListAssetsOutput, error) {
	kind := project.AssetKind(input.Kind)
	switch kind {
	case project.AssetDefinitions, project.AssetModels, project.AssetTextures:
	default:
		return nil, ListAssetsOutput{}, fmt.Errorf("kind must be entities, models or textures, got %q", input.Kind)
	}
	category := input.Category
	if category == "" {
		category = project.CategoryEntity
	}

	p, err := t.load(input.Path)
	if err != nil {
		return nil, ListAssetsOutput{}, err
	}
	assets, err := p.ListAssets(kind, category)
	if err != nil {
		return nil, ListAssetsOutput{}, err
	}
	return nil, ListAssetsOutput{Count: len(assets), Assets: assets}, nil
}

// --- new_entity tool ---

// NewEntityInput is the input for the new_entity tool.
type NewEntityInput struct {
	Name        string `json:"name"                   jsonschema:"entity name, lowercase letters, digits and underscores (required)"`
	ModelPath   string `json:"model_path,omitempty"   jsonschema:"geometry file to use instead of the project's or the built-in one"`
	TexturePath string `json:"texture_path,omitempty" jsonschema:"png or tga texture to copy into the resource pack"`
	Force       bool   `json:"force,omitempty"        jsonschema:"replace an existing entity"`
	DryRun      bool   `json:"dry_run,omitempty"      jsonschema:"compute the files without writing them"`
	Path        string `json:"path,omitempty"         jsonschema:"project root (defaults to the server's project)"`
}

// NewEntityOutput is the output for the new_entity tool.
type NewEntityOutput struct {
	ID          string   `json:"id"           jsonschema:"namespaced entity identifier"`
	ModelSource string   `json:"model_source" jsonschema:"where the model came from: file, project or template"`
	Files       []string `json:"files"        jsonschema:"files written, or that would be written in a dry run"`
	Lang        []string `json:"lang"         jsonschema:"lang keys for the entity"`
	DryRun      bool     `json:"dry_run"      jsonschema:"true if nothing was written"`
}

func (t *tools) handleNewEntity(ctx context.Context, _ *mcp.CallToolRequest, input NewEntityInput) (*mcp.CallToolResult, NewEntityOutput, error) {
	if input.Name == "" {
		return nil, NewEntityOutput{}, errors.New("name is required")
	}
	p, err := t.load(input.Path)
	if err != nil {
		return nil, NewEntityOutput{}, err
	}

	plan, err := t.generator.Plan(ctx, p, entity.Options{
		Name:        input.Name,
		ModelPath:   input.ModelPath,
		TexturePath: input.TexturePath,
		Force:       input.Force,
	})
	if err != nil {
		return nil, NewEntityOutput{}, err
	}

	out := NewEntityOutput{
		ID:          plan.Entity.ID,
		ModelSource: plan.ModelSource,
		DryRun:      input.DryRun,
	}
	for _, entry := range plan.Lang {
		out.Lang = append(out.Lang, entry.Key)
	}

	if input.DryRun {
		out.Files = plan.Paths()
		return nil, out, nil
	}

	written, err := plan.Write()
	if err != nil {
		return nil, NewEntityOutput{}, fmt.Errorf("writing entity %s: %w", plan.Entity.ID, err)
	}
	t.logger.Info("entity created", zap.String("id", plan.Entity.ID), zap.Int("files", len(written)))
	out.Files = written
	return nil, out, nil
}
