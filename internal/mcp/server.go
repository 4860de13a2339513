// Package mcp provides a Model Context Protocol server for minecorg.
// It exposes project inspection and entity generation as MCP tools so an
// agent can work on an add-on without shelling out to the CLI.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/gorewood/minecorg/internal/entity"
	"github.com/gorewood/minecorg/internal/scaffold"
	"github.com/gorewood/minecorg/internal/templates"
)

// Deps are the collaborators shared by every tool.
type Deps struct {
	// Root is the project directory used when a tool call omits "path".
	Root   string
	Loader *templates.Loader
	Logger *zap.Logger
}

type tools struct {
	root       string
	logger     *zap.Logger
	scaffolder *scaffold.Scaffolder
	generator  *entity.Generator
}

// NewServer creates an MCP server with all minecorg tools registered.
func NewServer(version string, deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "minecorg",
		Version: version,
	}, nil)
	registerTools(server, newTools(deps))
	return server
}

func newTools(deps Deps) *tools {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loader := deps.Loader
	if loader == nil {
		loader = templates.New(templates.WithLogger(logger))
	}
	return &tools{
		root:       deps.Root,
		logger:     logger,
		scaffolder: scaffold.New(loader, scaffold.WithLogger(logger)),
		generator:  entity.NewGenerator(loader, logger),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for new_entity. With force it
// replaces an existing entity, so it is marked destructive.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_info",
		Description: "Read minecorg.json of an add-on project: project name, mod name, namespace, engine version and pack directories.",
		Annotations: readOnlyAnnotations(),
	}, t.handleProjectInfo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "Compare a project against the folder structure template and list missing files and directories.",
		Annotations: readOnlyAnnotations(),
	}, t.handleScan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_assets",
		Description: "List entity definitions, models or textures of the entity or blocks category, with identifiers where available.",
		Annotations: readOnlyAnnotations(),
	}, t.handleListAssets)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "new_entity",
		Description: "Generate a custom entity: behavior and client definitions, render controller, model, optional texture and lang entries. Use dry_run to preview.",
		Annotations: writeAnnotations(),
	}, t.handleNewEntity)
}
