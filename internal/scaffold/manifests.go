package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/gorewood/minecorg/internal/jsontree"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/rewrite"
	"github.com/gorewood/minecorg/internal/templates"
)

// Placeholder strings in the manifest templates.
const (
	phPackName           = "pack_name"
	phPackDescription    = "pack_description"
	phHeaderUUID         = "header_uuid"
	phDataModuleUUID     = "data_module_uuid"
	phScriptModuleUUID   = "script_module_uuid"
	phResourceModuleUUID = "resources_module_uuid"
	phResourcePackUUID   = "resource_pack_uuid"
	phPackAuthor         = "pack_author"
)

// Manifests holds the two generated pack manifests.
type Manifests struct {
	Behavior jsontree.Value
	Resource jsontree.Value
}

// EngineVersion converts "1.21.0" into the [1, 21, 0] array manifests use.
func EngineVersion(version string) (jsontree.Value, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return jsontree.Value{}, fmt.Errorf("invalid min_engine_version %q: %w", version, err)
	}
	return jsontree.NewArray(
		jsontree.Int(int(v.Major())),
		jsontree.Int(int(v.Minor())),
		jsontree.Int(int(v.Patch())),
	), nil
}

// BuildManifests fills the manifest templates. The behavior pack declares
// a dependency on the resource pack's header UUID.
func (s *Scaffolder) BuildManifests(meta project.Metadata, author string) (*Manifests, error) {
	engine, err := EngineVersion(meta.EngineVersion())
	if err != nil {
		return nil, err
	}

	rpTmpl := s.loader.Load(templates.ResourceManifest)
	bpTmpl := s.loader.Load(templates.BehaviorManifest)
	for name, tmpl := range map[string]jsontree.Value{templates.ResourceManifest: rpTmpl, templates.BehaviorManifest: bpTmpl} {
		if tmpl.IsEmptyObject() {
			return nil, fmt.Errorf("template %s is empty or missing", name)
		}
	}

	rpHeader := s.newUUID()
	description := meta.Description
	if description == "" {
		description = meta.ProjectName
	}

	rp, err := rewrite.SubstituteValues(rpTmpl,
		[]string{phPackName, phPackDescription, phHeaderUUID, phResourceModuleUUID, phPackAuthor},
		[]string{meta.ProjectName + " RP", description, rpHeader, s.newUUID(), author})
	if err != nil {
		return nil, err
	}
	bp, err := rewrite.SubstituteValues(bpTmpl,
		[]string{phPackName, phPackDescription, phHeaderUUID, phDataModuleUUID, phScriptModuleUUID, phResourcePackUUID, phPackAuthor},
		[]string{meta.ProjectName + " BP", description, s.newUUID(), s.newUUID(), s.newUUID(), rpHeader, author})
	if err != nil {
		return nil, err
	}

	for _, tree := range []jsontree.Value{rp, bp} {
		if err := finishManifest(tree, engine, author); err != nil {
			return nil, err
		}
	}
	return &Manifests{Behavior: bp, Resource: rp}, nil
}

// finishManifest sets header.min_engine_version and drops the authors
// metadata when there is no author.
func finishManifest(tree, engine jsontree.Value, author string) error {
	root, ok := tree.AsObject()
	if !ok {
		return errors.New("manifest template is not an object")
	}
	header, _ := root.Get("header")
	headerObj, ok := header.AsObject()
	if !ok {
		return errors.New(`manifest template has no "header" object`)
	}
	headerObj.Set("min_engine_version", jsontree.Clone(engine))
	if strings.TrimSpace(author) == "" {
		root.Delete("metadata")
	}
	return nil
}

func (s *Scaffolder) manifestsStep(_ context.Context, opts Options) StepResult {
	p := project.New(opts.Root, opts.Meta)
	bpPath, rpPath := p.ManifestFiles()
	writeBP, writeRP := shouldWrite(bpPath, opts.Force), shouldWrite(rpPath, opts.Force)
	if !writeBP && !writeRP {
		return StepResult{Status: StatusSkipped, Message: "manifests exist"}
	}
	if opts.DryRun {
		return StepResult{Status: StatusDryRun, Message: "would write behavior and resource pack manifests"}
	}

	manifests, err := s.BuildManifests(opts.Meta, opts.Author)
	if err != nil {
		return failed("%v", err)
	}

	var written []string
	if writeRP {
		if err := writeJSON(rpPath, manifests.Resource); err != nil {
			return failed("%v", err)
		}
		written = append(written, p.Rel(rpPath))
	}
	if writeBP {
		if err := writeJSON(bpPath, manifests.Behavior); err != nil {
			return failed("%v", err)
		}
		written = append(written, p.Rel(bpPath))
	}
	return StepResult{Status: StatusOK, Message: "wrote " + strings.Join(written, ", ")}
}
