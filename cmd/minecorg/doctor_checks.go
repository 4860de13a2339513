package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/gorewood/minecorg/internal/git"
	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/scaffold"
)

// runProjectChecks checks the project in the app root. Later checks need
// valid metadata, so they are skipped when it is missing or invalid.
func runProjectChecks(a *app, flags *doctorFlags) []checkResult {
	p, metaCheck := checkMetadata(a.root)
	if p == nil {
		return []checkResult{metaCheck}
	}
	return []checkResult{
		metaCheck,
		checkStructure(a, p, flags.fix),
		checkManifests(p),
		checkEnv(p, flags.fix),
	}
}

func checkMetadata(root string) (*project.Project, checkResult) {
	p, err := project.Load(root)
	var invalid *project.InvalidError
	switch {
	case err == nil:
		return p, checkResult{
			Name:    "Metadata",
			Status:  checkPass,
			Message: fmt.Sprintf("%s (%s, namespace %s)", project.MetadataFile, p.Meta.ModName, p.Meta.Namespace),
		}
	case errors.Is(err, project.ErrNoProject):
		return nil, checkResult{
			Name:    "Metadata",
			Status:  checkFail,
			Message: project.MetadataFile + " not found in " + root,
			Hint:    "Run 'minecorg init' or 'minecorg load'",
		}
	case errors.As(err, &invalid):
		return nil, checkResult{
			Name:    "Metadata",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix " + project.MetadataFile + " or rerun 'minecorg load --force'",
		}
	default:
		return nil, checkResult{Name: "Metadata", Status: checkFail, Message: err.Error()}
	}
}

func checkStructure(a *app, p *project.Project, fix bool) checkResult {
	s := scaffold.New(a.loader, scaffold.WithLogger(a.logger))
	missing, err := s.Scan(p)
	if err != nil {
		return checkResult{Name: "Folder Structure", Status: checkFail, Message: err.Error()}
	}
	if len(missing) == 0 {
		return checkResult{Name: "Folder Structure", Status: checkPass, Message: "complete"}
	}

	if fix {
		if created, err := s.Repair(p); err == nil {
			return checkResult{
				Name:    "Folder Structure",
				Status:  checkPass,
				Message: fmt.Sprintf("created %s (auto-fixed)", pluralize(len(created), "missing item")),
			}
		}
	}

	names := make([]string, 0, len(missing))
	for _, item := range missing {
		names = append(names, item.Path)
	}
	return checkResult{
		Name:    "Folder Structure",
		Status:  checkWarn,
		Message: pluralize(len(missing), "missing item") + ": " + strings.Join(names, ", "),
		Hint:    "Run 'minecorg doctor --fix' or 'minecorg scan --fix'",
	}
}

// checkManifests checks both pack manifests have header UUIDs and that
// the behavior pack depends on the resource pack.
func checkManifests(p *project.Project) checkResult {
	bpPath, rpPath := p.ManifestFiles()
	bp, err := readManifest(bpPath)
	if err != nil {
		return manifestFailure(p, err)
	}
	rp, err := readManifest(rpPath)
	if err != nil {
		return manifestFailure(p, err)
	}

	rpUUID := gjson.GetBytes(rp, "header.uuid").String()
	linked := false
	for _, dep := range gjson.GetBytes(bp, "dependencies.#.uuid").Array() {
		if dep.String() == rpUUID {
			linked = true
			break
		}
	}
	if !linked {
		return checkResult{
			Name:    "Pack Manifests",
			Status:  checkWarn,
			Message: "behavior pack does not depend on the resource pack header " + rpUUID,
			Hint:    "Add {\"uuid\": \"" + rpUUID + "\", \"version\": [1, 0, 0]} to the BP dependencies",
		}
	}
	return checkResult{
		Name:    "Pack Manifests",
		Status:  checkPass,
		Message: "BP " + gjson.GetBytes(bp, "header.uuid").String() + " depends on RP " + rpUUID,
	}
}

func readManifest(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // manifest inside the project
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s is not valid JSON", path)
	}
	if !gjson.GetBytes(data, "header.uuid").Exists() {
		return nil, fmt.Errorf("%s has no header.uuid", path)
	}
	return data, nil
}

func manifestFailure(p *project.Project, err error) checkResult {
	return checkResult{
		Name:    "Pack Manifests",
		Status:  checkFail,
		Message: strings.ReplaceAll(err.Error(), p.Root+string(os.PathSeparator), ""),
		Hint:    "Run 'minecorg init --force' in the project to regenerate them",
	}
}

func checkEnv(p *project.Project, fix bool) checkResult {
	name, err := project.EnvProjectName(p.Root)
	if err != nil {
		return checkResult{Name: "Build Env", Status: checkFail, Message: err.Error()}
	}
	if name == p.Meta.ModName {
		return checkResult{
			Name:    "Build Env",
			Status:  checkPass,
			Message: project.EnvProjectNameKey + "=" + name,
		}
	}

	if fix {
		if err := project.WriteEnv(p.Root, p.Meta.ModName); err == nil {
			return checkResult{
				Name:    "Build Env",
				Status:  checkPass,
				Message: project.EnvProjectNameKey + "=" + p.Meta.ModName + " (auto-fixed)",
			}
		}
	}

	msg := project.EnvProjectNameKey + " is not set"
	if name != "" {
		msg = fmt.Sprintf("%s=%s does not match mod_name %s", project.EnvProjectNameKey, name, p.Meta.ModName)
	}
	return checkResult{
		Name:    "Build Env",
		Status:  checkWarn,
		Message: msg,
		Hint:    "Run 'minecorg doctor --fix' so the build scripts find the packs",
	}
}

// runTemplateChecks parses every JSON template from the layer that wins.
func runTemplateChecks(a *app) []checkResult {
	var parsed, overridden int
	var broken, empty []string
	for _, info := range a.loader.List() {
		if info.Overrides != "" {
			overridden++
		}
		if !strings.HasSuffix(info.Name, ".json") {
			continue
		}
		tree, _, err := a.loader.Parse(info.Name)
		switch {
		case err != nil:
			broken = append(broken, info.Name)
		case tree.IsEmptyObject():
			empty = append(empty, info.Name)
		default:
			parsed++
		}
	}

	checks := make([]checkResult, 0, 3)
	checks = append(checks, checkResult{
		Name:    "JSON Templates",
		Status:  checkPass,
		Message: fmt.Sprintf("%s parse, %s overridden", pluralize(parsed, "template"), pluralize(overridden, "template")),
	})
	if len(broken) > 0 {
		checks = append(checks, checkResult{
			Name:    "Malformed Templates",
			Status:  checkFail,
			Message: strings.Join(broken, ", "),
			Hint:    "Fix or remove the override; 'minecorg templates' shows where each one comes from",
		})
	}
	if len(empty) > 0 {
		checks = append(checks, checkResult{
			Name:    "Empty Templates",
			Status:  checkWarn,
			Message: strings.Join(empty, ", "),
			Hint:    "Commands using these templates will fail",
		})
	}
	return checks
}

// runToolChecks checks git and the settings file.
func runToolChecks(cmd *cobra.Command, a *app) []checkResult {
	checks := make([]checkResult, 0, 2)

	if v, err := git.Version(cmd.Context()); err == nil && git.Available() {
		checks = append(checks, checkResult{Name: "Git", Status: checkPass, Message: "git " + v})
	} else {
		checks = append(checks, checkResult{
			Name:    "Git",
			Status:  checkWarn,
			Message: "git not found in PATH",
			Hint:    "Only needed for 'minecorg init --git'",
		})
	}

	path := a.store.Path()
	if _, err := os.Stat(path); err == nil {
		checks = append(checks, checkResult{Name: "Settings", Status: checkPass, Message: path})
	} else {
		checks = append(checks, checkResult{
			Name:    "Settings",
			Status:  checkPass,
			Message: "no settings file at " + path + ", using defaults",
		})
	}
	return checks
}
