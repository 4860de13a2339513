package scaffold

import (
	"errors"
	"fmt"

	"github.com/gorewood/minecorg/internal/project"
	"github.com/gorewood/minecorg/internal/templates"
)

// ErrNoStructure is returned when folder_structure.json is empty or missing.
var ErrNoStructure = errors.New("template " + templates.FolderStructure + " is empty or missing")

// Scan lists the folder structure items missing from an existing project.
// A missing directory is reported once; its children are not listed.
func (s *Scaffolder) Scan(p *project.Project) ([]project.Item, error) {
	tree := s.loader.Load(templates.FolderStructure)
	if tree.IsEmptyObject() {
		return nil, ErrNoStructure
	}
	missing, err := project.ScanStructure(p.Root, tree, p.Meta.Vars())
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", p.Root, err)
	}
	s.logger.Debug("scanned project structure")
	return missing, nil
}

// Repair creates the folder structure items missing from an existing
// project and returns what it created. Existing files are left alone.
func (s *Scaffolder) Repair(p *project.Project) ([]project.Item, error) {
	tree := s.loader.Load(templates.FolderStructure)
	if tree.IsEmptyObject() {
		return nil, ErrNoStructure
	}
	created, err := project.CreateStructure(p.Root, tree, p.Meta.Vars())
	if err != nil {
		return created, fmt.Errorf("repairing %s: %w", p.Root, err)
	}
	return created, nil
}
