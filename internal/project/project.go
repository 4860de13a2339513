// Package project reads and writes minecorg project metadata and knows
// where things live inside a Bedrock add-on project.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// MetadataFile is the project metadata file at the project root.
const MetadataFile = "minecorg.json"

// DefaultMinEngineVersion is used when neither the project nor the user
// settings name one.
const DefaultMinEngineVersion = "1.21.0"

// ErrNoProject is returned by Load when the directory has no metadata file.
var ErrNoProject = errors.New("not a minecorg project (no " + MetadataFile + ")")

// Metadata is the content of minecorg.json.
type Metadata struct {
	ProjectName      string `json:"project_name"`
	ModName          string `json:"mod_name"`
	Namespace        string `json:"namespace"`
	Description      string `json:"description,omitempty"`
	MinEngineVersion string `json:"min_engine_version,omitempty"`
}

// Validate checks the metadata against the minecorg.json schema.
func (m Metadata) Validate() error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	return ValidateJSON(data)
}

// EngineVersion returns MinEngineVersion or the default.
func (m Metadata) EngineVersion() string {
	if m.MinEngineVersion != "" {
		return m.MinEngineVersion
	}
	return DefaultMinEngineVersion
}

// Vars returns the placeholder values used in folder structure names.
func (m Metadata) Vars() map[string]string {
	return map[string]string{
		"project_name": m.ProjectName,
		"mod_name":     m.ModName,
		"namespace":    m.Namespace,
	}
}

// Project is a loaded minecorg project.
type Project struct {
	Root string
	Meta Metadata
}

// New returns a Project without touching the filesystem.
func New(root string, meta Metadata) *Project {
	return &Project{Root: root, Meta: meta}
}

// Load reads and validates root/minecorg.json.
func Load(root string) (*Project, error) {
	path := filepath.Join(root, MetadataFile)
	data, err := os.ReadFile(path) //nolint:gosec // path is the project root chosen by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", root, ErrNoProject)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := ValidateJSON(data); err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &Project{Root: root, Meta: meta}, nil
}

// Save validates meta and writes it to root/minecorg.json with 2-space
// indentation.
func Save(root string, meta Metadata) error {
	if err := meta.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(root, MetadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // metadata is meant to be readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether root holds a minecorg.json.
func Exists(root string) bool {
	info, err := os.Stat(filepath.Join(root, MetadataFile))
	return err == nil && info.Mode().IsRegular()
}
