// Package entity generates the behavior-pack, client-entity, render
// controller and model files of a new custom entity from JSON templates.
package entity

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/gorewood/minecorg/internal/project"
)

// Placeholder values and keys used by the entity templates.
const (
	PlaceholderID               = "namespace:entity"
	PlaceholderName             = "entity"
	PlaceholderTexture          = "textures/entity/entity"
	PlaceholderGeometry         = "geometry.entity"
	PlaceholderRenderController = "controller.render.entity"
)

var nameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var (
	// ErrInvalidName is returned for names that are not lower snake case.
	ErrInvalidName = errors.New("entity name must start with a letter and contain only a-z, 0-9 and _")
	// ErrEmptyTemplate is returned when a required template loads empty.
	ErrEmptyTemplate = errors.New("template is empty or missing")
	// ErrExists is returned when the entity is already defined.
	ErrExists = errors.New("entity already exists")
	// ErrUnsupportedTexture is returned for texture files Bedrock cannot use.
	ErrUnsupportedTexture = errors.New("texture must be a .png or .tga file")
)

// Entity identifies a custom entity.
type Entity struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	ID        string `json:"id"`
}

// New validates name and builds the entity's namespaced identifier.
func New(name, namespace string) (Entity, error) {
	if !nameRe.MatchString(name) {
		return Entity{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if namespace == "" {
		return Entity{}, errors.New("project namespace is empty")
	}
	return Entity{Name: name, Namespace: namespace, ID: namespace + ":" + name}, nil
}

// DisplayName is the human-readable name used in lang files.
func (e Entity) DisplayName() string {
	return project.DisplayName(e.Name)
}

// GeometryID is the model identifier, geometry.<name>.
func (e Entity) GeometryID() string {
	return "geometry." + e.Name
}

// RenderControllerID is controller.render.<name>.
func (e Entity) RenderControllerID() string {
	return "controller.render." + e.Name
}

// LangEntries are the entity and spawn egg names.
func (e Entity) LangEntries() []project.LangEntry {
	return []project.LangEntry{
		{Key: "entity." + e.ID + ".name", Value: e.DisplayName()},
		{Key: "item.spawn_egg.entity." + e.ID + ".name", Value: "Spawn " + e.DisplayName()},
	}
}
