package rewrite

import (
	"errors"

	"github.com/gorewood/minecorg/internal/jsontree"
)

// GeometryKey is the top-level key of a Bedrock geometry (.geo.json) file.
const GeometryKey = "minecraft:geometry"

// ErrStructureNotRecognized is returned by GeometryIdentifier when no
// geometry entry has a description with an identifier.
var ErrStructureNotRecognized = errors.New(
	`geometry structure not recognized: expected "minecraft:geometry"[*].description.identifier`)

// GeometryIdentifier sets description.identifier of every element of the
// "minecraft:geometry" array to identifier. Elements without that shape
// are copied unchanged. Unlike the generic rewrites, finding nothing to
// rewrite is an error.
func GeometryIdentifier(tree jsontree.Value, identifier string) (jsontree.Value, error) {
	root, ok := tree.AsObject()
	if !ok {
		return jsontree.Value{}, ErrStructureNotRecognized
	}
	geometry, ok := root.Get(GeometryKey)
	if !ok {
		return jsontree.Value{}, ErrStructureNotRecognized
	}
	elems, ok := geometry.AsArray()
	if !ok {
		return jsontree.Value{}, ErrStructureNotRecognized
	}

	rewritten := 0
	out := make([]jsontree.Value, len(elems))
	for i, elem := range elems {
		out[i] = jsontree.Clone(elem)
		if setIdentifier(out[i], identifier) {
			rewritten++
		}
	}
	if rewritten == 0 {
		return jsontree.Value{}, ErrStructureNotRecognized
	}

	result := jsontree.Clone(tree)
	resultObj, _ := result.AsObject()
	resultObj.Set(GeometryKey, jsontree.NewArray(out...))
	return result, nil
}

// setIdentifier overwrites elem.description.identifier in place.
func setIdentifier(elem jsontree.Value, identifier string) bool {
	obj, ok := elem.AsObject()
	if !ok {
		return false
	}
	desc, ok := obj.Get("description")
	if !ok {
		return false
	}
	descObj, ok := desc.AsObject()
	if !ok || !descObj.Has("identifier") {
		return false
	}
	descObj.Set("identifier", jsontree.String(identifier))
	return true
}

// GeometryIdentifiers returns the description identifiers found in a
// geometry file, in order.
func GeometryIdentifiers(tree jsontree.Value) []string {
	var ids []string
	root, ok := tree.AsObject()
	if !ok {
		return nil
	}
	geometry, _ := root.Get(GeometryKey)
	elems, _ := geometry.AsArray()
	for _, elem := range elems {
		obj, ok := elem.AsObject()
		if !ok {
			continue
		}
		desc, _ := obj.Get("description")
		descObj, ok := desc.AsObject()
		if !ok {
			continue
		}
		if id, ok := descObj.Get("identifier"); ok {
			if s, ok := id.AsString(); ok {
				ids = append(ids, s)
			}
		}
	}
	return ids
}
