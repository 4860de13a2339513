// Package rewrite turns generic JSON templates into concrete files by
// substituting placeholder values and renaming placeholder keys.
//
// Every function here is pure: the input tree is never modified and the
// returned tree shares no containers with it.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/gorewood/minecorg/internal/jsontree"
)

// ErrLengthMismatch is returned when the old and new value lists passed to
// SubstituteValues differ in length.
var ErrLengthMismatch = errors.New("old and new value lists must have the same length")

// SubstituteValues replaces every string leaf equal to oldValues[i] with
// newValues[i]. Matching is on the full string; other leaf kinds are never
// replaced. Duplicate old values resolve to the last pair. Values with no
// match are ignored.
func SubstituteValues(tree jsontree.Value, oldValues, newValues []string) (jsontree.Value, error) {
	if len(oldValues) != len(newValues) {
		return jsontree.Value{}, fmt.Errorf("%w: %d old, %d new", ErrLengthMismatch, len(oldValues), len(newValues))
	}

	replacements := make(map[string]string, len(oldValues))
	for i, old := range oldValues {
		replacements[old] = newValues[i]
	}
	return substitute(tree, replacements), nil
}

func substitute(v jsontree.Value, replacements map[string]string) jsontree.Value {
	switch v.Kind() {
	case jsontree.KindObject:
		obj, _ := v.AsObject()
		out := jsontree.NewObject()
		for _, m := range obj.Members() {
			out.Set(m.Key, substitute(m.Value, replacements))
		}
		return jsontree.ObjectValue(out)
	case jsontree.KindArray:
		elems, _ := v.AsArray()
		out := make([]jsontree.Value, len(elems))
		for i, e := range elems {
			out[i] = substitute(e, replacements)
		}
		return jsontree.NewArray(out...)
	case jsontree.KindString:
		s, _ := v.AsString()
		if repl, ok := replacements[s]; ok {
			return jsontree.String(repl)
		}
		return v
	default:
		return v
	}
}

// RenameKey renames oldKey to newKey in every object of the tree, at any
// depth. If newKey already exists in an object, its value is replaced by
// the renamed one. Renamed values are themselves searched.
func RenameKey(tree jsontree.Value, oldKey, newKey string) jsontree.Value {
	switch tree.Kind() {
	case jsontree.KindObject:
		obj, _ := tree.AsObject()
		out := jsontree.NewObject()
		for _, m := range obj.Members() {
			out.Set(m.Key, RenameKey(m.Value, oldKey, newKey))
		}
		out.Rename(oldKey, newKey)
		return jsontree.ObjectValue(out)
	case jsontree.KindArray:
		elems, _ := tree.AsArray()
		out := make([]jsontree.Value, len(elems))
		for i, e := range elems {
			out[i] = RenameKey(e, oldKey, newKey)
		}
		return jsontree.NewArray(out...)
	default:
		return tree
	}
}
