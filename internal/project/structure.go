package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gorewood/minecorg/internal/jsontree"
)

// FileMarker is the folder structure value that marks an empty file.
const FileMarker = "file"

// ErrUnknownPlaceholder is returned when a structure name uses a
// placeholder with no value.
var ErrUnknownPlaceholder = errors.New("unknown placeholder")

// ErrInvalidName is returned when an expanded structure name is not a plain
// file name.
var ErrInvalidName = errors.New("invalid structure name")

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Item is one file or directory of a folder structure, relative to the
// project root.
type Item struct {
	Path string `json:"path"`
	Dir  bool   `json:"dir"`
}

// ExpandName replaces {name} placeholders from vars.
func ExpandName(name string, vars map[string]string) (string, error) {
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(name, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := vars[key]
		if !ok {
			missing = append(missing, key)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w %q in %q", ErrUnknownPlaceholder, missing[0], name)
	}
	if out == "" || out == "." || out == ".." || strings.ContainsAny(out, `/\`) {
		return "", fmt.Errorf("%w: %q expands to %q", ErrInvalidName, name, out)
	}
	return out, nil
}

// visit walks a structure tree depth-first in document order. Values that
// are neither the file marker nor an object are skipped. When fn returns
// descend=false for a directory its children are not visited.
func visit(tree jsontree.Value, rel string, vars map[string]string, fn func(Item) (descend bool, err error)) error {
	obj, ok := tree.AsObject()
	if !ok {
		return nil
	}
	for _, m := range obj.Members() {
		name, err := ExpandName(m.Key, vars)
		if err != nil {
			return err
		}
		path := filepath.Join(rel, name)

		if s, ok := m.Value.AsString(); ok && s == FileMarker {
			if _, err := fn(Item{Path: path}); err != nil {
				return err
			}
			continue
		}
		if m.Value.Kind() != jsontree.KindObject {
			continue
		}
		descend, err := fn(Item{Path: path, Dir: true})
		if err != nil {
			return err
		}
		if descend {
			if err := visit(m.Value, path, vars, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateStructure creates the directories and empty files described by
// tree under root and returns the items it created. Existing items are
// left alone, so running it twice is harmless.
func CreateStructure(root string, tree jsontree.Value, vars map[string]string) ([]Item, error) {
	var created []Item
	err := visit(tree, "", vars, func(item Item) (bool, error) {
		full := filepath.Join(root, item.Path)
		if item.Dir {
			if info, err := os.Stat(full); err == nil && info.IsDir() {
				return true, nil
			}
			if err := os.MkdirAll(full, 0o755); err != nil { //nolint:gosec // project directories are shared with the game
				return false, fmt.Errorf("creating directory %s: %w", full, err)
			}
			created = append(created, item)
			return true, nil
		}

		f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644) //nolint:gosec // path comes from the structure template
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("creating file %s: %w", full, err)
		}
		if err := f.Close(); err != nil {
			return false, fmt.Errorf("closing %s: %w", full, err)
		}
		created = append(created, item)
		return false, nil
	})
	return created, err
}

// ScanStructure returns the items of tree missing under root. A file is
// missing unless a regular file exists at its path; a missing directory
// is reported once without its children.
func ScanStructure(root string, tree jsontree.Value, vars map[string]string) ([]Item, error) {
	var missing []Item
	err := visit(tree, "", vars, func(item Item) (bool, error) {
		info, err := os.Stat(filepath.Join(root, item.Path))
		present := err == nil && (item.Dir && info.IsDir() || !item.Dir && info.Mode().IsRegular())
		if !present {
			missing = append(missing, item)
			return false, nil
		}
		return item.Dir, nil
	})
	return missing, err
}
