package project

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LangEntry is one key=value line of a .lang file.
type LangEntry struct {
	Key   string
	Value string
}

// AppendLang adds entries to the resource-pack lang file, skipping keys it
// already defines. It returns the entries that were added.
func (p *Project) AppendLang(entries []LangEntry) ([]LangEntry, error) {
	return AppendLangFile(p.LangFile(), entries)
}

// AppendLangFile is AppendLang for an explicit file. The file and its
// directory are created when missing.
func AppendLangFile(path string, entries []LangEntry) ([]LangEntry, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // lang file lives inside the project
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	keys := langKeys(existing)
	var buf bytes.Buffer
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		buf.WriteByte('\n')
	}
	var added []LangEntry
	for _, e := range entries {
		if _, ok := keys[e.Key]; ok {
			continue
		}
		keys[e.Key] = struct{}{}
		fmt.Fprintf(&buf, "%s=%s\n", e.Key, e.Value)
		added = append(added, e)
	}
	if len(added) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // pack directories are shared with the game
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // see above
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", path, err)
	}
	return added, nil
}

// langKeys collects the keys defined in a .lang file. Lines starting with
// ## are comments.
func langKeys(data []byte) map[string]struct{} {
	keys := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "##") {
			continue
		}
		if key, _, ok := strings.Cut(line, "="); ok {
			keys[strings.TrimSpace(key)] = struct{}{}
		}
	}
	return keys
}
