package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AssetKind selects what ListAssets looks for.
type AssetKind string

const (
	AssetDefinitions AssetKind = "entities"
	AssetModels      AssetKind = "models"
	AssetTextures    AssetKind = "textures"
)

// ErrAssetDirMissing is returned when the directory to list does not exist.
var ErrAssetDirMissing = errors.New("asset directory missing")

// ErrUnknownCategory is returned for categories other than entity and blocks.
var ErrUnknownCategory = errors.New("unknown asset category")

var assetPatterns = map[AssetKind]string{
	AssetDefinitions: "**/*.json",
	AssetModels:      "**/*.geo.json",
	AssetTextures:    "**/*.{png,tga}",
}

// identifierPaths are the gjson paths of a definition's identifier, by
// category.
var identifierPaths = map[string]string{
	CategoryEntity: `minecraft:entity.description.identifier`,
	CategoryBlocks: `minecraft:block.description.identifier`,
}

const geometryIdentifiersPath = `minecraft:geometry.#.description.identifier`

// Asset is a file found by ListAssets.
type Asset struct {
	Name        string   `json:"name"`
	File        string   `json:"file"`
	Path        string   `json:"path"`
	Identifiers []string `json:"identifiers,omitempty"`
}

var titleCaser = cases.Title(language.English)

// DisplayName turns "dire_wolf" into "Dire Wolf".
func DisplayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// AssetDir returns the directory ListAssets reads for kind and category.
func (p *Project) AssetDir(kind AssetKind, category string) (string, error) {
	if category != CategoryEntity && category != CategoryBlocks {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, category)
	}
	switch kind {
	case AssetDefinitions:
		if category == CategoryBlocks {
			return p.BlocksDir(), nil
		}
		return p.EntitiesDir(), nil
	case AssetModels:
		return p.ModelsDir(category), nil
	case AssetTextures:
		return p.TexturesDir(category), nil
	default:
		return "", fmt.Errorf("unknown asset kind %q", kind)
	}
}

// ListAssets lists behavior-pack definitions, models or textures of a
// category, sorted by file path. Identifiers are read from definitions and
// models; unreadable files are listed without them.
func (p *Project) ListAssets(kind AssetKind, category string) ([]Asset, error) {
	dir, err := p.AssetDir(kind, category)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrAssetDirMissing, p.Rel(dir))
	}

	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, assetPatterns[kind], doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(matches)

	assets := make([]Asset, 0, len(matches))
	for _, match := range matches {
		asset := Asset{
			Name: DisplayName(assetStem(path.Base(match))),
			File: match,
			Path: filepath.Join(dir, filepath.FromSlash(match)),
		}
		switch kind {
		case AssetDefinitions:
			asset.Identifiers = readIdentifiers(fsys, match, identifierPaths[category])
		case AssetModels:
			asset.Identifiers = readIdentifiers(fsys, match, geometryIdentifiersPath)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func readIdentifiers(fsys fs.FS, name, gjsonPath string) []string {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil
	}
	result := gjson.GetBytes(jsonc.ToJSON(data), gjsonPath)
	if !result.Exists() {
		return nil
	}
	var ids []string
	if result.IsArray() {
		for _, r := range result.Array() {
			if r.Type == gjson.String {
				ids = append(ids, r.String())
			}
		}
		return ids
	}
	if result.Type == gjson.String {
		ids = append(ids, result.String())
	}
	return ids
}

// assetStem strips the asset's extension, including double extensions
// like .geo.json and .entity.json.
func assetStem(base string) string {
	for _, suffix := range []string{".geo.json", ".entity.json", ".render_controllers.json"} {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
