package project

import "path/filepath"

// Pack and category directory names inside a Bedrock project.
const (
	BehaviorPacksDir = "behavior_packs"
	ResourcePacksDir = "resource_packs"
	CategoryEntity   = "entity"
	CategoryBlocks   = "blocks"
	LangFileName     = "en_US.lang"
)

// BehaviorPack is behavior_packs/<mod_name>.
func (p *Project) BehaviorPack() string {
	return filepath.Join(p.Root, BehaviorPacksDir, p.Meta.ModName)
}

// ResourcePack is resource_packs/<mod_name>.
func (p *Project) ResourcePack() string {
	return filepath.Join(p.Root, ResourcePacksDir, p.Meta.ModName)
}

func (p *Project) EntitiesDir() string {
	return filepath.Join(p.BehaviorPack(), "entities")
}

func (p *Project) BlocksDir() string {
	return filepath.Join(p.BehaviorPack(), "blocks")
}

// EntityFile is the behavior-pack definition of the named entity.
func (p *Project) EntityFile(name string) string {
	return filepath.Join(p.EntitiesDir(), name+".json")
}

// ClientEntityFile is the resource-pack definition of the named entity.
func (p *Project) ClientEntityFile(name string) string {
	return filepath.Join(p.ResourcePack(), "entity", name+".entity.json")
}

func (p *Project) RenderControllerFile(name string) string {
	return filepath.Join(p.ResourcePack(), "render_controllers", name+".render_controllers.json")
}

// ModelsDir is the resource-pack models directory for a category.
func (p *Project) ModelsDir(category string) string {
	return filepath.Join(p.ResourcePack(), "models", category)
}

func (p *Project) ModelFile(name string) string {
	return filepath.Join(p.ModelsDir(CategoryEntity), name+".geo.json")
}

// TexturesDir is the resource-pack textures directory for a category.
func (p *Project) TexturesDir(category string) string {
	return filepath.Join(p.ResourcePack(), "textures", category)
}

// TextureFile is the entity texture with the given extension (".png").
func (p *Project) TextureFile(name, ext string) string {
	return filepath.Join(p.TexturesDir(CategoryEntity), name+ext)
}

// TexturePath is the pack-relative texture reference used inside client
// entity files. It has no extension and always uses forward slashes.
func TexturePath(name string) string {
	return "textures/entity/" + name
}

func (p *Project) LangFile() string {
	return filepath.Join(p.ResourcePack(), "texts", LangFileName)
}

func (p *Project) ManifestFiles() (bp, rp string) {
	return filepath.Join(p.BehaviorPack(), "manifest.json"), filepath.Join(p.ResourcePack(), "manifest.json")
}

// Rel returns path relative to the project root, or path itself when it
// lies outside.
func (p *Project) Rel(path string) string {
	rel, err := filepath.Rel(p.Root, path)
	if err != nil {
		return path
	}
	return rel
}
