package game

// ResourceConfig is the resource manifest loaded from data/resources.yaml.
// It maps resource IDs to asset files below base_path.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  init:
//	    fonts: [...]
//	    sounds: [...]
//	    images: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Asset root, overridden by -assets
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a set of resources that are preloaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource is a single image resource definition.
// Path is relative to base_path; ".png" is appended when it has no extension.
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource is a single sound effect definition.
// Path is relative to base_path; ".wav" is appended when it has no extension.
//
// Example:
//   - id: SOUND_SUCCESS
//     path: sounds/success.wav
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// FontResource is a single TrueType/OpenType font definition.
//
// Example:
//   - id: FONT_TELUGU
//     path: fonts/NotoSansTelugu-Regular.ttf
type FontResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath joins the asset root and a resource's relative path.
//
//	buildFullPath("assets", "sounds/success.wav") == "assets/sounds/success.wav"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
