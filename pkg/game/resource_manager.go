package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/vantalu/pkg/embedded"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// DefaultResourceConfigPath is the embedded resource manifest.
const DefaultResourceConfigPath = "data/resources.yaml"

// imagesDir is the sub-directory of the asset root holding ingredient and background images.
const imagesDir = "images"

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, sound effects and fonts,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Asset failures are never fatal: images degrade to solid placeholders,
// fonts degrade to Go Regular and sounds degrade to silence. A path that failed
// once is remembered so the game loop does not hit the disk every frame.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext, "assets")
//	img := rm.LoadImageOrPlaceholder("rice.png", 64, 64, color.White)
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	scaledCache   map[string]*ebiten.Image    // Cache for scaled images or placeholders: name@WxH -> Image
	audioCache    map[string]*audio.Player    // Cache for loaded sound effect players: path -> Player
	audioContext  *audio.Context              // Global audio context for audio decoding, may be nil
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces
	missing       map[string]error            // Paths that failed to load, with the reason

	fallbackSource *text.GoTextFaceSource // Go Regular, created lazily

	// assetsDir overrides base_path from the resource config when not empty
	assetsDir string

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding sound effects.
//     May be nil, in which case every sound silently fails to load.
//   - assetsDir: Root directory of images, sounds and fonts. Empty means use
//     base_path from the resource config.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(audioContext *audio.Context, assetsDir string) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		scaledCache:   make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
		missing:       make(map[string]error),
		assetsDir:     assetsDir,
		resourceMap:   make(map[string]string),
	}
}

// basePath returns the asset root used to resolve relative resource paths.
func (rm *ResourceManager) basePath() string {
	if rm.assetsDir != "" {
		return rm.assetsDir
	}
	if rm.config != nil {
		return rm.config.BasePath
	}
	return ""
}

// ImagePath resolves an image file name (as used in the recipe book) to a file path.
func (rm *ResourceManager) ImagePath(name string) string {
	return buildFullPath(rm.basePath(), imagesDir+"/"+name)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/images/rice.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}
	if err, failed := rm.missing[path]; failed {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, rm.markMissing(path, fmt.Errorf("failed to open image file %s: %w", path, err))
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, rm.markMissing(path, fmt.Errorf("failed to decode image %s: %w", path, err))
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// LoadImageOrPlaceholder loads the named image scaled to width x height.
// When the file is missing or unreadable a solid rectangle of the fallback
// colour is returned instead, so callers can always draw something.
//
// Parameters:
//   - name: Image file name relative to the images directory (e.g., "rice.png").
//   - width, height: Target size in pixels.
//   - fallback: Placeholder colour used when the image cannot be loaded.
//
// Returns:
//   - A non-nil image of exactly width x height pixels.
func (rm *ResourceManager) LoadImageOrPlaceholder(name string, width, height int, fallback color.Color) *ebiten.Image {
	key := fmt.Sprintf("%s@%dx%d", name, width, height)
	if cached, exists := rm.scaledCache[key]; exists {
		return cached
	}

	var result *ebiten.Image
	if name != "" {
		if img, err := rm.LoadImage(rm.ImagePath(name)); err == nil {
			result = utils.ScaleImageTo(img, width, height)
		}
	}
	if result == nil {
		log.Printf("[ResourceManager] Using placeholder for image %q (%dx%d)", name, width, height)
		result = utils.SolidImage(width, height, fallback)
	}

	rm.scaledCache[key] = result
	return result
}

// LoadSoundEffect loads a non-looping sound effect and caches the player.
// Supported formats: WAV (.wav), OGG Vorbis (.ogg) and MP3 (.mp3).
//
// Parameters:
//   - path: The file path to the audio resource (e.g., "assets/sounds/success.wav").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if there is no audio context, the file cannot be read,
//     the format is unsupported or the data cannot be decoded.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if err, failed := rm.missing[path]; failed {
		return nil, err
	}

	if rm.audioContext == nil {
		return nil, rm.markMissing(path, fmt.Errorf("no audio context available for %s", path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, rm.markMissing(path, fmt.Errorf("failed to open sound effect file %s: %w", path, err))
	}
	defer file.Close()

	// Read the entire file into memory so the stream can seek without keeping the file open
	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, rm.markMissing(path, fmt.Errorf("failed to read sound effect file %s: %w", path, err))
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, rm.markMissing(path, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err))
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, rm.markMissing(path, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err))
		}
		stream = decodedStream
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, rm.markMissing(path, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err))
		}
		stream = decodedStream
	default:
		return nil, rm.markMissing(path, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext))
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, rm.markMissing(path, fmt.Errorf("failed to create audio player for %s: %w", path, err))
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates a text face with the given size.
// The font face is cached for future use with a cache key combining path and size.
//
// Parameters:
//   - path: The file path to the font resource (e.g., "assets/fonts/NotoSansTelugu-Regular.ttf").
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be opened or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}
	if err, failed := rm.missing[path]; failed {
		return nil, err
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, rm.markMissing(path, fmt.Errorf("failed to read font file %s: %w", path, err))
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, rm.markMissing(path, fmt.Errorf("failed to create font source for %s: %w", path, err))
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}

// LoadFontOrDefault loads the font registered under fontID with the given size.
// If the ID is unknown or the file cannot be loaded, a Go Regular face is returned.
//
// Parameters:
//   - fontID: Font resource ID (e.g., "FONT_TELUGU").
//   - size: The font size in pixels.
//
// Returns:
//   - A usable text face, never nil.
func (rm *ResourceManager) LoadFontOrDefault(fontID string, size float64) *text.GoTextFace {
	if filePath, exists := rm.resourceMap[fontID]; exists {
		face, err := rm.LoadFont(filePath, size)
		if err == nil {
			return face
		}
		log.Printf("[ResourceManager] Warning: %v (falling back to default font)", err)
	} else {
		log.Printf("[ResourceManager] Warning: font ID not found: %s (falling back to default font)", fontID)
	}

	face, err := rm.defaultFont(size)
	if err != nil {
		// goregular 为内置字体，不会解析失败
		panic(fmt.Sprintf("failed to parse built-in fallback font: %v", err))
	}
	return face
}

// defaultFont returns a Go Regular face of the given size.
func (rm *ResourceManager) defaultFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	if rm.fallbackSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, err
		}
		rm.fallbackSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fallbackSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// markMissing remembers a failed path and returns err unchanged.
func (rm *ResourceManager) markMissing(path string, err error) error {
	rm.missing[path] = err
	return err
}

// LoadResourceConfig loads and parses the YAML resource configuration.
// The embedded copy is used when the path names an embedded data file,
// otherwise the file is read from disk.
//
// Parameters:
//   - configPath: Path to the resource manifest (e.g., "data/resources.yaml").
//
// Returns:
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFileOrDisk(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s (%d resources, base: %s)",
		configPath, len(rm.resourceMap), rm.basePath())
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	FONT_TELUGU -> assets/fonts/NotoSansTelugu-Regular.ttf
//	SOUND_SUCCESS -> assets/sounds/success.wav
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	base := rm.basePath()

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(base, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(base, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav" // Default to WAV for sounds
			}
			rm.resourceMap[sound.ID] = fullPath
		}

		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(base, font.Path)
		}
	}
}

// ResourcePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	path, exists := rm.resourceMap[resourceID]
	return path, exists
}

// LoadResourceGroup preloads all images and sounds in a specified group.
// Fonts are not loaded here as they require a size parameter.
//
// Parameters:
//   - groupName: The name of the resource group (e.g., "init").
//
// Returns:
//   - An error if the group is not found or any resource fails to load.
//     Resources that loaded before the failure stay cached.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImage(rm.resourceMap[img.ID]); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundEffect(rm.resourceMap[sound.ID]); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	return nil
}
