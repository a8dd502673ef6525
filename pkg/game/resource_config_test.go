package game

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadResourceConfig tests loading the bundled YAML resource configuration
func TestLoadResourceConfig(t *testing.T) {
	configPath := "../../data/resources.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Skip("Skipping test - resource config file not found:", configPath)
	}

	rm := NewResourceManager(nil, "")
	if err := rm.LoadResourceConfig(configPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	if rm.config == nil {
		t.Fatal("Config is nil after loading")
	}
	if rm.config.BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", rm.config.BasePath)
	}
	if _, exists := rm.config.Groups["init"]; !exists {
		t.Error("Expected group 'init' not found in config")
	}

	expected := map[string]string{
		"FONT_TELUGU":   "assets/fonts/NotoSansTelugu-Regular.ttf",
		"SOUND_SUCCESS": "assets/sounds/success.wav",
		"SOUND_ERROR":   "assets/sounds/error.wav",
	}
	for id, want := range expected {
		got, exists := rm.ResourcePath(id)
		if !exists {
			t.Errorf("Expected resource ID '%s' not found in resource map", id)
			continue
		}
		if got != want {
			t.Errorf("ResourcePath(%s) = %q, want %q", id, got, want)
		}
	}
}

func writeResourceConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write resource config: %v", err)
	}
	return path
}

// TestLoadResourceConfig_AssetsDirOverride tests that -assets replaces base_path
func TestLoadResourceConfig_AssetsDirOverride(t *testing.T) {
	path := writeResourceConfig(t, `
base_path: assets
groups:
  init:
    sounds:
      - id: SOUND_CLICK
        path: sounds/click
    images:
      - id: IMAGE_LOGO
        path: images/logo
`)

	rm := NewResourceManager(nil, "/opt/vantalu")
	if err := rm.LoadResourceConfig(path); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	if got, _ := rm.ResourcePath("SOUND_CLICK"); got != "/opt/vantalu/sounds/click.wav" {
		t.Errorf("Expected default .wav extension under override, got %q", got)
	}
	if got, _ := rm.ResourcePath("IMAGE_LOGO"); got != "/opt/vantalu/images/logo.png" {
		t.Errorf("Expected default .png extension under override, got %q", got)
	}
	if got := rm.ImagePath("rice.png"); got != "/opt/vantalu/images/rice.png" {
		t.Errorf("ImagePath under override = %q", got)
	}
}

// TestLoadResourceConfig_Errors tests unreadable and malformed configs
func TestLoadResourceConfig_Errors(t *testing.T) {
	rm := NewResourceManager(nil, "")

	if err := rm.LoadResourceConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config")
	}

	bad := writeResourceConfig(t, "groups: [unclosed\n")
	if err := rm.LoadResourceConfig(bad); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

// TestLoadResourceGroup tests group preloading errors
func TestLoadResourceGroup(t *testing.T) {
	rm := NewResourceManager(nil, "")
	if err := rm.LoadResourceGroup("init"); err == nil {
		t.Error("Expected error when config is not loaded")
	}

	assetsDir := t.TempDir()
	if err := createTestImage(filepath.Join(assetsDir, "images", "logo.png")); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	path := writeResourceConfig(t, `
groups:
  images_only:
    images:
      - id: IMAGE_LOGO
        path: images/logo.png
  with_sound:
    sounds:
      - id: SOUND_SUCCESS
        path: sounds/success.wav
`)
	rm = NewResourceManager(nil, assetsDir)
	if err := rm.LoadResourceConfig(path); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	if err := rm.LoadResourceGroup("missing"); err == nil {
		t.Error("Expected error for unknown group")
	}
	if err := rm.LoadResourceGroup("images_only"); err != nil {
		t.Errorf("Expected images_only group to load, got %v", err)
	}
	if err := rm.LoadResourceGroup("with_sound"); err == nil {
		t.Error("Expected error for a group whose sound cannot be loaded")
	}
}

// TestBuildFullPath tests the buildFullPath helper function
func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		basePath     string
		relativePath string
		expected     string
	}{
		{"assets", "images/rice.png", "assets/images/rice.png"},
		{"assets", "/images/rice.png", "assets/images/rice.png"},
		{"", "images/rice.png", "images/rice.png"},
		{"assets", "sounds/success", "assets/sounds/success"},
	}

	for _, test := range tests {
		result := buildFullPath(test.basePath, test.relativePath)
		if result != test.expected {
			t.Errorf("buildFullPath(%q, %q) = %q, expected %q",
				test.basePath, test.relativePath, result, test.expected)
		}
	}
}
