package config

import (
	"fmt"
	"path/filepath"
	"sort"
)

// AssetType represents the type of asset
type AssetType string

const (
	AssetTypeTexture AssetType = "texture"
	AssetTypeFont    AssetType = "font"
)

// Asset IDs known to the renderer.
const (
	AssetBird           = "bird"
	AssetBirdUp         = "bird_up"
	AssetBirdTiltDown   = "bird_tilt_down"
	AssetBirdDown       = "bird_down"
	AssetBirdKO         = "bird_ko"
	AssetBackground     = "background"
	AssetBackgroundKO   = "background_ko"
	AssetMenuBackground = "menu_background"
	AssetPipe           = "pipe"
	AssetFont           = "font"
)

// AssetEntry names one file on disk
type AssetEntry struct {
	Type AssetType `yaml:"type"`
	Path string    `yaml:"path"`
}

// AssetManifest maps asset IDs to files. Relative paths are resolved
// against Root.
type AssetManifest struct {
	Root     string                `yaml:"root"`
	FontSize float64               `yaml:"font_size"`
	Entries  map[string]AssetEntry `yaml:"entries"`
}

// DefaultAssetManifest returns the stock asset layout
func DefaultAssetManifest() AssetManifest {
	return AssetManifest{
		Root:     "assets",
		FontSize: 48,
		Entries: map[string]AssetEntry{
			AssetBird:           {Type: AssetTypeTexture, Path: "images/flappy.png"},
			AssetBirdUp:         {Type: AssetTypeTexture, Path: "images/flappy_45.png"},
			AssetBirdTiltDown:   {Type: AssetTypeTexture, Path: "images/flappy_45-.png"},
			AssetBirdDown:       {Type: AssetTypeTexture, Path: "images/flappy_down.png"},
			AssetBirdKO:         {Type: AssetTypeTexture, Path: "images/flappy_ko.png"},
			AssetBackground:     {Type: AssetTypeTexture, Path: "images/city-bg-long.png"},
			AssetBackgroundKO:   {Type: AssetTypeTexture, Path: "images/city-bg_bw.png"},
			AssetMenuBackground: {Type: AssetTypeTexture, Path: "images/menu-bg.jpg"},
			AssetPipe:           {Type: AssetTypeTexture, Path: "images/pipe.png"},
			AssetFont:           {Type: AssetTypeFont, Path: "fonts/blocks.ttf"},
		},
	}
}

// Path returns the resolved path of an asset
func (m AssetManifest) Path(id string) (string, error) {
	entry, ok := m.Entries[id]
	if !ok {
		return "", fmt.Errorf("asset with ID '%s' does not exist", id)
	}
	if filepath.IsAbs(entry.Path) || m.Root == "" {
		return entry.Path, nil
	}
	return filepath.Join(m.Root, entry.Path), nil
}

// IDsByType lists asset IDs of the given type in stable order
func (m AssetManifest) IDsByType(assetType AssetType) []string {
	ids := []string{}
	for id, entry := range m.Entries {
		if entry.Type == assetType {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Missing returns the IDs whose files are not present according to exists.
func (m AssetManifest) Missing(exists func(string) bool) []string {
	var missing []string
	for id := range m.Entries {
		path, _ := m.Path(id)
		if !exists(path) {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}
