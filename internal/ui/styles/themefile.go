package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// presetFile is the on-disk YAML shape of a user-defined preset.
type presetFile struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Colors      map[string]string `yaml:"colors"`
}

// LoadUserPresets reads *.yaml files from dir and registers each as a
// preset, keyed by its declared name. A user preset may shadow a
// built-in one. A missing directory is not an error; most users never
// define custom themes.
func LoadUserPresets(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading themes directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		preset, err := loadPresetFile(path)
		if err != nil {
			return fmt.Errorf("loading theme %s: %w", entry.Name(), err)
		}
		Presets[preset.Name] = preset
	}
	return nil
}

func loadPresetFile(path string) (Preset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's own config dir
	if err != nil {
		return Preset{}, err
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Preset{}, fmt.Errorf("parsing yaml: %w", err)
	}

	if pf.Name == "" {
		return Preset{}, fmt.Errorf("theme file must declare a name")
	}

	colors := make(map[ColorToken]string, len(pf.Colors))
	for key, value := range pf.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return Preset{}, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return Preset{}, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	return Preset{Name: pf.Name, Description: pf.Description, Colors: colors}, nil
}
