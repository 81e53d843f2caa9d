// Package project loads the minic.toml project manifest.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up in the working directory.
const ManifestName = "minic.toml"

// CheckConfig configures the check pipeline.
type CheckConfig struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	WarnUnused     bool `toml:"warn_unused"`
}

// OutputConfig configures CLI rendering.
type OutputConfig struct {
	Color string `toml:"color"` // auto | on | off
}

// Manifest mirrors minic.toml. All fields are optional; zero values
// mean "use the CLI default".
type Manifest struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

// Load reads a manifest from path. A missing file is not an error:
// the zero Manifest is returned so CLI defaults apply.
func Load(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, fmt.Errorf("read manifest %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &m); err != nil {
		return m, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := validate(m); err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Discover loads the manifest from dir, falling back to defaults when
// dir has no minic.toml.
func Discover(dir string) (Manifest, error) {
	return Load(filepath.Join(dir, ManifestName))
}

// ResolveColor merges the --color flag with the manifest setting. An
// explicitly set flag wins; otherwise a non-empty manifest value applies.
// The result is always one of auto, on, off.
func ResolveColor(flagValue string, flagSet bool, m Manifest) string {
	if !flagSet && m.Output.Color != "" {
		return m.Output.Color
	}
	if flagValue == "" {
		return "auto"
	}
	return flagValue
}

func validate(m Manifest) error {
	if m.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("check.max_diagnostics must be >= 0, got %d", m.Check.MaxDiagnostics)
	}
	switch m.Output.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("output.color must be auto, on or off, got %q", m.Output.Color)
	}
	return nil
}
