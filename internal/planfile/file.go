package planfile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kostyll/HudlFfmpeg/internal/settings"
)

// File is the decoded form of a plan document.
type File struct {
	Name    string        `toml:"name"`
	Inputs  []InputEntry  `toml:"inputs"`
	Chains  []ChainEntry  `toml:"chains"`
	Outputs []OutputEntry `toml:"outputs"`
}

// InputEntry registers one input.
type InputEntry struct {
	Locator  string             `toml:"locator"`
	Probe    bool               `toml:"probe"`
	Settings []settings.Setting `toml:"settings"`
}

// ChainEntry applies filters to selected streams.
type ChainEntry struct {
	Name    string        `toml:"name"`
	Streams []string      `toml:"streams"`
	Filters []FilterEntry `toml:"filters"`
}

// OutputEntry maps selected streams to a destination.
type OutputEntry struct {
	Locator  string             `toml:"locator"`
	Streams  []string           `toml:"streams"`
	Settings []settings.Setting `toml:"settings"`
}

// FilterEntry describes one filter. Only the fields relevant to Kind are read.
type FilterEntry struct {
	Kind     string            `toml:"kind"`
	Width    int               `toml:"width"`
	Height   int               `toml:"height"`
	X        string            `toml:"x"`
	Y        string            `toml:"y"`
	Segments int               `toml:"segments"`
	Video    int               `toml:"video"`
	Audio    int               `toml:"audio"`
	Outputs  int               `toml:"outputs"`
	Inputs   int               `toml:"inputs"`
	Start    float64           `toml:"start"`
	End      float64           `toml:"end"`
	Rate     string            `toml:"rate"`
	Preset   string            `toml:"preset"`
	Red      []float64         `toml:"red"`
	Green    []float64         `toml:"green"`
	Blue     []float64         `toml:"blue"`
	Name     string            `toml:"name"`
	Options  map[string]string `toml:"options"`
}

// Parse decodes and checks a plan document. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var file File
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse plan: %w", err)
	}
	if err := file.Validate(); err != nil {
		return File{}, err
	}
	if strings.TrimSpace(file.Name) == "" {
		file.Name = deriveName(file)
	}
	return file, nil
}

// Load reads and parses the plan at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read plan: %w", err)
	}
	return Parse(data)
}

// Validate checks the document structure. Graph rules such as filter arity
// are left to Build.
func (f File) Validate() error {
	if len(f.Inputs) == 0 {
		return fmt.Errorf("plan must declare at least one input")
	}
	if len(f.Outputs) == 0 {
		return fmt.Errorf("plan must declare at least one output")
	}
	seen := make(map[string]struct{}, len(f.Chains))
	for i, chain := range f.Chains {
		name := strings.TrimSpace(chain.Name)
		if name == "" {
			return fmt.Errorf("chain %d: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("chain %q declared twice", name)
		}
		if len(chain.Filters) == 0 {
			return fmt.Errorf("chain %q: at least one filter is required", name)
		}
		for _, raw := range chain.Streams {
			if _, err := parseRef(raw); err != nil {
				return fmt.Errorf("chain %q: %w", name, err)
			}
		}
		seen[name] = struct{}{}
	}
	for i, out := range f.Outputs {
		for _, raw := range out.Streams {
			if _, err := parseRef(raw); err != nil {
				return fmt.Errorf("output %d: %w", i, err)
			}
		}
	}
	return nil
}
