package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the crop tool. Fields may be
// loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Selection behavior
	HandleRadius   int  `json:"handle_radius"`
	MinSelectionPx int  `json:"min_selection_px"`
	SquareMode     bool `json:"square_mode"`

	// Encoder parameters
	Encoder string `json:"encoder"`
	Quality int    `json:"quality"`

	// Preview sizing
	PreviewMaxW int `json:"preview_max_w"`
	PreviewMaxH int `json:"preview_max_h"`

	// Last committed selection, preloaded on the next run
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		HandleRadius:   10,
		MinSelectionPx: 10,
		SquareMode:     false,
		Encoder:        "libx264",
		Quality:        23,
		PreviewMaxW:    1280,
		PreviewMaxH:    720,
		SelectionX:     0,
		SelectionY:     0,
		SelectionW:     0,
		SelectionH:     0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.HandleRadius <= 0 {
		c.HandleRadius = 10
	}
	if c.MinSelectionPx <= 0 {
		c.MinSelectionPx = 10
	}
	if c.Encoder == "" {
		c.Encoder = "libx264"
	}
	if c.Quality <= 0 || c.Quality > 51 {
		c.Quality = 23
	}
	if c.PreviewMaxW < 64 {
		c.PreviewMaxW = 1280
	}
	if c.PreviewMaxH < 64 {
		c.PreviewMaxH = 720
	}
	if c.SelectionW < 0 {
		c.SelectionW = 0
	}
	if c.SelectionH < 0 {
		c.SelectionH = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
