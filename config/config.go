// Package config provides the board, display, and pacing configuration for
// the simulator. Values are loaded from a JSON file so the board layout and
// colors can be changed without rebuilding; every value has a default
// matching the classic classroom setup.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"os"
)

// Config holds all simulator settings.
type Config struct {
	// Board layout
	ColumnSpace  float64 `json:"column_space"`  // distance between column lines in pixels
	ColumnCount  int     `json:"column_count"`  // number of columns drawn
	NeedleLength float64 `json:"needle_length"` // needle length in pixels, at most ColumnSpace
	WindowHeight int     `json:"window_height"` // overall window height in pixels

	// Display
	SidebarWidth          int     `json:"sidebar_width"`            // info sidebar width in pixels
	ColumnLineThickness   float64 `json:"column_line_thickness"`    // column line width in pixels
	NeedleThickness       float64 `json:"needle_thickness"`         // needle line width in pixels
	HitMarkSize           float64 `json:"hit_mark_size"`            // hit location dot radius in pixels
	MarkHitLocationsLimit int     `json:"mark_hit_locations_limit"` // stop drawing hit dots past this many drops; 0 hides them, negative means no limit
	DrawLimit             int     `json:"draw_limit"`               // most recent needles kept for rendering; negative means no limit

	// Pacing
	DefaultTargetFPS float64 `json:"default_target_fps"` // FPS goal when no large backlog is pending

	Colors Colors `json:"colors"`
}

// Colors names the display colors. Values are color names or #rrggbb hex.
type Colors struct {
	Background  string `json:"background"`
	NeedleHit   string `json:"needle_hit"`
	NeedleMiss  string `json:"needle_miss"`
	HitLocation string `json:"hit_location"`
	ColumnLine  string `json:"column_line"`
	Sidebar     string `json:"sidebar"`
	Text        string `json:"text"`
}

// Palette is the parsed form of Colors.
type Palette struct {
	Background  color.RGBA
	NeedleHit   color.RGBA
	NeedleMiss  color.RGBA
	HitLocation color.RGBA
	ColumnLine  color.RGBA
	Sidebar     color.RGBA
	Text        color.RGBA
}

// Default returns the classic setup: 8 columns 100px apart, 75px needles,
// one drop rendered per frame up to a backlog of 100 under a 100 FPS cap.
func Default() *Config {
	return &Config{
		ColumnSpace:           100,
		ColumnCount:           8,
		NeedleLength:          75,
		WindowHeight:          400,
		SidebarWidth:          200,
		ColumnLineThickness:   3,
		NeedleThickness:       2,
		HitMarkSize:           4,
		MarkHitLocationsLimit: 0,
		DrawLimit:             10000,
		DefaultTargetFPS:      100,
		Colors: Colors{
			Background:  "white",
			NeedleHit:   "red",
			NeedleMiss:  "blue",
			HitLocation: "green",
			ColumnLine:  "black",
			Sidebar:     "lightgray",
			Text:        "black",
		},
	}
}

// Load loads a config from a JSON file. A missing file yields the defaults;
// fields absent from the file keep their default values. A needle length
// greater than the column space is clamped with a logged error, since hit
// testing assumes a needle can cross at most one column line.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.NeedleLength > cfg.ColumnSpace {
		log.Printf("needle_length can't be greater than column_space, clamping %v to %v",
			cfg.NeedleLength, cfg.ColumnSpace)
		cfg.NeedleLength = cfg.ColumnSpace
	}

	return cfg, nil
}

// BoardWidth returns the width of the needle board in pixels.
func (c *Config) BoardWidth() int {
	return int(c.ColumnSpace) * c.ColumnCount
}

// WindowWidth returns the overall window width: sidebar plus board.
func (c *Config) WindowWidth() int {
	return c.SidebarWidth + c.BoardWidth()
}

// Palette parses the configured color names into concrete colors.
func (c *Config) Palette() Palette {
	return Palette{
		Background:  ParseColor(c.Colors.Background),
		NeedleHit:   ParseColor(c.Colors.NeedleHit),
		NeedleMiss:  ParseColor(c.Colors.NeedleMiss),
		HitLocation: ParseColor(c.Colors.HitLocation),
		ColumnLine:  ParseColor(c.Colors.ColumnLine),
		Sidebar:     ParseColor(c.Colors.Sidebar),
		Text:        ParseColor(c.Colors.Text),
	}
}

// ParseColor parses a color name or #rrggbb hex string. Unknown values fall
// back to black.
func ParseColor(s string) color.RGBA {
	switch s {
	case "black":
		return color.RGBA{0, 0, 0, 255}
	case "white":
		return color.RGBA{255, 255, 255, 255}
	case "red":
		return color.RGBA{255, 0, 0, 255}
	case "green":
		return color.RGBA{0, 128, 0, 255}
	case "blue":
		return color.RGBA{0, 0, 255, 255}
	case "gray", "grey":
		return color.RGBA{128, 128, 128, 255}
	case "lightgray", "lightgrey":
		return color.RGBA{211, 211, 211, 255}
	default:
		if len(s) == 7 && s[0] == '#' {
			var r, g, b uint8
			fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
			return color.RGBA{r, g, b, 255}
		}
		return color.RGBA{0, 0, 0, 255}
	}
}
