// Package config handles Heartfield configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Scene    SceneConfig    `yaml:"scene"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AudioConfig holds pop sound settings.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	SFXVolume float64 `yaml:"sfx_volume"`
}

// SceneConfig holds particle generation settings.
type SceneConfig struct {
	StarCount int    `yaml:"star_count"`
	Seed      uint64 `yaml:"seed"` // 0 means time based
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Audio: AudioConfig{
			Enabled:   false,
			SFXVolume: 0.8,
		},
		Scene: SceneConfig{
			StarCount: 300,
			Seed:      0,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate clamps values that would break the scene to usable ones.
func (c *Config) Validate() {
	if c.Graphics.Width <= 0 {
		c.Graphics.Width = 1280
	}
	if c.Graphics.Height <= 0 {
		c.Graphics.Height = 720
	}
	if c.Audio.SFXVolume < 0 {
		c.Audio.SFXVolume = 0
	}
	if c.Audio.SFXVolume > 1 {
		c.Audio.SFXVolume = 1
	}
	// The sky always has stars; zero or less means the default.
	if c.Scene.StarCount <= 0 {
		c.Scene.StarCount = 300
	}
}
