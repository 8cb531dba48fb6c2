package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"pagescroll/internal/eventbus"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version   int               `toml:"version"`
	Pager     PagerSettings     `toml:"pager"`
	Animation AnimationSettings `toml:"animation"`
	UI        UISettings        `toml:"ui"`
}

// PagerSettings tunes the virtualization window
type PagerSettings struct {
	BufferSize      int     `toml:"buffer_size"`      // pages kept on each side of the anchor
	EdgeTolerance   float64 `toml:"edge_tolerance"`   // columns a page must reach into the screen to be shown
	PagingTolerance float64 `toml:"paging_tolerance"` // columns of drift tolerated before snapping
}

// AnimationSettings configures the spring that drives scrolling
type AnimationSettings struct {
	FPS       int     `toml:"fps"`
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	StartPage   int  `toml:"start_page"`
	RightToLeft bool `toml:"right_to_left"`
	Mouse       bool `toml:"mouse"`
	ShowStatus  bool `toml:"show_status"`
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	switch {
	case c.Pager.BufferSize < 1:
		return fmt.Errorf("%w: pager.buffer_size must be at least 1, got %d", ErrInvalidConfig, c.Pager.BufferSize)
	case c.Pager.EdgeTolerance < 0:
		return fmt.Errorf("%w: pager.edge_tolerance must not be negative", ErrInvalidConfig)
	case c.Pager.PagingTolerance < 0:
		return fmt.Errorf("%w: pager.paging_tolerance must not be negative", ErrInvalidConfig)
	case c.Animation.FPS < 1:
		return fmt.Errorf("%w: animation.fps must be at least 1, got %d", ErrInvalidConfig, c.Animation.FPS)
	case c.Animation.Frequency <= 0:
		return fmt.Errorf("%w: animation.frequency must be positive", ErrInvalidConfig)
	case c.Animation.Damping <= 0:
		return fmt.Errorf("%w: animation.damping must be positive", ErrInvalidConfig)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pagescroll", "config.toml")
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects DefaultPath.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publish(e eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(e)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Pager: PagerSettings{
			BufferSize:      2,
			EdgeTolerance:   0.5,
			PagingTolerance: 1,
		},
		Animation: AnimationSettings{
			FPS:       60,
			Frequency: 7,
			Damping:   1,
		},
		UI: UISettings{
			StartPage:  0,
			Mouse:      true,
			ShowStatus: true,
		},
	}
}
