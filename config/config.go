package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth    = 1200
	defaultWindowHeight   = 800
	defaultWindowTitle    = "geoviz"
	defaultLogLevel       = "info"
	defaultPointRadius    = 10.0
	defaultArrowHitRadius = 20.0
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", defaultWindowWidth)
	v.SetDefault("window.height", defaultWindowHeight)
	v.SetDefault("window.title", defaultWindowTitle)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("scene.point_radius", defaultPointRadius)
	v.SetDefault("scene.arrow_hit_radius", defaultArrowHitRadius)
}

// Validate rejects settings the scene cannot be built with.
func (c *Config) Validate() error {
	if c.GetWindowWidth() <= 0 || c.GetWindowHeight() <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.GetWindowWidth(), c.GetWindowHeight())
	}
	if c.GetPointRadius() <= 0 {
		return fmt.Errorf("invalid point radius %v", c.GetPointRadius())
	}
	if c.GetArrowHitRadius() <= 0 {
		return fmt.Errorf("invalid arrow hit radius %v", c.GetArrowHitRadius())
	}
	return nil
}

// Set overrides a setting, e.g. from a command-line flag. key is the
// environment-style name such as WINDOW_WIDTH.
func (c *Config) Set(key string, value any) {
	c.config.Set(key, value)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) GetPointRadius() float64 {
	pointRadius := c.config.GetFloat64("POINT_RADIUS")
	if pointRadius == 0 {
		pointRadius = c.config.GetFloat64("scene.point_radius")
	}

	return pointRadius
}

func (c *Config) GetArrowHitRadius() float64 {
	arrowHitRadius := c.config.GetFloat64("ARROW_HIT_RADIUS")
	if arrowHitRadius == 0 {
		arrowHitRadius = c.config.GetFloat64("scene.arrow_hit_radius")
	}

	return arrowHitRadius
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
