package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix       = "RESET_TEST_DB"
	DefaultLogLevel = "warn"
)

type Config struct {
	Root     string
	LogLevel string
}

// Load reads configuration from the environment, after loading envFile when
// it exists. Root defaults to the working directory and is always absolute.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_level", DefaultLogLevel)

	root := strings.TrimSpace(v.GetString("root"))
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("repository root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %s is not a directory", abs)
	}

	return &Config{
		Root:     abs,
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
	}, nil
}
