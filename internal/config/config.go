// Package config resolves the file locations shared by the editor asset
// tools from the environment, an optional .env file, and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults relative to the editor repository root.
const (
	DefaultTagsFile = "题型知识点标签.json"
	DefaultPhotoDir = "static/picsum"
)

// Environment variables read by Load.
const (
	EnvRoot      = "EDITOR_ROOT"
	EnvTagsFile  = "KNOWLEDGE_TAGS_FILE"
	EnvTable     = "REPLACEMENT_TABLE"
	EnvPhotoDir  = "PHOTO_OUT_DIR"
	envDotenvOff = "EDITOR_NO_DOTENV"
)

// Config holds resolved locations. Relative paths are resolved against Root.
type Config struct {
	// Root is the editor repository root.
	Root string
	// TagsFile is the knowledge tag JSON file.
	TagsFile string
	// TablePath is an optional replacement table; empty means the curated one.
	TablePath string
	// PhotoDir is the output directory for photo assets.
	PhotoDir string
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if os.Getenv(envDotenvOff) == "" {
		_ = godotenv.Load()
	}

	root := strings.TrimSpace(os.Getenv(EnvRoot))
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}

		root = wd
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", root, err)
	}

	return &Config{
		Root:      root,
		TagsFile:  envOr(EnvTagsFile, DefaultTagsFile),
		TablePath: strings.TrimSpace(os.Getenv(EnvTable)),
		PhotoDir:  envOr(EnvPhotoDir, DefaultPhotoDir),
	}, nil
}

// Resolve returns p as an absolute path, joining relative paths to Root.
// An empty p stays empty.
func (c *Config) Resolve(p string) string {
	if p == "" {
		return ""
	}

	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(c.Root, p)
}

// Rel returns p relative to Root when p lies under it, otherwise p unchanged.
func (c *Config) Rel(p string) string {
	rel, err := filepath.Rel(c.Root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}

	return rel
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
