// Package project locates and decodes the ripple.toml project
// manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the manifest lives in.
const ManifestName = "ripple.toml"

// Manifest is a located, decoded project manifest.
type Manifest struct {
	// Path is the manifest file location.
	Path string
	// Root is the directory containing it.
	Root string
	// Config is the decoded content.
	Config Config
}

// Config is the ripple.toml schema.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Compiler CompilerConfig `toml:"compiler"`
}

type PackageConfig struct {
	Name   string `toml:"name"`
	Target string `toml:"target"`
}

type CompilerConfig struct {
	// ArenaChunkSize is the AST arena chunk capacity; 0 uses the
	// built-in default.
	ArenaChunkSize int `toml:"arena-chunk-size"`
	// MaxDiagnostics bounds diagnostic output; 0 uses the built-in
	// default.
	MaxDiagnostics int `toml:"max-diagnostics"`
}

// Find walks upward from startDir looking for ripple.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Discover finds and loads the manifest governing startDir, if any.
func Discover(startDir string) (*Manifest, bool, error) {
	path, found, err := Find(startDir)
	if err != nil || !found {
		return nil, found, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Write encodes cfg as a fresh manifest at path. Fails if the file
// already exists.
func Write(path string, cfg Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return f.Close()
}
