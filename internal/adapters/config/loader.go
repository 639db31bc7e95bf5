// Package config loads the tool configuration and resolves project configuration files.
package config

import (
	"path/filepath"
	"slices"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	validPlatforms = []string{"", "browser", "node", "neutral"}
	validFormats   = []string{"", "iife", "cjs", "esm"}
)

// Loader implements ports.ConfigLoader using tsload.yaml.
type Loader struct {
	Logger ports.Logger
	fs     ports.FileSystem
}

// NewLoader creates a new Loader.
func NewLoader(fsys ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load walks up from cwd to the nearest tsload.yaml and parses it.
// Without a configuration file the defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findUp(l.fs, cwd, domain.ConfigFileName)
	if !found {
		return domain.DefaultConfig(cwd), nil
	}

	var file Configfile
	if err := readAndUnmarshalYAML(l.fs, configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if !slices.Contains(validPlatforms, file.Platform) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidBuildOption, "platform"), "platform", file.Platform)
	}
	if !slices.Contains(validFormats, file.Format) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidBuildOption, "format"), "format", file.Format)
	}

	cfg := domain.DefaultConfig(filepath.Dir(configPath))
	cfg.EntryPoints = file.EntryPoints
	cfg.Outfile = file.Outfile
	cfg.Outdir = file.Outdir
	if file.Bundle != nil {
		cfg.Bundle = *file.Bundle
	}
	cfg.Sourcemap = file.Sourcemap
	cfg.Platform = file.Platform
	cfg.Format = file.Format
	cfg.External = file.External
	cfg.Compiler = file.Compiler
	cfg.ConfigFile = file.ConfigFile
	cfg.IgnoreWarnings = file.IgnoreWarnings
	cfg.CompilerOptions = file.CompilerOptions
	cfg.Checker = file.Checker
	if file.Watch.Debounce > 0 {
		cfg.Debounce = file.Watch.Debounce
	}

	if file.Outfile != "" && file.Outdir != "" {
		l.Logger.Warn("both outfile and outdir are set in " + domain.ConfigFileName + "; outfile wins")
	}

	return cfg, nil
}

// findUp returns the first dir/name at or above dir that exists.
func findUp(fsys ports.FileSystem, dir, name string) (string, bool) {
	current := dir
	for {
		candidate := filepath.Join(current, name)
		if info, err := fsys.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](fsys ports.FileSystem, configPath string, target *T) error {
	data, err := fsys.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
