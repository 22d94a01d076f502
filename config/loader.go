package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix marks the environment variables read into the configuration.
const EnvPrefix = "GITHUB2_"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserHomeDir() (string, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (rfs *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Resolver handles finding and resolving config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths if provided, otherwise the first
// existing candidate of each kind.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(r.configCandidates(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first([]string{
			".env.local",
			".env",
			filepath.Join("cmd", name, ".env"),
		})
	}
	return resolved
}

// configCandidates lists config file locations, most specific first.
func (r *Resolver) configCandidates(name string) []string {
	paths := []string{
		fmt.Sprintf("./%s.yml", name),
		"./config.yml",
		filepath.Join("cmd", name, "config.yml"),
		filepath.Join("config", "config.yml"),
	}
	if home, err := r.FileSystem.UserHomeDir(); err == nil && home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", name, "config.yml"),
			filepath.Join(home, "."+name+".yml"),
		)
	}
	return paths
}

func (r *Resolver) first(paths []string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	Environ    func() []string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnviron replaces os.Environ as the source of environment variables.
func WithEnviron(fn func() []string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Environ = fn }
}

// Load reads, defaults and validates the configuration.
func Load(name string, opts ...LoaderOption) (Config, error) {
	var cfg Config
	if err := LoadInto(name, &cfg, opts...); err != nil {
		return cfg, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadInto unmarshals the raw configuration into out without defaults or
// validation.
func LoadInto(name string, out any, opts ...LoaderOption) error {
	lc := LoaderConfig{FileSystem: &RealFileSystem{}, Environ: os.Environ}
	for _, opt := range opts {
		opt(&lc)
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	v := viper.New()
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", files.ConfigFile, err)
		}
	}

	// .env values land in the process environment, which is read next.
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return fmt.Errorf("load env file %s: %w", files.EnvFile, err)
		}
	}
	bindEnv(v, lc.Environ())

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("unmarshal config for %s: %w", name, err)
	}
	return nil
}

// bindEnv sets every prefixed variable under each nested key it may name.
func bindEnv(v *viper.Viper, environ []string) {
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		for _, variant := range envKeyVariants(strings.TrimPrefix(key, EnvPrefix)) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants expands an underscore-separated name into every key it
// could denote, each underscore read either as part of a name or as a
// nesting level.
//
//	GITHUB_RATE_LIMIT -> [github_rate_limit, github_rate.limit, github.rate_limit, github.rate.limit]
func envKeyVariants(envKey string) []string {
	parts := strings.Split(strings.ToLower(envKey), "_")
	variants := []string{parts[0]}
	for _, part := range parts[1:] {
		next := make([]string, 0, 2*len(variants))
		for _, v := range variants {
			next = append(next, v+"_"+part, v+"."+part)
		}
		variants = next
	}
	return variants
}
