package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
)

const (
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "MINECORG"
)

// Setting keys.
const (
	KeyNamespace        = "namespace"
	KeyAuthor           = "author"
	KeyMinEngineVersion = "min_engine_version"
	KeyTemplatesDir     = "templates_dir"
)

// DefaultMinEngineVersion is the engine version written into new packs.
const DefaultMinEngineVersion = "1.21.0"

// Keys lists every known setting in display order.
var Keys = []string{KeyNamespace, KeyAuthor, KeyMinEngineVersion, KeyTemplatesDir}

// ErrUnknownKey is returned for keys not in Keys.
var ErrUnknownKey = errors.New("unknown setting")

// ErrInvalidEngineVersion is returned for engine versions that are not
// plain major.minor[.patch] numbers.
var ErrInvalidEngineVersion = errors.New("invalid engine version")

// Settings are the user-level defaults.
type Settings struct {
	Namespace        string `mapstructure:"namespace" yaml:"namespace" json:"namespace"`
	Author           string `mapstructure:"author" yaml:"author" json:"author"`
	MinEngineVersion string `mapstructure:"min_engine_version" yaml:"min_engine_version" json:"min_engine_version"`
	TemplatesDir     string `mapstructure:"templates_dir" yaml:"templates_dir" json:"templates_dir"`
}

// Store reads settings from a config file and MINECORG_* environment
// variables, environment first.
type Store struct {
	v    *viper.Viper
	path string
}

// Open reads dir/config.yaml. A missing file is not an error.
func Open(dir string) (*Store, error) {
	path := FilePath(dir)
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range Keys {
		// Unmarshal only sees environment values for bound keys.
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	v.SetDefault(KeyMinEngineVersion, DefaultMinEngineVersion)

	if err := readConfig(v); err != nil {
		return nil, err
	}
	return &Store{v: v, path: path}, nil
}

func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("reading config: %w", err)
}

// Path is the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Settings returns the effective settings.
func (s *Store) Settings() (Settings, error) {
	var out Settings
	if err := s.v.Unmarshal(&out); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return out, nil
}

// Get returns one effective setting.
func (s *Store) Get(key string) (string, error) {
	if !slices.Contains(Keys, key) {
		return "", fmt.Errorf("%w %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
	return s.v.GetString(key), nil
}

// Set validates value and stores it in the settings file. Environment
// overrides are not written back.
func (s *Store) Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("%w %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
	if key == KeyMinEngineVersion {
		normalized, err := NormalizeEngineVersion(value)
		if err != nil {
			return err
		}
		value = normalized
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil { //nolint:gosec // config dir follows XDG conventions
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write through a file-only instance so defaults and environment
	// values stay out of the file.
	fileOnly := viper.New()
	fileOnly.SetConfigFile(s.path)
	fileOnly.SetConfigType(fileType)
	if err := readConfig(fileOnly); err != nil {
		return err
	}
	fileOnly.Set(key, value)
	if err := fileOnly.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	s.v.Set(key, value)
	return nil
}

// NormalizeEngineVersion parses a Minecraft engine version such as
// "1.21" or "1.21.0" and returns it as major.minor.patch.
func NormalizeEngineVersion(value string) (string, error) {
	v, err := semver.NewVersion(value)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidEngineVersion, value, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return "", fmt.Errorf("%w %q: pre-release and build metadata are not allowed", ErrInvalidEngineVersion, value)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch()), nil
}
