package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"phototree/file_io"
	L "phototree/logger"

	"github.com/spf13/viper"
)

const appName = "phototree"

var ErrUnknownSource = errors.New("unknown source")

type Source struct {
	Root string `mapstructure:"root" json:"root"`
	DB   string `mapstructure:"db" json:"db"`
}

type Config struct {
	Sources          map[string]Source `mapstructure:"sources" json:"sources"`
	ImageExtensions  []string          `mapstructure:"image_extensions" json:"image_extensions"`
	UseHash          bool              `mapstructure:"use_hash" json:"use_hash"`
	HashAlgorithm    HashAlgorithm     `mapstructure:"hash_algorithm" json:"hash_algorithm"`
	OutputDir        string            `mapstructure:"output_dir" json:"output_dir"`
	ContinueOnError  bool              `mapstructure:"continue_on_error" json:"continue_on_error"`
	IgnoreExtensions []string          `mapstructure:"ignore_extensions" json:"ignore_extensions"`
}

var config Config
var configPath string

func setDefaults(v *viper.Viper) {
	v.SetDefault("image_extensions", []string{".jpg", ".jpeg"})
	v.SetDefault("use_hash", true)
	v.SetDefault("hash_algorithm", string(HASH_MD5))
	v.SetDefault("output_dir", "output")
	v.SetDefault("continue_on_error", false)
	v.SetDefault("ignore_extensions", []string{".ini", ".db"})
}

// Parse reads a json or yaml config file. Source names are case-insensitive.
func Parse(configPathArg string) error {
	if !file_io.IsReadable(configPathArg) {
		return fmt.Errorf("config: could not open config file for reading: %s", configPathArg)
	}
	v := viper.New()
	v.SetConfigFile(configPathArg)
	if filepath.Ext(configPathArg) == "" {
		v.SetConfigType("json")
	}
	setDefaults(v)
	err := v.ReadInConfig()
	if err != nil {
		return fmt.Errorf("config: malformed config %s: %w", configPathArg, err)
	}

	var parsed Config
	err = v.Unmarshal(&parsed)
	if err != nil {
		return fmt.Errorf("config: malformed config %s: %w", configPathArg, err)
	}
	err = normalize(&parsed)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	err = validate(&parsed)
	if err != nil {
		return fmt.Errorf("config: could not validate config: %w", err)
	}

	absConfigPath, err := filepath.Abs(configPathArg)
	if err != nil {
		return err
	}
	config = parsed
	configPath = absConfigPath
	L.Debug(fmt.Sprintf("Loaded config from %s with %d source(s)", configPath, len(config.Sources)))
	return nil
}

func Get() *Config {
	return &config
}

func GetConfigPath() string {
	return configPath
}

func GetDefaultConfigDir() (string, error) {
	configDir, configDirError := os.UserConfigDir()
	homeDir, homeDirError := os.UserHomeDir()
	if configDirError != nil && homeDirError != nil {
		return "", fmt.Errorf("config: cannot find config dir: Config: %w, Home: %w", configDirError, homeDirError)
	}
	var dir string
	if configDirError == nil {
		dir = configDir
	} else {
		dir = homeDir
	}
	dir, err := filepath.Abs(filepath.Join(dir, appName))
	if err != nil {
		return "", err
	}
	L.Debug(fmt.Sprintf("Using config directory: %s", dir))
	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", err
	}
	return dir, nil
}

// GetDefaultConfigPath returns ~/.config/phototree/config.json, creating it
// with default values if it does not exist yet.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetDefaultConfigDir()
	if err != nil {
		return "", err
	}
	configFilePath := filepath.Join(configDir, "config.json")
	exists, err := file_io.Exists(configFilePath)
	if err != nil {
		return "", err
	}
	if !exists {
		_, err = file_io.WriteToFile(configFilePath, []byte(DumpDefaultConfig()), file_io.WRITE_OVERWRITE)
		if err != nil {
			return "", err
		}
		L.Info(fmt.Sprintf("Created default config at %s", configFilePath))
	}
	return configFilePath, nil
}

// GetSource looks a source up by name.
func (c *Config) GetSource(name string) (Source, error) {
	s, ok := c.Sources[strings.ToLower(name)]
	if !ok {
		return Source{}, fmt.Errorf("%w: %s. available sources: %s", ErrUnknownSource, name, strings.Join(c.SourceNames(), ", "))
	}
	return s, nil
}

func (c *Config) SourceNames() []string {
	names := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) ToJson() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DumpDefaultConfig() string {
	defaultConfig := Config{
		Sources: map[string]Source{
			"photos": {
				Root: "~/Pictures",
				DB:   "~/.config/phototree/photos.db",
			},
		},
		ImageExtensions:  []string{".jpg", ".jpeg"},
		UseHash:          true,
		HashAlgorithm:    HASH_MD5,
		OutputDir:        "output",
		ContinueOnError:  false,
		IgnoreExtensions: []string{".ini", ".db"},
	}
	configStr, err := defaultConfig.ToJson()
	if err != nil {
		return ""
	}
	return configStr
}

func normalize(c *Config) error {
	c.ImageExtensions = NormalizeExtensions(c.ImageExtensions)
	c.IgnoreExtensions = NormalizeExtensions(c.IgnoreExtensions)
	if c.HashAlgorithm != "" {
		parsed, err := ParseHashAlgorithm(string(c.HashAlgorithm))
		if err != nil {
			return err
		}
		c.HashAlgorithm = parsed
	}
	for name, s := range c.Sources {
		root, err := ExpandPath(s.Root)
		if err != nil {
			return fmt.Errorf("source %s: %w", name, err)
		}
		s.Root = root
		if s.DB == "" {
			s.DB = filepath.Join(root, "catalog.db")
		} else {
			s.DB, err = ExpandPath(s.DB)
			if err != nil {
				return fmt.Errorf("source %s: %w", name, err)
			}
		}
		c.Sources[name] = s
	}
	return nil
}

func validate(c *Config) error {
	if !slices.Contains(supportedHashAlgorithms, c.HashAlgorithm) {
		return fmt.Errorf("unknown hash algorithm: %q", c.HashAlgorithm)
	}
	if len(c.ImageExtensions) == 0 {
		return fmt.Errorf("image_extensions must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	for name, s := range c.Sources {
		if s.Root == "" {
			return fmt.Errorf("source %s has no root", name)
		}
	}
	return nil
}

// NormalizeExtensions lowercases extensions and makes sure each has a leading dot.
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if !slices.Contains(normalized, e) {
			normalized = append(normalized, e)
		}
	}
	return normalized
}

// ExpandPath expands a leading ~/ and returns an absolute path.
func ExpandPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~ for %s: %w", p, err)
		}
		p = filepath.Join(homeDir, strings.TrimPrefix(p, "~"))
	}
	return filepath.Abs(p)
}
