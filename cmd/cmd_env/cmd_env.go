package cmd_env

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"phototree/config"
	"phototree/database"
	"phototree/database/repository"
	"phototree/fingerprint"
	L "phototree/logger"
)

type ContextKey string

// ValuesKey carries the binary and command names set by cmd.Execute.
const ValuesKey ContextKey = "values"

func BinaryName(ctx context.Context) string {
	values, ok := ctx.Value(ValuesKey).(map[string]string)
	if !ok || values["binary_name"] == "" {
		return "phototree"
	}
	return filepath.Base(values["binary_name"])
}

// CommonFlags are accepted by every verb that touches a catalog.
type CommonFlags struct {
	ConfigPath *string
	LogLevel   *string
	ColorMode  *string
}

func RegisterCommonFlags(fs *flag.FlagSet) *CommonFlags {
	f := &CommonFlags{
		ConfigPath: fs.String("config", "", "Path to config file"),
		LogLevel:   fs.String("log-level", L.GetLogLevel().String(), "Set log level: debug info warn error panic silent"),
		ColorMode:  fs.String("color", "auto", "Set color mode: auto always never"),
	}
	fs.StringVar(f.ConfigPath, "c", "", "alias to -config")
	fs.StringVar(f.LogLevel, "L", L.GetLogLevel().String(), "alias to -log-level")
	return f
}

// Apply sets up logging and loads the config file, creating the default one when none is given.
func (f *CommonFlags) Apply(configurator config.Configurator) (*config.Config, error) {
	err := L.SetLevelFromString(*f.LogLevel)
	if err != nil {
		return nil, err
	}
	L.Debug(fmt.Sprintf("log level set to: %s", strings.ToUpper(*f.LogLevel)))
	err = L.SetColorModeFromString(*f.ColorMode)
	if err != nil {
		return nil, err
	}

	configPath := *f.ConfigPath
	if configPath == "" {
		configPath, err = configurator.GetDefaultConfigPath()
		if err != nil {
			return nil, err
		}
	} else {
		configPath, err = config.ExpandPath(configPath)
		if err != nil {
			return nil, err
		}
	}
	err = configurator.Parse(configPath)
	if err != nil {
		return nil, err
	}
	return configurator.Get(), nil
}

// Catalog is an open index store for one configured source.
type Catalog struct {
	Name   string
	Source config.Source
	DB     *database.DB
	Repo   repository.CatalogRepository
}

func OpenCatalog(ctx context.Context, cfg *config.Config, name string) (*Catalog, error) {
	src, err := cfg.GetSource(name)
	if err != nil {
		return nil, err
	}
	err = os.MkdirAll(filepath.Dir(src.DB), os.ModePerm)
	if err != nil {
		return nil, err
	}
	db, err := database.NewDB(src.DB)
	if err != nil {
		return nil, err
	}
	err = db.Init(ctx)
	if err != nil {
		db.Close(ctx)
		return nil, err
	}
	L.Debug(fmt.Sprintf("Opened catalog %s at %s", name, src.DB))
	return &Catalog{
		Name:   strings.ToLower(name),
		Source: src,
		DB:     db,
		Repo:   repository.NewCatalogRepository(db),
	}, nil
}

func (c *Catalog) Close(ctx context.Context) error {
	return c.DB.Close(ctx)
}

// OutputPath places a generated file under the configured output directory.
func OutputPath(cfg *config.Config, fileName string) (string, error) {
	err := os.MkdirAll(cfg.OutputDir, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("could not create output directory %s: %w", cfg.OutputDir, err)
	}
	return filepath.Join(cfg.OutputDir, fileName), nil
}

func FingerprintOptions(cfg *config.Config) fingerprint.Options {
	return fingerprint.Options{
		ImageExtensions: cfg.ImageExtensions,
		UseHash:         cfg.UseHash,
		HashAlgorithm:   cfg.HashAlgorithm,
	}
}

// ExactArgs returns an error pointing at the verb's help when the count is wrong.
func ExactArgs(verb string, args []string, n int, what string) error {
	if len(args) < n {
		return fmt.Errorf("%s not provided. For more information check 'phototree help %s'", what, verb)
	}
	if len(args) > n {
		return fmt.Errorf("too many arguments. For more information, check 'phototree help %s'", verb)
	}
	return nil
}
