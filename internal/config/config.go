// Package config resolves settings from flags, VOCAB_* environment
// variables and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LavenderBridge/vocab/internal/db"
	"github.com/spf13/viper"
)

// Keys understood by viper.
const (
	KeyLang       = "lang"
	KeyBackend    = "backend"
	KeyDataFile   = "data_file"
	KeySQLiteFile = "sqlite_file"
	KeyVerbose    = "verbose"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	Lang       string
	Backend    string
	DataFile   string
	SQLiteFile string
	Verbose    bool
}

// StoreOptions returns the db options for the configured backend.
func (c Config) StoreOptions() db.Options {
	return db.Options{
		Backend:    c.Backend,
		DataFile:   c.DataFile,
		SQLiteFile: c.SQLiteFile,
	}
}

// New returns a viper instance with defaults and environment binding.
func New() (*viper.Viper, error) {
	v := viper.New()

	dataFile, err := db.DefaultDataFile()
	if err != nil {
		return nil, err
	}
	sqliteFile, err := db.DefaultSQLiteFile()
	if err != nil {
		return nil, err
	}

	v.SetDefault(KeyLang, "en")
	v.SetDefault(KeyBackend, db.BackendJSON)
	v.SetDefault(KeyDataFile, dataFile)
	v.SetDefault(KeySQLiteFile, sqliteFile)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix("VOCAB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v, nil
}

// ReadFile loads path into v. With an empty path it tries
// $HOME/.vocab.yaml and ignores it when absent.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(".vocab")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Resolve reads the final values out of v.
func Resolve(v *viper.Viper) Config {
	return Config{
		Lang:       v.GetString(KeyLang),
		Backend:    v.GetString(KeyBackend),
		DataFile:   expandHome(v.GetString(KeyDataFile)),
		SQLiteFile: expandHome(v.GetString(KeySQLiteFile)),
		Verbose:    v.GetBool(KeyVerbose),
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
