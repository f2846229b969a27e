// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "LAYERVUE_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// It follows os.UserConfigDir unless LAYERVUE_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Version resolves the file caching the latest released version.
func Version() string {
	return filepath.Join(Cache(), "version.json")
}

// Scratch resolves the transient checkout directory. It is relative to the working directory and is not created here.
func Scratch() string {
	return viper.GetString(key.TemplateScratch)
}
