// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer normalizes configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// FileType is the on-disk encoding of the configuration file.
const FileType = "toml"

// File returns the path the configuration file is read from and written to.
func File() string {
	return filepath.Join(where.Config(), constant.App+"."+FileType)
}

// Setup initializes the global configuration state: defaults, environment bindings and the optional config file.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType(FileType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Save writes the in-memory configuration, creating the file when it does not exist yet.
func Save() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}
