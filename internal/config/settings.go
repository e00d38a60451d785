// Package config handles runtime settings and the loading of pipeline
// definition files.
package config

import (
	"github.com/spf13/viper"
)

// Settings holds the runtime knobs that are not part of any pipeline
// definition: where output files land by default and how logging behaves.
type Settings struct {
	OutputDir string
	LogFile   string
	LogLevel  string
}

// LoadSettings reads settings from PIPEVINE_-prefixed environment
// variables, falling back to defaults.
func LoadSettings() *Settings {
	v := viper.New()
	v.SetEnvPrefix("pipevine")
	v.AutomaticEnv()

	v.SetDefault("output_dir", ".")
	v.SetDefault("log_file", "pipevine.log")
	v.SetDefault("log_level", "info")

	return &Settings{
		OutputDir: v.GetString("output_dir"),
		LogFile:   v.GetString("log_file"),
		LogLevel:  v.GetString("log_level"),
	}
}
