package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultRoot is the taxonomy root used when nothing else is configured.
const DefaultRoot = "~/taxonomy/Life"

// DefaultHistory is where the REPL persists its command history.
const DefaultHistory = "~/.taxnav_history"

var v = viper.New()

func init() {
	v.SetDefault("root", DefaultRoot)
	v.SetDefault("history", DefaultHistory)

	v.SetEnvPrefix("taxnav")
	v.AutomaticEnv()

	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "taxnav"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		_ = v.ReadInConfig() // optional
	}
}

// RootPath returns the configured taxonomy root directory.
func RootPath() string {
	return expand(v.GetString("root"))
}

// HistoryPath returns the configured history file location.
func HistoryPath() string {
	return expand(v.GetString("history"))
}

// expand resolves a leading ~ to the home directory.
func expand(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
