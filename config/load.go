package config

import (
	"woracle/core"

	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("WORACLE")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	if config.App.SecondsPerRound <= 0 {
		config.App.SecondsPerRound = 15
	}

	return config.Validate()
}
