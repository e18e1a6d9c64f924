package config

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	LogLevel       = "log_level"
	StrictTrackers = "strict_trackers"
	Validate       = "validate"
)

// Init loads <configName>.yaml from /etc or the working directory. Values can
// also come from the environment, e.g. DITTO_LOG_LEVEL.
func Init(configName string) error {
	viper.SetConfigName(configName)
	viper.SetEnvPrefix(configName)
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc")
	viper.AddConfigPath(".")

	setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	log.WithField("config_file", viper.ConfigFileUsed()).Debug("Reading config")
	return nil
}

func setDefaults() {
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(StrictTrackers, false)
	viper.SetDefault(Validate, false)
}
