package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig load the optional gridrouter config file (gridrouter.yaml or any
// other viper-supported format) from the working directory or ./data/. Keys
// read through viper elsewhere keep their defaults when no file is present.
func ReadConfig() error {
	viper.SetConfigName("gridrouter")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./data/")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading gridrouter config: %w", err)
	}
	return nil
}
