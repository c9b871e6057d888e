package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backend names accepted by sheets.backend.
const (
	BackendGoogle = "google"
	BackendExcel  = "excel"
)

// Config holds all configuration for the application. Values come from a
// config file or environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Sheets SheetsConfig `mapstructure:"sheets"`
	JWT    JWTConfig    `mapstructure:"jwt"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// SheetsConfig selects and configures the spreadsheet backend. With the
// google backend, SpreadsheetID is required and CredentialsFile points at a
// service-account key (falling back to GOOGLE_APPLICATION_CREDENTIALS when
// empty). With the excel backend only ExcelPath is used.
type SheetsConfig struct {
	Backend         string `mapstructure:"backend"`
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
	ExcelPath       string `mapstructure:"excel_path"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// LoadConfig reads configuration from config.yaml in the given path, with
// environment variables overriding file values (server.address ->
// SERVER_ADDRESS). A missing config file is fine; defaults and environment
// variables carry the day.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("sheets.backend", BackendGoogle)
	viper.SetDefault("sheets.excel_path", "data/trainer.xlsx")
	viper.SetDefault("jwt.expiration", "1h")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
