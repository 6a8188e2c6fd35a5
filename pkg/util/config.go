package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// BuildConfig drives one run of the index builder.
type BuildConfig struct {
	DataDir      string   `mapstructure:"data_dir" validate:"required"`
	Countries    []string `mapstructure:"countries" validate:"required,min=1"`
	LeapProfiles []string `mapstructure:"leap_profiles" validate:"dive,oneof=pedestrian bicycle car"`
	Workers      int      `mapstructure:"workers" validate:"gte=0"`
}

func ReadConfig() (*BuildConfig, error) {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("fatal error config file: %w", err)
	}

	var cfg BuildConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("fatal error config file: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, WrapErrorf(err, ErrBadParam, "invalid build config")
	}

	if len(cfg.LeapProfiles) == 0 {
		cfg.LeapProfiles = []string{"car"}
	}
	return &cfg, nil
}
