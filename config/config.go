package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/expki/go-attention/compute"
	"golang.org/x/text/language"
)

// ParseConfig parses the raw JSON configuration and fills in defaults for omitted fields.
func ParseConfig(raw []byte) (config Config, err error) {
	config = Default()
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %v", err)
	}
	err = config.Validate()
	if err != nil {
		return config, errors.Join(errors.New("invalid config"), err)
	}
	return config, nil
}

type Config struct {
	LogLevel        LogLevel `json:"log_level"`
	Temperature     float64  `json:"temperature"`
	PercentDecimals int      `json:"percent_decimals"`
	NumberDecimals  int      `json:"number_decimals"`
	Palette         Palette  `json:"palette"`
	Locale          string   `json:"locale,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		LogLevel:        LogLevelError,
		Temperature:     compute.DefaultTemperature,
		PercentDecimals: 1,
		NumberDecimals:  3,
		Palette:         DefaultPalette(),
	}
}

// Validate checks the values a consumer passes straight into the numeric core.
func (c Config) Validate() error {
	if math.IsNaN(c.Temperature) || math.IsInf(c.Temperature, 0) || c.Temperature <= 0 {
		return fmt.Errorf("temperature must be a positive finite number, got %v", c.Temperature)
	}
	if c.PercentDecimals < 0 || c.PercentDecimals > MaxDecimals {
		return fmt.Errorf("percent_decimals must be within [0, %d], got %d", MaxDecimals, c.PercentDecimals)
	}
	if c.NumberDecimals < 0 || c.NumberDecimals > MaxDecimals {
		return fmt.Errorf("number_decimals must be within [0, %d], got %d", MaxDecimals, c.NumberDecimals)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}

// Language parses the configured locale. An empty locale yields language.Und.
func (c Config) Language() (language.Tag, error) {
	if c.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("could not parse locale %q: %v", c.Locale, err)
	}
	return tag, nil
}
