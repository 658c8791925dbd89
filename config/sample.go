package config

import (
	"encoding/json"
	"errors"
	"os"
)

// CreateSample creates a sample configuration file.
func CreateSample(path string) error {
	sample := Default()
	sample.LogLevel = LogLevelInfo
	sample.Locale = "de-DE"
	raw, err := json.MarshalIndent(sample, "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}
	return nil
}

// LoadFile reads and parses the configuration file at path.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(errors.New("could not read config file"), err)
	}
	return ParseConfig(raw)
}
