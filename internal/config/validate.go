package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateEncoder(); err != nil {
		return err
	}
	if err := c.validateQuality(); err != nil {
		return err
	}
	if err := c.validateAudit(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateEncoder() error {
	if c.Encoder.Preset < 0 || c.Encoder.Preset > 13 {
		return fmt.Errorf("encoder.preset must be between 0 and 13, got %d", c.Encoder.Preset)
	}
	return nil
}

func (c *Config) validateQuality() error {
	if c.Quality.MinCRF <= 0 || c.Quality.MaxCRF <= 0 {
		return errors.New("quality.min_crf and quality.max_crf must be positive")
	}
	if c.Quality.MinCRF > c.Quality.MaxCRF {
		return fmt.Errorf("quality.min_crf %d exceeds quality.max_crf %d", c.Quality.MinCRF, c.Quality.MaxCRF)
	}
	for name, value := range map[string]int{
		"quality.anime_crf":   c.Quality.AnimeCRF,
		"quality.cartoon_crf": c.Quality.CartoonCRF,
		"quality.movie_crf":   c.Quality.MovieCRF,
	} {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

func (c *Config) validateAudit() error {
	for name, value := range map[string]int{
		"audit.anime_kbps":   c.Audit.AnimeKbps,
		"audit.movie_kbps":   c.Audit.MovieKbps,
		"audit.cartoon_kbps": c.Audit.CartoonKbps,
		"audit.floor_kbps":   c.Audit.FloorKbps,
	} {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.Audit.MarginPercent < 0 {
		return fmt.Errorf("audit.margin_percent must not be negative, got %d", c.Audit.MarginPercent)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
