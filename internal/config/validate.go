package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"adlib/internal/charset"
	"adlib/internal/fields"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLinks(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInput() error {
	if !charset.Valid(c.Input.Encoding) {
		return fmt.Errorf("input.encoding: unsupported encoding %q", c.Input.Encoding)
	}
	if utf8.RuneCountInString(c.Input.CSVDelimiter) != 1 {
		return fmt.Errorf("input.csv_delimiter must be a single character, got %q", c.Input.CSVDelimiter)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if len(c.Output.Fields) == 0 {
		return nil
	}
	_, unknown := fields.ParseCodes(strings.Join(c.Output.Fields, ","))
	if len(unknown) > 0 {
		return fmt.Errorf("output.fields: unknown field(s) %s", strings.Join(unknown, ", "))
	}
	return nil
}

func (c *Config) validateLinks() error {
	if c.Links.TimeoutSeconds <= 0 {
		return errors.New("links.timeout_seconds must be positive")
	}
	switch c.Links.Method {
	case "HEAD", "GET":
	default:
		return fmt.Errorf("links.method must be HEAD or GET, got %q", c.Links.Method)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
