package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeInput()
	c.normalizeOutput()
	if err := c.normalizeFiles(); err != nil {
		return err
	}
	c.normalizeLinks()
	return c.normalizeLogging()
}

func (c *Config) normalizeInput() {
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = defaultEncoding
	}
	// Whitespace delimiters such as tab are meaningful, so only an empty value
	// falls back.
	if c.Input.CSVDelimiter == "" {
		c.Input.CSVDelimiter = defaultCSVDelimiter
	}
}

func (c *Config) normalizeOutput() {
	if len(c.Output.Fields) == 0 {
		return
	}
	out := make([]string, 0, len(c.Output.Fields))
	for _, f := range c.Output.Fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	c.Output.Fields = out
}

func (c *Config) normalizeFiles() error {
	if strings.TrimSpace(c.Files.BaseDir) == "" || c.Files.BaseDir == defaultBaseDir {
		if value, ok := os.LookupEnv(envBaseDir); ok && strings.TrimSpace(value) != "" {
			c.Files.BaseDir = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Files.BaseDir) == "" {
		c.Files.BaseDir = defaultBaseDir
	}
	var err error
	if c.Files.BaseDir, err = expandPath(c.Files.BaseDir); err != nil {
		return fmt.Errorf("files.base_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLinks() {
	c.Links.Method = strings.ToUpper(strings.TrimSpace(c.Links.Method))
	if c.Links.Method == "" {
		c.Links.Method = defaultLinkMethod
	}
	c.Links.UserAgent = strings.TrimSpace(c.Links.UserAgent)
	if value, ok := os.LookupEnv(envLinkUserAgent); ok && strings.TrimSpace(value) != "" {
		c.Links.UserAgent = strings.TrimSpace(value)
	}
	if c.Links.UserAgent == "" {
		c.Links.UserAgent = defaultUserAgent
	}
	if c.Links.TimeoutSeconds == 0 {
		c.Links.TimeoutSeconds = defaultLinkTimeout
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		var err error
		if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
	}
	return nil
}
