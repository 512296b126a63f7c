package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"adlib/internal/config"
	"adlib/internal/fields"
	"adlib/internal/logging"
	"adlib/internal/recordset"
)

type commandContext struct {
	configFlag    *string
	sourceURLFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, sourceURLFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		sourceURLFlag: sourceURLFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, logging.NewSessionID())
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) sourceURL() (*url.URL, error) {
	if c.sourceURLFlag == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*c.sourceURLFlag)
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse --source-url: %w", err)
	}
	return u, nil
}

// newCollection builds an empty collection named after path and configured
// from the loaded config.
func (c *commandContext) newCollection(path string) (*recordset.Collection, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	src, err := c.sourceURL()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	set := recordset.New(name,
		recordset.WithLogger(logger),
		recordset.WithEncoding(cfg.Input.Encoding),
		recordset.WithHTTPClient(http.DefaultClient),
		recordset.WithLinkTimeout(cfg.LinkTimeout()),
		recordset.WithLinkMethod(cfg.Links.Method),
		recordset.WithUserAgent(cfg.Links.UserAgent),
	)
	set.SetSourceURL(src)
	return set, nil
}

// loadTagged creates a collection from a tagged export.
func (c *commandContext) loadTagged(path string) (*recordset.Collection, error) {
	set, err := c.newCollection(path)
	if err != nil {
		return nil, err
	}
	if _, err := set.LoadFile(path); err != nil {
		return nil, err
	}
	return set, nil
}

// selection resolves a --fields style flag, falling back to the configured
// output fields. Nil selects the whole catalog.
func (c *commandContext) selection(flag string) ([]fields.Code, error) {
	if strings.TrimSpace(flag) == "" {
		cfg, err := c.ensureConfig()
		if err != nil {
			return nil, err
		}
		return cfg.OutputFields(), nil
	}
	return parseFieldList(flag)
}

func parseFieldList(flag string) ([]fields.Code, error) {
	codes, unknown := fields.ParseCodes(flag)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown fields: %s (run `adlib fields` for the catalog)", strings.Join(unknown, ", "))
	}
	return codes, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
