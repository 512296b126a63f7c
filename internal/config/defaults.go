package config

const (
	defaultEncoding     = "utf-8"
	defaultCSVDelimiter = ";"
	defaultBaseDir      = "."
	defaultLinkTimeout  = 15
	defaultLinkMethod   = "HEAD"
	defaultUserAgent    = "adlib/dev"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	envBaseDir          = "ADLIB_BASE_DIR"
	envLinkUserAgent    = "ADLIB_USER_AGENT"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Encoding:     defaultEncoding,
			CSVDelimiter: defaultCSVDelimiter,
		},
		Files: Files{
			BaseDir: defaultBaseDir,
		},
		Links: Links{
			TimeoutSeconds: defaultLinkTimeout,
			Method:         defaultLinkMethod,
			UserAgent:      defaultUserAgent,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
