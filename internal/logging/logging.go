// internal/logging/logging.go
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the leveled logging surface injected into the parser and
// the feature emitter.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// EnvConfig names the environment variable holding the path of an
// optional JSON logging configuration file.
const EnvConfig = "LOG_CONFIG"

// Config mirrors the JSON logging configuration file.
type Config struct {
	Level           string `json:"level"`
	Format          string `json:"format"` // text | logfmt | json
	ReportTimestamp bool   `json:"report_timestamp"`
}

// Setup builds the process logger on stderr. A config file named by
// LOG_CONFIG adjusts level, format, and timestamps; any failure loading
// it is non-fatal and falls back to the defaults. quiet raises the
// level to error regardless of the config.
func Setup(stderr io.Writer, quiet bool) Logger {
	logger := log.New(stderr)
	logger.SetLevel(log.InfoLevel)
	logger.SetReportTimestamp(false)

	if path := os.Getenv(EnvConfig); path != "" {
		if cfg, err := loadConfig(path); err != nil {
			_, _ = fmt.Fprintf(stderr, "failed to load logging config from %s: %v\n", path, err)
		} else {
			applyConfig(logger, cfg, stderr)
		}
	}
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return log.New(io.Discard)
}

func loadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyConfig(logger *log.Logger, cfg Config, stderr io.Writer) {
	if cfg.Level != "" {
		if lvl, err := log.ParseLevel(cfg.Level); err != nil {
			_, _ = fmt.Fprintf(stderr, "failed to parse log level %q: %v\n", cfg.Level, err)
		} else {
			logger.SetLevel(lvl)
		}
	}
	switch cfg.Format {
	case "", "text":
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	default:
		_, _ = fmt.Fprintf(stderr, "unknown log format %q, using text\n", cfg.Format)
	}
	logger.SetReportTimestamp(cfg.ReportTimestamp)
}
