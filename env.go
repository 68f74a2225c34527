package quicklog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FromEnvOption customizes LoggerFromEnv and ServerFromEnv behavior.
type FromEnvOption func(*fromEnvConfig)

type fromEnvConfig struct {
	prefix string
	logger LoggerOptions
	server ServerOptions
	writer io.Writer
}

// WithEnvPrefix overrides the environment variable prefix. The default is
// "QUICKLOG_".
func WithEnvPrefix(prefix string) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvLoggerOptions seeds LoggerFromEnv with explicit options.
// Environment values override seeded ones.
func WithEnvLoggerOptions(opts LoggerOptions) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.logger = opts
	}
}

// WithEnvServerOptions seeds ServerFromEnv with explicit options.
// Environment values override seeded ones.
func WithEnvServerOptions(opts ServerOptions) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.server = opts
	}
}

// WithEnvWriter sets the writer OUTPUT=default resolves to. The default
// is os.Stdout.
func WithEnvWriter(w io.Writer) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.writer = w
	}
}

// LoggerFromEnv builds a Logger from environment variables, optionally
// seeded with explicit options.
//
// Recognised variables are {prefix}ARENAS and {prefix}ARENA_SIZE.
// Unparsable values are ignored.
func LoggerFromEnv(opts ...FromEnvOption) *Logger {
	cfg := resolveEnvConfig(opts)
	resolved := cfg.logger
	if value, ok := lookupEnv(cfg.prefix, "ARENAS"); ok {
		if parsed, ok := parseEnvInt(value); ok {
			resolved.Arenas = parsed
		}
	}
	if value, ok := lookupEnv(cfg.prefix, "ARENA_SIZE"); ok {
		if parsed, ok := parseEnvInt(value); ok {
			resolved.ArenaSize = parsed
		}
	}
	return NewWithOptions(resolved)
}

// ServerFromEnv builds a Server from environment variables, optionally
// seeded with explicit options.
//
// Recognised variables are {prefix}MAX_LOGGERS, {prefix}PLATFORM
// (notify|yield) and {prefix}OUTPUT. OUTPUT accepts stdout, stderr,
// discard, default, a file path opened for append, or
// stdout+/stderr+/default+<path> to tee. OUTPUT is only applied when no
// explicit Printer was
// seeded; a path that cannot be opened falls back to the default writer
// and the failure is reported through the server's own printer.
func ServerFromEnv(opts ...FromEnvOption) *Server {
	cfg := resolveEnvConfig(opts)
	resolved := cfg.server
	if value, ok := lookupEnv(cfg.prefix, "MAX_LOGGERS"); ok {
		if parsed, ok := parseEnvInt(value); ok {
			resolved.MaxLoggers = parsed
		}
	}
	if value, ok := lookupEnv(cfg.prefix, "PLATFORM"); ok {
		if parsed, ok := parseEnvPlatform(value); ok {
			resolved.Platform = parsed
		}
	}
	baseWriter := cfg.writer
	if baseWriter == nil {
		baseWriter = os.Stdout
	}
	outputValue, hasOutput := lookupEnv(cfg.prefix, "OUTPUT")
	var outputErr error
	if resolved.Printer == nil {
		writer := baseWriter
		if hasOutput {
			if resolvedWriter, err := writerFromEnvOutput(outputValue, baseWriter); err != nil {
				outputErr = err
			} else {
				writer = resolvedWriter
			}
		}
		resolved.Printer = NewWriterPrinter(writer)
	}
	srv := NewServerWithOptions(resolved)
	if outputErr != nil {
		srv.printer.Print("quicklog: %v, using default output", outputErr)
		if srv.flusher != nil {
			_ = srv.flusher.Flush()
		}
	}
	return srv
}

func resolveEnvConfig(opts []FromEnvOption) fromEnvConfig {
	cfg := fromEnvConfig{prefix: "QUICKLOG_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func parseEnvPlatform(value string) (Platform, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "notify":
		return NewNotifyPlatform(), true
	case "yield":
		return &YieldPlatform{}, true
	default:
		return nil, false
	}
}

func writerFromEnvOutput(value string, base io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nil
	}
	if base == nil {
		base = io.Discard
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard":
		return io.Discard, nil
	case "default":
		return base, nil
	}
	const (
		stdoutPrefix  = "stdout+"
		stderrPrefix  = "stderr+"
		defaultPrefix = "default+"
	)
	switch {
	case strings.HasPrefix(lowered, stdoutPrefix):
		return teeEnvOutput(os.Stdout, trimmed[len(stdoutPrefix):])
	case strings.HasPrefix(lowered, stderrPrefix):
		return teeEnvOutput(os.Stderr, trimmed[len(stderrPrefix):])
	case strings.HasPrefix(lowered, defaultPrefix):
		return teeEnvOutput(base, trimmed[len(defaultPrefix):])
	default:
		return openLogOutputFile(trimmed)
	}
}

func teeEnvOutput(primary io.Writer, path string) (io.Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return primary, nil
	}
	fileWriter, err := openLogOutputFile(path)
	if err != nil {
		return primary, err
	}
	return io.MultiWriter(primary, fileWriter), nil
}

func openLogOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", path, err)
	}
	return file, nil
}
