package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a zerolog logger tagged with the name of the owning service.
type Logger struct {
	zl      zerolog.Logger
	service string
}

// New creates a logger writing to the configured output.
func New(cfg *Config, service string) *Logger {
	return NewWithWriter(cfg, service, outputWriter(cfg.Output))
}

// NewWithWriter creates a logger writing to w. An unknown level falls back
// to info.
func NewWithWriter(cfg *Config, service string, w io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case "console", "pretty":
		zl = zerolog.New(consoleWriter(cfg.NoColor, service, w))
	default:
		zl = zerolog.New(w)
	}

	zc := zl.Level(level).With()
	if cfg.Timestamp {
		zc = zc.Timestamp()
	}
	if cfg.Caller {
		zc = zc.Caller()
	}
	return &Logger{zl: zc.Logger(), service: service}
}

// NewDefault creates an info-level console logger on stderr.
func NewDefault(service string) *Logger {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return New(cfg, service)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) derive(zc zerolog.Context) *Logger {
	return &Logger{zl: zc.Logger(), service: l.service}
}

// WithComponent tags every entry with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.derive(l.zl.With().Str(FieldComponent, name))
}

// WithRequestID tags every entry with a request id.
func (l *Logger) WithRequestID(id string) *Logger {
	return l.derive(l.zl.With().Str(FieldRequestID, id))
}

// WithFields adds fixed fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return l.derive(l.zl.With().Fields(fields))
}

// WithError adds an error field to every entry.
func (l *Logger) WithError(err error) *Logger {
	return l.derive(l.zl.With().Err(err))
}

// Zerolog returns the underlying zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

func (l *Logger) Debug(msg string, fields ...map[string]any) { emit(l.zl.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields ...map[string]any)  { emit(l.zl.Info(), msg, fields) }
func (l *Logger) Warn(msg string, fields ...map[string]any)  { emit(l.zl.Warn(), msg, fields) }
func (l *Logger) Error(msg string, fields ...map[string]any) { emit(l.zl.Error(), msg, fields) }

// emit is a no-op for disabled levels, where zerolog hands out a nil event.
func emit(event *zerolog.Event, msg string, fields []map[string]any) {
	if event == nil {
		return
	}
	for _, f := range fields {
		event.Fields(f)
	}
	event.Msg(msg)
}

var global *Logger

// SetGlobalLogger replaces the logger used by the package-level functions.
func SetGlobalLogger(l *Logger) { global = l }

// GetGlobalLogger returns the global logger, creating a default one first.
func GetGlobalLogger() *Logger {
	if global == nil {
		global = NewDefault(defaultService)
	}
	return global
}

// Init builds the global logger from cfg.
func Init(cfg *Config) {
	cfg.ApplyDefaults()
	global = New(cfg, defaultService)
}

func Debug(msg string, fields ...map[string]any) { GetGlobalLogger().Debug(msg, fields...) }
func Info(msg string, fields ...map[string]any)  { GetGlobalLogger().Info(msg, fields...) }
func Warn(msg string, fields ...map[string]any)  { GetGlobalLogger().Warn(msg, fields...) }
func Error(msg string, fields ...map[string]any) { GetGlobalLogger().Error(msg, fields...) }

// WithComponent returns a component logger derived from the global logger.
func WithComponent(name string) *Logger { return GetGlobalLogger().WithComponent(name) }

const defaultService = "github2"

func outputWriter(output string) io.Writer {
	if strings.EqualFold(output, "stdout") {
		return os.Stdout
	}
	return os.Stderr
}

var levelTags = map[string]struct{ tag, color string }{
	"debug": {"DBG", "36"},
	"info":  {"INF", "32"},
	"warn":  {"WRN", "33"},
	"error": {"ERR", "31"},
	"fatal": {"FTL", "35"},
}

// consoleWriter prints "[SVC][LVL] message key:value", the service tag being
// the first three letters of the service name.
func consoleWriter(noColor bool, service string, w io.Writer) zerolog.ConsoleWriter {
	paint := func(color, s string) string {
		if noColor {
			return s
		}
		return "\033[" + color + "m" + s + "\033[0m"
	}
	prefix := ""
	if len(service) >= 3 {
		prefix = paint("34", "["+strings.ToUpper(service[:3])+"]")
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: "15:04:05",
		FormatLevel: func(i any) string {
			lvl := fmt.Sprint(i)
			t, ok := levelTags[lvl]
			if !ok {
				return prefix + "[" + strings.ToUpper(lvl) + "]"
			}
			return prefix + paint(t.color, "["+t.tag+"]")
		},
		FormatFieldName: func(i any) string { return fmt.Sprintf("%s:", i) },
	}
}
