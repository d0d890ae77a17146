package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
)

type Fields map[string]interface{}

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

var levelNames = map[LogLevel]string{
	DEBUG:    "DEBUG",
	INFO:     "INFO",
	WARNING:  "WARNING",
	ERROR:    "ERROR",
	CRITICAL: "CRITICAL",
}

type Logger struct {
	level       LogLevel
	out         *log.Logger
	closer      io.Closer
	serviceName string
	mu          sync.RWMutex
}

// New builds a logger writing to stdout and, when logDir is set, to a rotating
// app.log inside logDir.
func New(logDir, serviceName, level string) (*Logger, error) {
	if logDir == "" {
		return NewWithWriter(os.Stdout, serviceName, level), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "app.log"),
		MaxSize:    constants.LoggerMaxSize,
		MaxBackups: constants.LoggerMaxBackups,
		MaxAge:     constants.LoggerMaxAge,
		Compress:   true,
	}

	l := NewWithWriter(io.MultiWriter(os.Stdout, fileWriter), serviceName, level)
	l.closer = fileWriter
	return l, nil
}

func NewWithWriter(w io.Writer, serviceName, level string) *Logger {
	return &Logger{
		level:       parseLevel(level),
		out:         log.New(w, "", log.LstdFlags),
		serviceName: serviceName,
	}
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) ShouldLog(level LogLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

func (l *Logger) SetLevel(level string) {
	l.mu.Lock()
	l.level = parseLevel(level)
	l.mu.Unlock()
}

func (l *Logger) log(level LogLevel, msg string) {
	l.logWithFields(level, nil, msg, nil)
}

func (l *Logger) logWithFields(level LogLevel, ctx context.Context, msg string, fields Fields) {
	l.mu.RLock()
	currentLevel := l.level
	service := l.serviceName
	l.mu.RUnlock()

	if level < currentLevel {
		return
	}

	prefix := levelNames[level]
	if service != "" {
		prefix = fmt.Sprintf("[%s] [%s]", prefix, service)
	} else {
		prefix = fmt.Sprintf("[%s]", prefix)
	}

	var fieldParts []string

	if ctx != nil {
		if traceID, ok := ctx.Value(constants.TraceIDKey).(string); ok && traceID != "" {
			if _, dup := fields["trace_id"]; !dup {
				fieldParts = append(fieldParts, fmt.Sprintf("trace_id=%s", traceID))
			}
		}
	}

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, fields[k]))
		}
	}

	if len(fieldParts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(fieldParts, " "))
	}

	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "unknown"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	_ = l.out.Output(0, fmt.Sprintf("%s %s:%d %s", prefix, file, line, msg))
}

func (l *Logger) Debug(msg string)    { l.log(DEBUG, msg) }
func (l *Logger) Info(msg string)     { l.log(INFO, msg) }
func (l *Logger) Warn(msg string)     { l.log(WARNING, msg) }
func (l *Logger) Error(msg string)    { l.log(ERROR, msg) }
func (l *Logger) Critical(msg string) { l.log(CRITICAL, msg) }

func (l *Logger) Debugf(format string, args ...any) {
	l.log(DEBUG, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.log(INFO, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log(WARNING, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log(ERROR, fmt.Sprintf(format, args...))
}

func (l *Logger) Criticalf(format string, args ...any) {
	l.log(CRITICAL, fmt.Sprintf(format, args...))
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.log(CRITICAL, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func (l *Logger) WithFields(ctx context.Context, fields Fields) *Entry {
	return &Entry{
		logger: l,
		ctx:    ctx,
		fields: fields,
	}
}

type Entry struct {
	logger *Logger
	ctx    context.Context
	fields Fields
}

func (e *Entry) write(level LogLevel, msg string) {
	e.logger.logWithFields(level, e.ctx, msg, e.fields)
}

func (e *Entry) Debug(msg string) { e.write(DEBUG, msg) }
func (e *Entry) Info(msg string)  { e.write(INFO, msg) }
func (e *Entry) Warn(msg string)  { e.write(WARNING, msg) }
func (e *Entry) Error(msg string) { e.write(ERROR, msg) }

func (e *Entry) Debugf(format string, args ...any) {
	e.write(DEBUG, fmt.Sprintf(format, args...))
}

func (e *Entry) Infof(format string, args ...any) {
	e.write(INFO, fmt.Sprintf(format, args...))
}

func (e *Entry) Warnf(format string, args ...any) {
	e.write(WARNING, fmt.Sprintf(format, args...))
}

func (e *Entry) Errorf(format string, args ...any) {
	e.write(ERROR, fmt.Sprintf(format, args...))
}

func parseLevel(value string) LogLevel {
	switch strings.TrimSpace(strings.ToUpper(value)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	case "CRITICAL":
		return CRITICAL
	default:
		return INFO
	}
}
