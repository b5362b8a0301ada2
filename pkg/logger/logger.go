package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category
type Category string

const (
	CategoryStartup    Category = "startup"
	CategoryAPI        Category = "api"
	CategoryDB         Category = "db"
	CategoryAuth       Category = "auth"
	CategoryFunnel     Category = "funnel"
	CategoryWizard     Category = "wizard"
	CategoryGeneration Category = "generation"
	CategoryTracking   Category = "tracking"
	CategoryCascade    Category = "cascade"
	CategoryWebSocket  Category = "websocket"
	CategoryScheduler  Category = "scheduler"
)

// AllCategories is the read order used by ReadLogs when no category is given.
var AllCategories = []Category{
	CategoryStartup, CategoryAPI, CategoryDB, CategoryAuth, CategoryFunnel, CategoryWizard,
	CategoryGeneration, CategoryTracking, CategoryCascade, CategoryWebSocket, CategoryScheduler,
}

// Level represents log level
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LogEntry is one structured line in a category file.
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     Level                  `json:"level"`
	Category  Category               `json:"category"`
	Action    string                 `json:"action"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Duration  string                 `json:"duration,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

type categoryWriter struct {
	date string
	file *os.File
	log  *zap.Logger
}

// Logger fans entries out to one daily JSON file per category and,
// optionally, a colored console.
type Logger struct {
	mu      sync.Mutex
	logDir  string
	writers map[Category]*categoryWriter
	console *zap.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the default logger
func Init(logDir string, console bool) error {
	var err error
	once.Do(func() {
		defaultLogger, err = NewLogger(logDir, console)
	})
	return err
}

func NewLogger(logDir string, console bool) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		logDir:  logDir,
		writers: make(map[Category]*categoryWriter),
	}

	if console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), zapcore.DebugLevel)
		l.console = zap.New(core)
	}

	return l, nil
}

func fileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// fileLogger returns the zap logger bound to today's file for category,
// rolling over when the date changes.
func (l *Logger) fileLogger(category Category) (*zap.Logger, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	if w, ok := l.writers[category]; ok {
		if w.date == today {
			return w.log, nil
		}
		_ = w.log.Sync()
		w.file.Close()
	}

	path := filepath.Join(l.logDir, fmt.Sprintf("%s_%s.log", category, today))
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig()), zapcore.AddSync(file), zapcore.DebugLevel)
	w := &categoryWriter{date: today, file: file, log: zap.New(core)}
	l.writers[category] = w
	return w.log, nil
}

func entryFields(entry LogEntry) []zap.Field {
	fields := []zap.Field{
		zap.String("category", string(entry.Category)),
		zap.String("action", entry.Action),
	}
	if len(entry.Data) > 0 {
		fields = append(fields, zap.Any("data", entry.Data))
	}
	if entry.RequestID != "" {
		fields = append(fields, zap.String("request_id", entry.RequestID))
	}
	if entry.Duration != "" {
		fields = append(fields, zap.String("duration", entry.Duration))
	}
	if entry.Error != "" {
		fields = append(fields, zap.String("error", entry.Error))
	}
	return fields
}

// Log writes a log entry
func (l *Logger) Log(entry LogEntry) {
	lvl := entry.Level.zapLevel()
	fields := entryFields(entry)

	if fl, err := l.fileLogger(entry.Category); err != nil {
		fmt.Fprintf(os.Stderr, "logger: cannot open %s log: %v\n", entry.Category, err)
	} else if ce := fl.Check(lvl, entry.Message); ce != nil {
		ce.Write(fields...)
	}

	if l.console != nil {
		if ce := l.console.Check(lvl, fmt.Sprintf("[%s] %s: %s", entry.Category, entry.Action, entry.Message)); ce != nil {
			ce.Write(fields[2:]...)
		}
	}
}

// Close flushes and closes all file writers
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, w := range l.writers {
		_ = w.log.Sync()
		w.file.Close()
	}
	l.writers = make(map[Category]*categoryWriter)
	if l.console != nil {
		_ = l.console.Sync()
	}
}

// Default returns the default logger
func Default() *Logger {
	if defaultLogger == nil {
		Init("logs", true)
	}
	return defaultLogger
}

// Close flushes the default logger.
func Close() {
	if defaultLogger != nil {
		defaultLogger.Close()
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func write(level Level, category Category, action, message string, err error, data map[string]interface{}) {
	Default().Log(LogEntry{
		Level:    level,
		Category: category,
		Action:   action,
		Message:  message,
		Error:    errString(err),
		Data:     data,
	})
}

// Info logs info level message
func Info(category Category, action, message string, data map[string]interface{}) {
	write(LevelInfo, category, action, message, nil, data)
}

// Error logs error level message
func Error(category Category, action, message string, err error, data map[string]interface{}) {
	write(LevelError, category, action, message, err, data)
}

// Debug logs debug level message
func Debug(category Category, action, message string, data map[string]interface{}) {
	write(LevelDebug, category, action, message, nil, data)
}

// Warn logs warning level message
func Warn(category Category, action, message string, data map[string]interface{}) {
	write(LevelWarn, category, action, message, nil, data)
}

// Startup logs startup/initialization events
func Startup(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryStartup, action, message, nil, data)
}

func StartupWarn(action, message string, data map[string]interface{}) {
	write(LevelWarn, CategoryStartup, action, message, nil, data)
}

func StartupError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryStartup, action, message, err, data)
}

// Scheduler logs scheduled job events
func Scheduler(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryScheduler, action, message, nil, data)
}

func SchedulerWarn(action, message string, data map[string]interface{}) {
	write(LevelWarn, CategoryScheduler, action, message, nil, data)
}

func SchedulerError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryScheduler, action, message, err, data)
}

// Auth logs authentication related events
func Auth(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryAuth, action, message, nil, data)
}

func AuthError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryAuth, action, message, err, data)
}
