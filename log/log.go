// Package log provides structured, file-backed logging on top of logrus.
//
// Logging is off unless logs.write is set; until then every call is discarded.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/key"
	"github.com/layervue/create-layervue/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = discard()

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup opens today's log file and configures format and level from the global configuration.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = discard()
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	return configure(f)
}

func configure(out io.Writer) error {
	l := logrus.New()
	l.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// WithField returns an entry carrying a single structured field.
func WithField(k string, v any) *logrus.Entry {
	return logger.WithField(k, v)
}

// WithFields returns an entry carrying the given structured fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
