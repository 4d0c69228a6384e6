package providers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"wadboard/internal/structures"

	"github.com/rs/zerolog"
)

type TypeEnum string

const (
	TypeApp   TypeEnum = "app"
	TypeHTTP  TypeEnum = "http"
	TypeProbe TypeEnum = "probe"
	TypeWol   TypeEnum = "wol"
	TypeAuth  TypeEnum = "auth"
	TypeStore TypeEnum = "store"
)

const logFileName = "wadboard.log"

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	logger zerolog.Logger
	file   *os.File
}

func (l *LogProvider) event(e *zerolog.Event, t TypeEnum, format string, args ...interface{}) {
	e.Str("type", string(t)).Msgf(format, args...)
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Error(), t, format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Warn(), t, format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Debug(), t, format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Info(), t, format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Fatal(), t, format, args...)
}

func (l *LogProvider) Close() {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil || conf.Logger.Level == "" {
		level = zerolog.InfoLevel
	}
	if conf.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	var file *os.File
	if conf.Logger.Dir != "" {
		mode := os.FileMode(conf.Logger.Mode)
		if mode == 0 {
			mode = 0644
		}
		file, err = os.OpenFile(filepath.Join(conf.Logger.Dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
	}
	if conf.Debug {
		out = zerolog.MultiLevelWriter(out, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	return &LogProvider{
		logger: zerolog.New(out).Level(level).With().Timestamp().Str("app", conf.AppName).Logger(),
		file:   file,
	}, nil
}
