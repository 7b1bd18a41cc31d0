package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	RotateMaxSize    = 30 // MB
	RotateLocalTime  = true
	RotateMaxAge     = 365 // Дней
	RotateMaxBackups = 10  // Колличество файлов
	RotateCompress   = true

	TimestampFormat = "2006.01.02 15:04:05"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Config конфигурация лога
type Config struct {
	// Путь к директории лога
	Path string
	// Имя файла лога. Пустое - только консоль
	File    string
	Level   logrus.Level
	Console bool
	// Куда писать консольный вывод (по умолчанию os.Stderr, чтобы не смешивать с выводом программы)
	Out io.Writer
}

// Get быстрый конфиг на консоль
func Get(level logrus.Level) *logrus.Logger {
	return GetWithConfig(Config{
		File:    "",
		Level:   level,
		Console: true,
	})
}

// GetWithConfig единожды создаёт и возвращает логер с конфигурацией
func GetWithConfig(config Config) *logrus.Logger {
	once.Do(func() {
		logger = New(config)
		logger.Infof("----------===== начало записи в лог %s =====----------", time.Now().Format(TimestampFormat))
	})
	return logger
}

// New новый логер: консоль и (если не Console) файл с ротацией
func New(config Config) *logrus.Logger {
	out := config.Out
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.Level = config.Level
	log.Formatter = &logrus.TextFormatter{
		DisableColors:   false,
		TimestampFormat: TimestampFormat,
	}
	if config.Console || config.File == "" {
		log.Out = out
	} else {
		log.Out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   filepath.Join(config.Path, config.File),
			MaxSize:    RotateMaxSize, // MB
			MaxAge:     RotateMaxAge,  // Day
			MaxBackups: RotateMaxBackups,
			LocalTime:  RotateLocalTime,
			Compress:   RotateCompress,
		})
	}
	log.AddHook(LogrusContextHook{})
	return log
}

// ParseLevel уровень логирования из строки, при ошибке - warning
func ParseLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.WarnLevel
	}
	return l
}
