package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Максимальная глубина поиска вызывающего кода
const callerDepth = 25

// LogrusContextHook добавляет в запись поле source с файлом и строкой вызова
type LogrusContextHook struct{}

// Levels хук работает на всех уровнях
func (hook LogrusContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire добавляет source в запись
func (hook LogrusContextHook) Fire(entry *logrus.Entry) error {
	if frame, ok := callerFrame(); ok {
		entry.Data["source"] = fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
	}
	return nil
}

// Первый кадр стека вне logrus и этого пакета
func callerFrame() (runtime.Frame, bool) {
	pcs := make([]uintptr, callerDepth)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "sirupsen/logrus") && !strings.Contains(frame.Function, "pkg/logger.") {
			return frame, true
		}
		if !more {
			return runtime.Frame{}, false
		}
	}
}
