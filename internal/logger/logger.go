package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger writing through the standard logger.
func New() Logger { return &stdLogger{l: log.Default()} }

// NewWriter returns a Logger writing to w, without timestamps.
func NewWriter(w io.Writer) Logger { return &stdLogger{l: log.New(w, "", 0)} }

func (l *stdLogger) Infof(format string, v ...any)  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf("[ERROR] "+format, v...) }
