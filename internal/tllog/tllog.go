// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

// Package tllog extends the standard log package to allow multiple named
// loggers, each with its own level, the way the schema compiler's CRC
// warnings, semantic errors, and debug tracing need independent verbosity.
package tllog

import (
	"fmt"
	"io"
	golog "log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	loggers = make(map[string]*logger)
	mu      sync.RWMutex
)

type logger struct {
	*golog.Logger
	level Level
}

// AddLogger registers a named logger that emits at level or higher.
func AddLogger(name string, output io.Writer, level Level, prefix bool) {
	mu.Lock()
	defer mu.Unlock()

	flags := 0
	if prefix {
		flags = golog.LstdFlags
	}
	loggers[name] = &logger{golog.New(output, "", flags), level}
}

// DelLogger removes a named logger added with AddLogger.
func DelLogger(name string) {
	mu.Lock()
	defer mu.Unlock()

	delete(loggers, name)
}

// SetLevel changes the level of a named logger.
func SetLevel(name string, level Level) error {
	mu.Lock()
	defer mu.Unlock()

	l, ok := loggers[name]
	if !ok {
		return fmt.Errorf("no such logger %q", name)
	}
	l.level = level
	return nil
}

// Init sets up the standard "stdio" and, optionally, "file" loggers from
// CLI-style settings. Mirrors the teacher's per-tool logSetup helpers.
func Init(level Level, stderr bool, logfile string) error {
	if stderr {
		AddLogger("stdio", os.Stderr, level, runtime.GOOS != "windows")
	}

	if logfile != "" {
		if err := os.MkdirAll(filepath.Dir(logfile), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(logfile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0660)
		if err != nil {
			return err
		}
		AddLogger("file", f, level, true)
	}
	return nil
}

func emit(level Level, format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()

	for _, l := range loggers {
		if l.level <= level {
			l.Printf("["+level.String()+"] "+format, args...)
		}
	}
}

func Debug(format string, args ...interface{}) { emit(DEBUG, format, args...) }
func Info(format string, args ...interface{})  { emit(INFO, format, args...) }
func Warn(format string, args ...interface{})  { emit(WARN, format, args...) }
func Error(format string, args ...interface{}) { emit(ERROR, format, args...) }

// Fatal logs at FATAL on every registered logger and terminates the process.
// cmd/tlgen uses it for failures that end the run: loading the scheme,
// compiling the schema, and writing the output.
func Fatal(format string, args ...interface{}) {
	emit(FATAL, format, args...)
	os.Exit(1)
}
