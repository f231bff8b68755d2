// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the printf-style logging surface used across the
// toolkit, backed by logrus with a compact colored formatter.
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

type formatter struct {
	colored bool
}

func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	level := levelTag(entry.Level)
	if f.colored {
		level = levelColor(entry.Level).Sprint(level)
	}
	return []byte(fmt.Sprintf("%s %s %s\n", entry.Time.Format("2006-01-02 15:04:05"), level, entry.Message)), nil
}

func levelTag(level logrus.Level) string {
	switch level {
	case logrus.DebugLevel:
		return "[DEBUG]"
	case logrus.WarnLevel:
		return "[WARN]"
	case logrus.ErrorLevel:
		return "[ERROR]"
	case logrus.FatalLevel:
		return "[FATAL]"
	default:
		return "[INFO]"
	}
}

func levelColor(level logrus.Level) *color.Color {
	switch level {
	case logrus.DebugLevel:
		return color.New(color.FgCyan)
	case logrus.WarnLevel:
		return color.New(color.FgYellow)
	case logrus.ErrorLevel, logrus.FatalLevel:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgGreen)
	}
}

// Init configures the global logger. Colors are enabled only when stderr is a
// terminal.
func Init(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&formatter{colored: isatty.IsTerminal(os.Stderr.Fd())})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

// Info logs a formatted message at info level.
func Info(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}

// Warn logs a formatted message at warning level.
func Warn(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}

// Error logs a formatted message at error level.
func Error(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}

// Fatal logs a formatted message at fatal level and exits with a non-zero
// status.
func Fatal(format string, args ...interface{}) {
	logrus.Fatalf(format, args...)
}
