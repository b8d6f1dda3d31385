/*
 *
 * keylegend - keyboard layout legends for keycap rendering
 * Copyright (C) 2021 Load Impact
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package log provides a category-aware logger for the layout packages.
package log

import (
	"io/ioutil"
	"regexp"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger and annotates every entry with a
// category. An optional category filter suppresses entries whose
// category does not match.
type Logger struct {
	*logrus.Logger
	categoryFilter *regexp.Regexp
}

// New returns a Logger writing through the given logrus logger.
func New(logger *logrus.Logger, categoryFilter *regexp.Regexp) *Logger {
	return &Logger{
		Logger:         logger,
		categoryFilter: categoryFilter,
	}
}

// NewNullLogger returns a Logger that discards everything.
func NewNullLogger() *Logger {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)
	return New(log, nil)
}

// Debugf logs a debug message under the given category.
func (l *Logger) Debugf(category string, msg string, args ...interface{}) {
	l.logf(logrus.DebugLevel, category, msg, args...)
}

// Infof logs an info message under the given category.
func (l *Logger) Infof(category string, msg string, args ...interface{}) {
	l.logf(logrus.InfoLevel, category, msg, args...)
}

// Warnf logs a warning message under the given category.
func (l *Logger) Warnf(category string, msg string, args ...interface{}) {
	l.logf(logrus.WarnLevel, category, msg, args...)
}

// Errorf logs an error message under the given category.
func (l *Logger) Errorf(category string, msg string, args ...interface{}) {
	l.logf(logrus.ErrorLevel, category, msg, args...)
}

func (l *Logger) logf(level logrus.Level, category string, msg string, args ...interface{}) {
	if l.categoryFilter != nil && !l.categoryFilter.MatchString(category) {
		return
	}
	l.WithField("category", category).Logf(level, msg, args...)
}

// DebugMode returns true if the logger level is set to Debug or higher.
func (l *Logger) DebugMode() bool {
	return l.Logger.GetLevel() >= logrus.DebugLevel
}

// SetLevel sets the logger level from a level string.
func (l *Logger) SetLevel(level string) error {
	pl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.Logger.SetLevel(pl)
	return nil
}
