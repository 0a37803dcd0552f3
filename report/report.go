/*
Copyright © 2019 the GCTP authors.
This file is part of GCTP.

GCTP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GCTP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GCTP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package report delivers the informational and error messages produced
// while projections are initialized and used. Messages go to a single
// injectable Sink; by default they are logged to standard output.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level is the severity of a Message.
type Level int

const (
	// Info messages echo projection parameters and other diagnostics.
	Info Level = iota
	// Error messages describe a failure.
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "Info"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Message is a single message together with the source location that
// produced it.
type Message struct {
	Level Level
	Text  string
	File  string
	Line  int
}

// Sink receives messages.
type Sink func(Message)

var (
	sinkMu sync.RWMutex
	sink   Sink

	std = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stdout
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	return l
}

// SetSink replaces the package-wide sink. Passing nil restores the
// default sink.
func SetSink(s Sink) {
	sinkMu.Lock()
	sink = s
	sinkMu.Unlock()
}

// CurrentSink returns the package-wide sink.
func CurrentSink() Sink {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	if sink == nil {
		return Default
	}
	return sink
}

// Logger returns the logger used by the default sink, so callers can
// change its output or level.
func Logger() *logrus.Logger { return std }

// Default is the default sink. It writes to standard output.
func Default(m Message) {
	switch m.Level {
	case Info:
		std.Info("GCTP Info: " + m.Text)
	default:
		std.WithFields(logrus.Fields{
			"file": m.File,
			"line": m.Line,
		}).Error(fmt.Sprintf("GCTP Error:%s:%d %s", m.File, m.Line, m.Text))
	}
}

// Printer formats messages and sends them to a sink. The zero value
// sends messages to the package-wide sink.
type Printer struct {
	Sink Sink
}

// New returns a Printer that sends messages to s. A nil s uses the
// package-wide sink.
func New(s Sink) *Printer { return &Printer{Sink: s} }

func (p *Printer) send(level Level, text string) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
	}
	m := Message{Level: level, Text: text, File: filepath.Base(file), Line: line}
	if p != nil && p.Sink != nil {
		p.Sink(m)
		return
	}
	CurrentSink()(m)
}

// Infof sends an informational message.
func (p *Printer) Infof(format string, args ...interface{}) {
	p.send(Info, fmt.Sprintf(format, args...))
}

// Errorf sends an error message.
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.send(Error, fmt.Sprintf(format, args...))
}

// Error sends err as an error message and returns it unchanged.
func (p *Printer) Error(err error) error {
	if err != nil {
		p.send(Error, err.Error())
	}
	return err
}
