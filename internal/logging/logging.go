// Package logging builds the logrus loggers used by the numpart solvers.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

type textFormatter struct{}

// Format renders "LEVL: timestamp message key=value ..." with fields sorted
// by key so that output is stable across runs.
func (f *textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	levelText := strings.ToUpper(entry.Level.String())
	if len(levelText) > 4 {
		levelText = levelText[0:4]
	}
	timeStamp := entry.Time.Format("2006/01/02 15:04:05.000000")
	fmt.Fprintf(b, "%s: %s %-44s", levelText, timeStamp, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

var standardTextFormatter = &textFormatter{}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out:       w,
		Formatter: standardTextFormatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
	}
}

// Discard returns a logger that drops everything. Solvers use it when the
// caller does not supply one.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}
