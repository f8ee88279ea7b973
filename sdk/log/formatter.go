package plotlog

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

// Formatter prints a colored level, the message and the sorted fields.
type Formatter struct {
	DisabledPrintFields bool
	DisabledColors      bool
}

// Format format a log
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var keys = make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "prefix" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	b := &bytes.Buffer{}
	prefixFieldClashes(entry.Data)
	f.print(b, entry, keys)

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *Formatter) print(b *bytes.Buffer, entry *logrus.Entry, keys []string) {
	var levelColor, reset string
	if !f.DisabledColors {
		reset = ansi.Reset
		switch entry.Level {
		case logrus.InfoLevel:
			levelColor = ansi.Green
		case logrus.WarnLevel:
			levelColor = ansi.Yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			levelColor = ansi.Red
		default:
			levelColor = ansi.Blue
		}
	}

	levelText := strings.ToUpper(entry.Level.String())
	if entry.Level == logrus.WarnLevel {
		levelText = "WARN"
	}
	levelText = "[" + levelText + "]"

	fmt.Fprintf(b, "%s %s%+5s%s %s", entry.Time.Format("2006-01-02 15:04:05"), levelColor, levelText, reset, entry.Message)

	if f.DisabledPrintFields {
		return
	}
	for _, k := range keys {
		fmt.Fprintf(b, " %s%s%s=%+v", levelColor, k, reset, entry.Data[k])
	}
}

func prefixFieldClashes(data logrus.Fields) {
	if _, ok := data["time"]; ok {
		data["fields.time"] = data["time"]
	}
	if _, ok := data["msg"]; ok {
		data["fields.msg"] = data["msg"]
	}
	if _, ok := data["level"]; ok {
		data["fields.level"] = data["level"]
	}
}
