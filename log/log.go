package log

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Cmiroslaf/BEFA-Library/common/observable"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	source = observable.NewEmptySubject[Event]()
	level  = INFO
)

type MylogFormatter struct{}

func (f *MylogFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	b.WriteString(entry.Time.Format("2006/01/02 15:04:05"))
	b.WriteString(fmt.Sprintf(" |%.4s| ", entry.Level))

	b.WriteString(entry.Message)

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&MylogFormatter{})
}

type Event struct {
	LogLevel LogLevel
	Payload  string
}

func (e *Event) Type() string {
	return e.LogLevel.String()
}

func Infoln(format string, v ...any) {
	event := newLog(INFO, format, v...)
	emit(event)
	print(event)
}

func Warnln(format string, v ...any) {
	event := newLog(WARNING, format, v...)
	emit(event)
	print(event)
}

func Errorln(format string, v ...any) {
	event := newLog(ERROR, format, v...)
	emit(event)
	print(event)
}

func Debugln(format string, v ...any) {
	event := newLog(DEBUG, format, v...)
	emit(event)
	print(event)
}

func Fatalln(format string, v ...any) {
	log.Fatalf(format, v...)
}

// Subscribe receives every log event regardless of the current level, on
// the goroutine that logged it.
func Subscribe(callback func(Event)) observable.Subscription {
	return source.Subscribe(callback)
}

func UnSubscribe(sub observable.Subscription) {
	sub.Unsubscribe()
}

func Level() LogLevel {
	return level
}

func SetLevel(newLevel LogLevel) {
	level = newLevel
}

// SetOutput redirects printed logs to w.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetOutputFile writes printed logs to a rotated file.
func SetOutputFile(file string, maxSize, maxBackups, maxAge int, compress bool) {
	if file != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSize, // megabytes
			MaxBackups: maxBackups,
			MaxAge:     maxAge,   // days
			Compress:   compress, // disabled by default
		})
	}
}

func emit(event Event) {
	source.Update(event)
}

func print(data Event) {
	if data.LogLevel < level {
		return
	}

	switch data.LogLevel {
	case INFO:
		log.Infoln(data.Payload)
	case WARNING:
		log.Warnln(data.Payload)
	case ERROR:
		log.Errorln(data.Payload)
	case DEBUG:
		log.Debugln(data.Payload)
	}
}

func newLog(logLevel LogLevel, format string, v ...any) Event {
	return Event{
		LogLevel: logLevel,
		Payload:  fmt.Sprintf(format, v...),
	}
}
