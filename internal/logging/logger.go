// Package logging emits structured JSON log lines to stderr.
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Fields carries structured key/value context for a log line.
type Fields map[string]interface{}

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects log output; tests use it to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func emit(level, msg string, err error, fields Fields) {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["level"] = level
	entry["ts"] = time.Now().UTC().Format(time.RFC3339)
	entry["msg"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}

	b, merr := json.Marshal(entry)
	if merr != nil {
		// fallback to plain logging
		log.Printf("%s: %s (%v)", level, msg, fields)
		return
	}
	mu.Lock()
	defer mu.Unlock()
	out.Write(append(b, '\n'))
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit("info", msg, nil, fields)
}

// Error logs an error message and includes the error text in the line.
func Error(msg string, err error, fields Fields) {
	emit("error", msg, err, fields)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	emit("fatal", msg, err, fields)
	os.Exit(1)
}
