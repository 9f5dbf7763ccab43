package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when the config does not name one, relative to the working directory.
const DefaultPath = "logs/viewer.log"

// DefaultMaxLines bounds the in-memory history shown by the console.
const DefaultMaxLines = 500

// Logger keeps recent lines in memory and appends every line to a file on disk.
// An empty path keeps the log in memory only. File errors are ignored; the in-memory copy is kept.
type Logger struct {
	mu    sync.Mutex
	path  string
	max   int
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path (may be empty) and creates the parent directory.
// maxLines <= 0 uses DefaultMaxLines.
func New(path string, maxLines int) *Logger {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, max: maxLines, now: time.Now}
}

// Log stores line prefixed with [timestamp] and appends it to the file. A nil Logger discards it.
func (l *Logger) Log(line string) {
	if l == nil {
		return
	}
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if over := len(l.lines) - l.max; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats like fmt.Sprintf and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns up to n of the most recent lines.
func (l *Logger) Tail(n int) []string {
	lines := l.Lines()
	if n >= 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
