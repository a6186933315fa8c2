// Package log is inkwell's debug logger.
//
// Logging is off unless --debug or INKWELL_DEBUG turns it on, in which case
// entries go to a file (INKWELL_LOG, default debug.log) as
//
//	2026-10-16T10:45:00 [WARN] [watcher] reload failed path=notes.md
//
// and are published to a broker so the TUI can surface warnings.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/inkwell/internal/pubsub"
)

// Level is log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related messages.
type Category string

const (
	CatHighlight Category = "highlight" // highlighting passes
	CatEditor    Category = "editor"    // edits, history, overlay sync
	CatConfig    Category = "config"    // config load/save
	CatWatcher   Category = "watcher"   // file change events
	CatCache     Category = "cache"     // highlight cache
	CatUI        Category = "ui"        // everything else on screen
)

// Entry is one log record.
type Entry struct {
	Time     time.Time
	Level    Level
	Category Category
	Message  string
	Fields   []any
}

// String formats the entry as one log line without the trailing newline.
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", e.Time.Format("2006-01-02T15:04:05"), e.Level, e.Category, e.Message)
	for i := 0; i+1 < len(e.Fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", e.Fields[i], e.Fields[i+1])
	}
	if len(e.Fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", e.Fields[len(e.Fields)-1])
	}
	return b.String()
}

// Logger writes entries and publishes them.
type Logger struct {
	mu       sync.Mutex
	w        io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[Entry]
}

// sessionMarker starts the line Init writes for each run.
const sessionMarker = "---"

var (
	mu            sync.RWMutex
	defaultLogger *Logger
)

// Init opens path for appending and installs the global logger. Each run
// starts with a session line carrying a fresh ID, so runs appended to the
// same file can be told apart. The returned function closes the file and
// uninstalls the logger.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: user-chosen debug log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s session %s\n", sessionMarker, uuid.NewString()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("writing log file: %w", err)
	}
	l := New(f)
	install(l)
	return func() {
		install(nil)
		l.broker.Close()
		_ = f.Close()
	}, nil
}

// New creates a logger writing to w. Tests install one with SetDefault.
func New(w io.Writer) *Logger {
	return &Logger{
		w:        w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[Entry](),
	}
}

// SetDefault installs l as the global logger and returns a function that
// restores the previous one.
func SetDefault(l *Logger) func() {
	mu.Lock()
	prev := defaultLogger
	defaultLogger = l
	mu.Unlock()
	return func() { install(prev) }
}

func install(l *Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

func current() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Enabled reports whether a logger is installed and on.
func Enabled() bool {
	l := current()
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// SetEnabled toggles logging.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level. fields are key, value pairs.
func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields) }

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) { write(LevelInfo, cat, msg, fields) }

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) { write(LevelWarn, cat, msg, fields) }

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields) }

// ErrorErr logs err under the "error" key.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields)
}

func write(level Level, cat Category, msg string, fields []any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel {
		return
	}

	e := Entry{Time: time.Now(), Level: level, Category: cat, Message: msg, Fields: fields}
	if l.w != nil {
		_, _ = io.WriteString(l.w, e.String()+"\n")
	}
	l.broker.Publish(pubsub.LoggedEvent, e)
}

// Event is a published log entry as it arrives in the TUI.
type Event = pubsub.Event[Entry]

// Listener delivers log events to the TUI.
type Listener = pubsub.ContinuousListener[Entry]

// NewListener subscribes to the global logger until ctx is done.
// It returns nil when logging is not initialized.
func NewListener(ctx context.Context) *Listener {
	l := current()
	if l == nil {
		return nil
	}
	return pubsub.NewContinuousListener[Entry](ctx, l.broker)
}
