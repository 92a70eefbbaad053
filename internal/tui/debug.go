package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugLogger logs keystrokes and layout events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "stickystrip-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{file: f, enabled: true}
	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil || debugLog.file == nil {
		return
	}
	debugLog.log("DEBUG_END", nil)
	_ = debugLog.file.Close()
	debugLog.file = nil
}

// LogKeyPress logs a keystroke.
func LogKeyPress(msg tea.KeyMsg) {
	logEvent("key", map[string]any{"key": msg.String()})
}

// logEvent logs a named event with fields.
func logEvent(kind string, fields map[string]any) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log(kind, fields)
}

func (d *DebugLogger) log(kind string, fields map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.file == nil {
		return
	}

	d.seq++
	entry := map[string]any{
		"seq":  d.seq,
		"kind": kind,
	}
	for k, v := range fields {
		entry[k] = v
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = d.file.Write(append(data, '\n'))
}
