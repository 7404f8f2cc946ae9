package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	debugFile *os.File
	logsDir   string
	mu        sync.RWMutex
)

const debugLogPrefix = "debug-"

// ConfigureDebug sets the directory for debug logs
func ConfigureDebug(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logsDir = dir
}

// Debug writes a message to debug.log file in the configured directory
func Debug(format string, args ...any) {
	// add timestamp to each debug message
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	// If no logs directory is configured, do nothing. The TUI owns the terminal.
	if dir == "" {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if debugFile == nil {
		_ = os.MkdirAll(dir, 0o755)
		debugFile, _ = os.Create(filepath.Join(dir, fmt.Sprintf("%s%s.log", debugLogPrefix, time.Now().Format("20060102-150405"))))
	}
	if debugFile != nil {
		fmt.Fprintf(debugFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	}
}

// CloseDebug flushes and closes the current debug log. A later Debug call
// opens a fresh file.
func CloseDebug() error {
	mu.Lock()
	defer mu.Unlock()
	var err error
	if debugFile != nil {
		err = debugFile.Close()
		debugFile = nil
	}
	return err
}

// CleanupLogs keeps the newest keep debug logs in the configured directory and
// removes the rest. keep <= 0 removes nothing.
func CleanupLogs(keep int) {
	if keep <= 0 {
		return
	}

	mu.RLock()
	dir := logsDir
	mu.RUnlock()
	if dir == "" {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, debugLogPrefix) || filepath.Ext(name) != ".log" {
			continue
		}
		logs = append(logs, name)
	}
	if len(logs) <= keep {
		return
	}

	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(logs)))
	for _, name := range logs[keep:] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			Debug("Error removing old log %s: %v", name, err)
		}
	}
}
