package report

import (
	"fmt"
	"os"
	"time"
)

// AuditLog appends one timestamped line per event to a text log. The
// file is opened in append mode on every write and closed after, so
// each entry is written whole or not at all.
type AuditLog struct {
	path string
	now  func() time.Time
}

// NewAuditLog creates an append-only log at the given path
func NewAuditLog(path string) *AuditLog {
	return &AuditLog{path: path, now: time.Now}
}

// Log appends a single event line
func (l *AuditLog) Log(message string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s: %s\n", l.now().Format(time.RFC3339), message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("appending audit log: %w", err)
	}
	return nil
}
