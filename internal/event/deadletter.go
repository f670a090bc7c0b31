package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DeadLetterEntry is one line of the dead-letter journal. EventType and
// RequestID are duplicated out of Event so the file can be grepped.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	RecordedAt    time.Time `json:"recorded_at"`
	EventType     Type      `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
	Event         Event     `json:"event"`
}

// DeadLetterWriter appends undeliverable events to a JSONL file. Each entry
// is synced before Write returns so a crash loses at most the entry in flight.
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating it when missing.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f, now: time.Now}, nil
}

func (dlw *DeadLetterWriter) Write(evt Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		RecordedAt:    dlw.now().UTC(),
		EventType:     evt.Type,
		Attempts:      attempts,
		Event:         evt,
	}
	if id, ok := evt.GetMetadataValue(MetadataKeyRequestID).(string); ok {
		entry.RequestID = id
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode dead letter for %s: %w", evt.Type, err)
	}
	line = append(line, '\n')

	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	if _, err := dlw.file.Write(line); err != nil {
		return err
	}
	return dlw.file.Sync()
}

func (dlw *DeadLetterWriter) Close() error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	return dlw.file.Close()
}

// ReadDeadLetters parses a dead-letter journal, skipping blank lines.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, error) {
	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e DeadLetterEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return entries, fmt.Errorf("dead letter line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}
