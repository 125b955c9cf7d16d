// Package store keeps an append-only log of successful generations. The log
// is an optional capability: a nil *History disables it without changing the
// generate path's behavior.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/edvin/pginfra/internal/model"
)

// History appends generation records to a JSONL file, one record per line.
type History struct {
	mu   sync.Mutex
	path string
}

func NewHistory(path string) *History {
	return &History{path: path}
}

// Append assigns the record an ID and writes it to the log. Safe for
// concurrent use.
func (h *History) Append(rec model.GenerationRecord) (model.GenerationRecord, error) {
	if h == nil {
		return rec, nil
	}

	rec.ID = uuid.New().String()

	line, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("marshal generation record: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return rec, fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return rec, fmt.Errorf("append history log: %w", err)
	}
	return rec, nil
}

// List returns all recorded generations in append order. A missing log file
// yields an empty list.
func (h *History) List() ([]model.GenerationRecord, error) {
	if h == nil {
		return []model.GenerationRecord{}, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.GenerationRecord{}, nil
		}
		return nil, fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	records := []model.GenerationRecord{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec model.GenerationRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parse history log: %w", err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history log: %w", err)
	}
	return records, nil
}
