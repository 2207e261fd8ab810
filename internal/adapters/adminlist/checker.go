// Package adminlist backs the admin capability with a CSV roster file.
package adminlist

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"
)

const DefaultTTL = time.Minute

// Checker reports whether a student id is on the admin roster. The roster is
// a CSV file with a student_id column, re-read at most once per TTL; it is an
// explicit dependency, not a process-wide singleton.
type Checker struct {
	path string
	ttl  time.Duration

	mu       sync.Mutex
	admins   map[string]struct{}
	loadedAt time.Time
	now      func() time.Time
}

func NewChecker(path string, ttl time.Duration) *Checker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Checker{
		path: path,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (c *Checker) IsAdmin(_ context.Context, studentID string) (bool, error) {
	if studentID == "" {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.admins == nil || c.now().Sub(c.loadedAt) >= c.ttl {
		if err := c.load(); err != nil {
			return false, err
		}
	}

	_, ok := c.admins[studentID]
	return ok, nil
}

// Invalidate drops the cached roster so the next check re-reads the file.
func (c *Checker) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.admins = nil
	c.loadedAt = time.Time{}
}

func (c *Checker) load() error {
	f, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("failed to open admin list: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse admin list: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("admin list %s has no header row", c.path)
	}

	column := -1
	for i, name := range records[0] {
		if name == "student_id" {
			column = i
			break
		}
	}
	if column < 0 {
		return fmt.Errorf("admin list %s has no student_id column", c.path)
	}

	admins := make(map[string]struct{}, len(records)-1)
	for _, record := range records[1:] {
		if column >= len(record) || record[column] == "" {
			continue
		}
		admins[record[column]] = struct{}{}
	}

	c.admins = admins
	c.loadedAt = c.now()
	return nil
}
