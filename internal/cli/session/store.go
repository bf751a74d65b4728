package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Record is the persisted session state: the token pair plus the
// pagination cursors left behind by the last list command.
type Record struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	NextCursor   string `json:"next_cursor,omitempty"`
	PrevCursor   string `json:"prev_cursor,omitempty"`
}

// Field names accepted by Set.
const (
	FieldAccessToken  = "access_token"
	FieldRefreshToken = "refresh_token"
	FieldNextCursor   = "next_cursor"
	FieldPrevCursor   = "prev_cursor"
)

// Store owns the session file. All mutations go through Set/SetCursors,
// which persist before returning.
type Store struct {
	path string
	rec  Record
}

// DefaultPath returns the per-user session file location.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".beagle", "session.json")
}

// Open loads the session record at path, creating it with empty defaults
// if it does not exist yet. A file that exists but cannot be read or
// parsed is a fatal condition surfaced as an error; guessing at a fresh
// session would silently drop the user's tokens.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.rec); err != nil {
		return nil, fmt.Errorf("session: corrupt record %s: %w", path, err)
	}
	return s, nil
}

// Path returns the session file location.
func (s *Store) Path() string {
	return s.path
}

// Record returns a copy of the current session record.
func (s *Store) Record() Record {
	return s.rec
}

// Set updates one field and rewrites the record to disk before returning.
// An unknown field name is a programming error and is returned as such.
func (s *Store) Set(field, value string) error {
	switch field {
	case FieldAccessToken:
		s.rec.AccessToken = value
	case FieldRefreshToken:
		s.rec.RefreshToken = value
	case FieldNextCursor:
		s.rec.NextCursor = value
	case FieldPrevCursor:
		s.rec.PrevCursor = value
	default:
		return fmt.Errorf("session: unknown field %q", field)
	}
	return s.persist()
}

// SetTokens updates both tokens in a single persisted write.
func (s *Store) SetTokens(access, refresh string) error {
	s.rec.AccessToken = access
	s.rec.RefreshToken = refresh
	return s.persist()
}

// SetCursors updates both pagination cursors in a single persisted write.
// Empty strings clear the corresponding cursor.
func (s *Store) SetCursors(next, prev string) error {
	s.rec.NextCursor = next
	s.rec.PrevCursor = prev
	return s.persist()
}

// persist rewrites the whole record: write to a temp file in the same
// directory, then rename over the target so readers see either the old or
// the new record, never a partial one.
func (s *Store) persist() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: create dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(&s.rec, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("session: rename %s: %w", tmp, err)
	}
	return nil
}
