package eventlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxExportSize bounds the size of an exported log file (32MB).
const maxExportSize = 32 * 1024 * 1024

// Reader is the inbound boundary to the external event-log store.
type Reader interface {
	// Entries returns the user's log entries. Order is not guaranteed;
	// callers order them with Chronological.
	Entries(ctx context.Context, userID string) ([]Entry, error)

	// Profile returns the user profile used for narrative templating.
	Profile(ctx context.Context, userID string) (Profile, error)
}

// UserLog is one user's profile and entries inside an export.
type UserLog struct {
	Profile Profile `json:"profile" yaml:"profile"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Export is the on-disk shape of an exported event log. Either Users is set,
// or the single-user shorthand (Profile + Entries at the top level).
type Export struct {
	Users   []UserLog `json:"users,omitempty" yaml:"users,omitempty"`
	Profile *Profile  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Entries []Entry   `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// FileReader serves entries from an exported log file loaded into memory.
// The loaded data is never modified, so a FileReader is safe for concurrent use.
type FileReader struct {
	path  string
	users map[string]UserLog
	order []string
}

// NewFileReader loads an export from path. The format is chosen by file
// extension: .json, .yaml or .yml.
func NewFileReader(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat event log: %w", err)
	}
	if info.Size() > maxExportSize {
		return nil, fmt.Errorf("event log too large: %d bytes (max %d)", info.Size(), maxExportSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read event log: %w", err)
	}

	export, err := Decode(content, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode event log %s: %w", path, err)
	}

	r, err := newFileReader(export)
	if err != nil {
		return nil, err
	}
	r.path = path
	return r, nil
}

// Decode parses an export in the format named by ext (".json", ".yaml", ".yml").
func Decode(content []byte, ext string) (*Export, error) {
	var export Export
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(content))
		if err := dec.Decode(&export); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &export); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &export, nil
}

func newFileReader(export *Export) (*FileReader, error) {
	users := export.Users
	if len(users) == 0 && (export.Profile != nil || len(export.Entries) > 0) {
		single := UserLog{Entries: export.Entries}
		if export.Profile != nil {
			single.Profile = *export.Profile
		}
		users = []UserLog{single}
	}
	if len(users) == 0 {
		return nil, ErrEmptyExport
	}

	r := &FileReader{users: make(map[string]UserLog, len(users))}
	for _, u := range users {
		id := u.Profile.ID
		if id == "" && len(u.Entries) > 0 {
			id = u.Entries[0].UserID
		}
		for i, e := range u.Entries {
			if !IsValidKind(string(e.Kind)) {
				return nil, fmt.Errorf("entry %q: %w: %q", e.ID, ErrUnknownKind, e.Kind)
			}
			if e.UserID == "" {
				u.Entries[i].UserID = id
			}
		}
		u.Profile.ID = id
		if _, seen := r.users[id]; !seen {
			r.order = append(r.order, id)
		}
		r.users[id] = u
	}
	return r, nil
}

// Entries returns a copy of the user's entries.
func (r *FileReader) Entries(ctx context.Context, userID string) ([]Entry, error) {
	u, err := r.lookup(userID)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(u.Entries))
	copy(out, u.Entries)
	return out, nil
}

// Profile returns the user's profile.
func (r *FileReader) Profile(ctx context.Context, userID string) (Profile, error) {
	u, err := r.lookup(userID)
	if err != nil {
		return Profile{}, err
	}
	return u.Profile, nil
}

// Users returns the user IDs in the order they appear in the export.
func (r *FileReader) Users() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Path returns the file the reader was loaded from.
func (r *FileReader) Path() string {
	return r.path
}

// lookup resolves userID; an empty userID selects the first user.
func (r *FileReader) lookup(userID string) (UserLog, error) {
	if userID == "" {
		userID = r.order[0]
	}
	u, ok := r.users[userID]
	if !ok {
		return UserLog{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return u, nil
}

// Ensure FileReader implements Reader.
var _ Reader = (*FileReader)(nil)
