// Package noteservice implements the note append engine: target resolution,
// fragment merging, file creation, and the recent-notes listing.
package noteservice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/termilink/termilink/internal"
	"github.com/termilink/termilink/internal/apperr"
	"github.com/termilink/termilink/internal/models"
	"github.com/termilink/termilink/internal/parser"
	"github.com/termilink/termilink/internal/storage"
)

// Service coordinates note operations against vault storage.
type Service struct {
	cfg   *internal.Config
	store storage.Provider
}

// NewService creates a new note service.
func NewService(cfg *internal.Config, store storage.Provider) *Service {
	return &Service{cfg: cfg, store: store}
}

// appendSettings holds per-call overrides for Append.
type appendSettings struct {
	includeTimestamp bool
}

// AppendOption is a per-call option for Append.
type AppendOption func(*appendSettings)

// WithTimestamp overrides the configured include_timestamp setting for a
// single append, instead of mutating shared configuration.
func WithTimestamp(include bool) AppendOption {
	return func(s *appendSettings) {
		s.includeTimestamp = include
	}
}

// DailyNotePath returns the vault-relative path of the daily note for date.
// A zero date means now.
func (s *Service) DailyNotePath(date time.Time) string {
	if date.IsZero() {
		date = time.Now()
	}
	name := date.Format(s.cfg.DailyNoteFormat) + ".md"
	return filepath.Join(s.cfg.DailyNotesPath, name)
}

// ResolveTarget returns the vault-relative path a note will be appended to.
//
// A target that would escape the vault (absolute path or upward traversal)
// is silently repaired by dropping its directory component and targeting a
// same-named file directly under the vault root.
func (s *Service) ResolveTarget(note models.Note) string {
	if note.UseDailyNote || note.TargetFile == "" {
		return s.DailyNotePath(note.Timestamp)
	}
	target := note.TargetFile
	if filepath.IsAbs(target) {
		return filepath.Base(target)
	}
	cleaned := filepath.Clean(target)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return filepath.Base(cleaned)
	}
	return cleaned
}

// Append renders the note and appends it to its resolved target file,
// creating the file (with frontmatter for daily notes) if absent. It returns
// the vault-relative path that was written.
func (s *Service) Append(_ context.Context, note models.Note, opts ...AppendOption) (string, error) {
	settings := appendSettings{includeTimestamp: s.cfg.IncludeTimestamp}
	for _, opt := range opts {
		opt(&settings)
	}

	target := s.ResolveTarget(note)

	existing, err := s.store.Read(target)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	fragment := note.Render(settings.includeTimestamp, s.cfg.TimestampFormat)

	var b strings.Builder
	switch {
	case len(existing) > 0:
		b.Write(existing)
		if s.cfg.AppendNewline {
			b.WriteString("\n")
		}
	case note.UseDailyNote && !note.Timestamp.IsZero():
		fmt.Fprintf(&b, "---\ndate: %s\n---\n\n", note.Timestamp.Format("2006-01-02"))
	}
	b.WriteString(fragment)
	b.WriteString("\n")

	if err := s.store.Write(target, []byte(b.String())); err != nil {
		return "", err
	}
	return target, nil
}

// CreateNote creates a new note file with creation frontmatter, overwriting
// any existing file at the same path. The .md suffix is added if missing.
func (s *Service) CreateNote(_ context.Context, filename, content, subdirectory string) (string, error) {
	if !strings.HasSuffix(filename, ".md") {
		filename += ".md"
	}
	target := filename
	if subdirectory != "" {
		target = filepath.Join(subdirectory, filename)
	}

	full := fmt.Sprintf("---\ncreated: %s\n---\n\n%s\n", time.Now().Format(time.RFC3339), content)
	if err := s.store.Write(target, []byte(full)); err != nil {
		return "", err
	}
	return target, nil
}

// ReadNote returns the raw contents of a vault note.
func (s *Service) ReadNote(_ context.Context, path string) ([]byte, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// ListRecent returns up to limit vault notes ordered by modification time,
// most recent first. A limit of zero or less yields an empty listing. Equal
// mod times order by path ascending so the listing is deterministic. Each
// returned entry carries the note title when one can be derived.
func (s *Service) ListRecent(_ context.Context, limit int) ([]models.NoteMetadata, error) {
	items, err := s.store.List("")
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].Path < items[j].Path
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})

	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		items = items[:limit]
	}

	for i := range items {
		data, readErr := s.store.Read(items[i].Path)
		if readErr != nil {
			continue
		}
		if res, parseErr := parser.Parse(data); parseErr == nil {
			items[i].Title = res.Title
		}
	}

	return items, nil
}

// DailyNoteExists reports whether the daily note for date is present.
func (s *Service) DailyNoteExists(date time.Time) bool {
	_, err := s.store.Read(s.DailyNotePath(date))
	return err == nil
}
