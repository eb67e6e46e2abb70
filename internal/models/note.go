// Package models defines the domain types for termiLink.
package models

import (
	"strings"
	"time"
)

// NoteFormat selects how a note fragment is rendered.
type NoteFormat string

// Supported note formats.
const (
	FormatPlain     NoteFormat = "plain"
	FormatTimestamp NoteFormat = "timestamp"
	FormatBullet    NoteFormat = "bullet"
	FormatTask      NoteFormat = "task"
)

// Formats lists all valid note formats, in presentation order.
func Formats() []NoteFormat {
	return []NoteFormat{FormatPlain, FormatTimestamp, FormatBullet, FormatTask}
}

// Valid reports whether f is a known note format.
func (f NoteFormat) Valid() bool {
	switch f {
	case FormatPlain, FormatTimestamp, FormatBullet, FormatTask:
		return true
	}
	return false
}

// Note represents a single note to be appended to the vault.
type Note struct {
	Content      string     `json:"content"`
	Format       NoteFormat `json:"format"`
	Tags         []string   `json:"tags,omitempty"`
	Timestamp    time.Time  `json:"timestamp,omitempty"` // zero means no timestamp
	TargetFile   string     `json:"target_file,omitempty"`
	UseDailyNote bool       `json:"use_daily_note"`
}

// NewNote builds a note stamped with the current time, targeting the daily note.
func NewNote(content string, format NoteFormat) Note {
	return Note{
		Content:      content,
		Format:       format,
		Timestamp:    time.Now(),
		UseDailyNote: true,
	}
}

// Render formats the note into a single text fragment according to its format.
//
// includeTimestamp controls whether the note's timestamp is rendered at all;
// layout is the time layout used to render it. Render is pure and never
// mutates the note.
func (n Note) Render(includeTimestamp bool, layout string) string {
	var ts string
	if includeTimestamp && !n.Timestamp.IsZero() {
		ts = n.Timestamp.Format(layout)
	}

	var tags string
	if len(n.Tags) > 0 {
		prefixed := make([]string, len(n.Tags))
		for i, t := range n.Tags {
			prefixed[i] = "#" + t
		}
		tags = strings.Join(prefixed, " ")
	}

	switch n.Format {
	case FormatPlain:
		var parts []string
		for _, p := range []string{ts, n.Content, tags} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		return strings.Join(parts, " ")

	case FormatTimestamp:
		if ts == "" {
			return n.Content
		}
		parts := []string{"**" + ts + "**", n.Content}
		if tags != "" {
			parts = append(parts, tags)
		}
		return strings.Join(parts, " - ")

	case FormatBullet:
		return n.renderListItem("- ", ts, tags)

	case FormatTask:
		return n.renderListItem("- [ ] ", ts, tags)
	}

	// Unrecognized format: pass content through untouched.
	return n.Content
}

func (n Note) renderListItem(prefix, ts, tags string) string {
	parts := []string{n.Content}
	if ts != "" {
		parts = []string{ts, n.Content}
	}
	out := prefix + strings.Join(parts, " - ")
	if tags != "" {
		out += " " + tags
	}
	return out
}

// NoteMetadata is a lightweight representation returned by list operations.
type NoteMetadata struct {
	Path      string    `json:"path"`
	Title     string    `json:"title,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
