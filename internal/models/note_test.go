package models

import (
	"testing"
	"time"
)

func noteAt(content string, format NoteFormat, hour, minute int) Note {
	return Note{
		Content:   content,
		Format:    format,
		Timestamp: time.Date(2025, 3, 14, hour, minute, 0, 0, time.UTC),
	}
}

func TestRenderPlain(t *testing.T) {
	n := noteAt("Test note", FormatPlain, 14, 30)
	got := n.Render(true, "15:04")
	if got != "14:30 Test note" {
		t.Errorf("plain = %q", got)
	}
}

func TestRenderTimestamp(t *testing.T) {
	n := noteAt("Test note", FormatTimestamp, 14, 30)
	got := n.Render(true, "15:04")
	if got != "**14:30** - Test note" {
		t.Errorf("timestamp = %q", got)
	}
}

func TestRenderBullet(t *testing.T) {
	n := noteAt("Test note", FormatBullet, 14, 30)
	got := n.Render(true, "15:04")
	if got != "- 14:30 - Test note" {
		t.Errorf("bullet = %q", got)
	}
}

func TestRenderTask(t *testing.T) {
	n := noteAt("Test note", FormatTask, 14, 30)
	got := n.Render(true, "15:04")
	if got != "- [ ] 14:30 - Test note" {
		t.Errorf("task = %q", got)
	}
}

func TestRenderTimestampDisabled(t *testing.T) {
	n := noteAt("Test note", FormatTimestamp, 14, 30)
	if got := n.Render(false, "15:04"); got != "Test note" {
		t.Errorf("timestamp without ts = %q, want bare content", got)
	}
}

func TestRenderZeroTimestamp(t *testing.T) {
	n := Note{Content: "Test note", Format: FormatBullet}
	if got := n.Render(true, "15:04"); got != "- Test note" {
		t.Errorf("bullet without ts = %q", got)
	}
	n.Format = FormatTask
	if got := n.Render(true, "15:04"); got != "- [ ] Test note" {
		t.Errorf("task without ts = %q", got)
	}
}

func TestRenderTags(t *testing.T) {
	n := noteAt("Test note", FormatTimestamp, 14, 30)
	n.Tags = []string{"important", "work"}
	got := n.Render(true, "15:04")
	if got != "**14:30** - Test note - #important #work" {
		t.Errorf("timestamp with tags = %q", got)
	}
}

func TestRenderTagsPerFormat(t *testing.T) {
	n := noteAt("Test note", FormatPlain, 14, 30)
	n.Tags = []string{"a", "b"}
	if got := n.Render(true, "15:04"); got != "14:30 Test note #a #b" {
		t.Errorf("plain with tags = %q", got)
	}

	n.Format = FormatBullet
	if got := n.Render(true, "15:04"); got != "- 14:30 - Test note #a #b" {
		t.Errorf("bullet with tags = %q", got)
	}

	n.Format = FormatTask
	if got := n.Render(true, "15:04"); got != "- [ ] 14:30 - Test note #a #b" {
		t.Errorf("task with tags = %q", got)
	}
}

func TestRenderEmptyContentPlain(t *testing.T) {
	// Empty content is permitted; plain mode simply drops the empty part.
	n := noteAt("", FormatPlain, 9, 5)
	if got := n.Render(true, "15:04"); got != "09:05" {
		t.Errorf("plain empty content = %q", got)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	n := noteAt("Test note", NoteFormat("fancy"), 14, 30)
	if got := n.Render(true, "15:04"); got != "Test note" {
		t.Errorf("unknown format = %q, want raw content", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	n := noteAt("Same input", FormatBullet, 8, 15)
	n.Tags = []string{"x"}
	first := n.Render(true, "15:04")
	for range 10 {
		if got := n.Render(true, "15:04"); got != first {
			t.Fatalf("render not deterministic: %q vs %q", got, first)
		}
	}
}

func TestRenderDoesNotMutateTags(t *testing.T) {
	n := noteAt("note", FormatPlain, 10, 0)
	n.Tags = []string{"keep"}
	_ = n.Render(true, "15:04")
	if n.Tags[0] != "keep" {
		t.Errorf("tags mutated: %v", n.Tags)
	}
}

func TestNoteFormatValid(t *testing.T) {
	for _, f := range Formats() {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if NoteFormat("markdown").Valid() {
		t.Error("unknown format should be invalid")
	}
}

func TestNewNoteDefaults(t *testing.T) {
	n := NewNote("hi", FormatTimestamp)
	if !n.UseDailyNote {
		t.Error("NewNote should target the daily note")
	}
	if n.Timestamp.IsZero() {
		t.Error("NewNote should stamp the current time")
	}
}
