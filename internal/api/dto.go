package api

import "github.com/termilink/termilink/internal/models"

// AppendNoteRequest is the request body for appending a note.
type AppendNoteRequest struct {
	Content     string   `json:"content" example:"ship the release" validate:"required"`
	Format      string   `json:"format,omitempty" example:"timestamp"`
	Tags        []string `json:"tags,omitempty" example:"work,urgent"`
	File        string   `json:"file,omitempty" example:"projects/release.md"`
	NoTimestamp bool     `json:"no_timestamp,omitempty"`
}

// AppendNoteResponse is returned after a successful append.
type AppendNoteResponse struct {
	Path     string `json:"path" example:"Daily Notes/2025-03-14.md" validate:"required"`
	Fragment string `json:"fragment" example:"**14:30** - ship the release" validate:"required"`
}

// CreateNoteRequest is the request body for creating a note file.
type CreateNoteRequest struct {
	Filename     string `json:"filename" example:"meeting-notes" validate:"required"`
	Content      string `json:"content" example:"# Agenda"`
	Subdirectory string `json:"subdirectory,omitempty" example:"work"`
}

// CreateNoteResponse is returned after a successful create.
type CreateNoteResponse struct {
	Path string `json:"path" example:"work/meeting-notes.md" validate:"required"`
}

// RecentNotesResponse wraps the recent-notes listing.
type RecentNotesResponse struct {
	Notes []models.NoteMetadata `json:"notes" validate:"required"`
}

// DailyNoteResponse describes today's daily note.
type DailyNoteResponse struct {
	Path   string `json:"path" example:"Daily Notes/2025-03-14.md" validate:"required"`
	Exists bool   `json:"exists"`
}
