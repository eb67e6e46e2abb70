package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/termilink/termilink/internal"
	"github.com/termilink/termilink/internal/models"
	"github.com/termilink/termilink/internal/noteservice"
)

const defaultRecentLimit = 10

// Handler holds API route handlers.
type Handler struct {
	cfg *internal.Config
	svc *noteservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(cfg *internal.Config, svc *noteservice.Service) *Handler {
	return &Handler{cfg: cfg, svc: svc}
}

// AppendNote handles POST /notes/append.
//
//	@Summary		Append a formatted note to the daily note or a named file
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AppendNoteRequest	true	"Note to append"
//	@Success		200		{object}	AppendNoteResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/append [post]
func (h *Handler) AppendNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req AppendNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("content is required"))
		return
	}

	format := h.cfg.DefaultFormat
	if req.Format != "" {
		format = models.NoteFormat(req.Format)
		if !format.Valid() {
			writeJSON(w, http.StatusBadRequest, errorBody("unknown format: "+req.Format))
			return
		}
	}

	note := models.Note{
		Content:      req.Content,
		Format:       format,
		Tags:         req.Tags,
		Timestamp:    time.Now(),
		TargetFile:   req.File,
		UseDailyNote: req.File == "",
	}

	include := h.cfg.IncludeTimestamp && !req.NoTimestamp
	path, err := h.svc.Append(r.Context(), note, noteservice.WithTimestamp(include))
	if err != nil {
		slog.Error("append note failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	writeJSON(w, http.StatusOK, AppendNoteResponse{
		Path:     path,
		Fragment: note.Render(include, h.cfg.TimestampFormat),
	})
}

// CreateNote handles POST /notes.
//
//	@Summary		Create a new note file with creation frontmatter
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateNoteRequest	true	"Note file to create"
//	@Success		201		{object}	CreateNoteResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Filename == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("filename is required"))
		return
	}

	path, err := h.svc.CreateNote(r.Context(), req.Filename, req.Content, req.Subdirectory)
	if err != nil {
		slog.Error("create note failed", slog.String("filename", req.Filename), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, CreateNoteResponse{Path: path})
}

// RecentNotes handles GET /notes/recent.
//
//	@Summary		List recently modified notes
//	@Tags			notes
//	@Produce		json
//	@Param			limit	query		int	false	"Max entries (default 10)"
//	@Success		200		{object}	RecentNotesResponse
//	@Security		BearerAuth
//	@Router			/notes/recent [get]
func (h *Handler) RecentNotes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	items, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("recent notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if items == nil {
		items = []models.NoteMetadata{}
	}
	writeJSON(w, http.StatusOK, RecentNotesResponse{Notes: items})
}

// DailyNote handles GET /daily.
//
//	@Summary		Show today's daily note path
//	@Tags			notes
//	@Produce		json
//	@Success		200	{object}	DailyNoteResponse
//	@Security		BearerAuth
//	@Router			/daily [get]
func (h *Handler) DailyNote(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	writeJSON(w, http.StatusOK, DailyNoteResponse{
		Path:   h.svc.DailyNotePath(now),
		Exists: h.svc.DailyNoteExists(now),
	})
}
