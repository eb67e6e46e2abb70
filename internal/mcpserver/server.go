// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes termiLink note capture tools via stdio transport.
package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/termilink/termilink/internal"
	"github.com/termilink/termilink/internal/models"
	"github.com/termilink/termilink/internal/noteservice"
)

// Server wraps the MCP server with termiLink tools.
type Server struct {
	mcp *server.MCPServer
	cfg *internal.Config
	svc *noteservice.Service
}

// New creates a new MCP server with all termiLink tools registered.
func New(cfg *internal.Config, svc *noteservice.Service) *Server {
	s := &Server{cfg: cfg, svc: svc}

	s.mcp = server.NewMCPServer(
		"termiLink",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("append_note",
		mcp.WithDescription("Append a formatted note to the daily note or a named vault file. "+
			"Read the termilink://note-format resource for the fragment formats."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note content")),
		mcp.WithString("format", mcp.Description("Format mode: plain, timestamp, bullet, or task (default from config)")),
		mcp.WithString("tags", mcp.Description("Space-separated tags, without # prefix")),
		mcp.WithString("file", mcp.Description("Target file relative to the vault root (empty for the daily note)")),
	), s.appendNote)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new Markdown note file with creation frontmatter, overwriting any existing file."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("File name; .md is added if missing")),
		mcp.WithString("content", mcp.Description("Initial Markdown content")),
		mcp.WithString("subdirectory", mcp.Description("Optional subdirectory within the vault")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a vault note."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note (e.g. folder/note.md)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("list_recent",
		mcp.WithDescription("List recently modified notes, most recent first."),
		mcp.WithString("limit", mcp.Description("Maximum number of notes to return (default 10)")),
	), s.listRecent)

	s.mcp.AddTool(mcp.NewTool("daily_note",
		mcp.WithDescription("Show the path of today's daily note and whether it exists yet."),
	), s.dailyNote)

	// Resource: note format contract.
	s.mcp.AddResource(
		mcp.NewResource("termilink://note-format", "Note Format Contract",
			mcp.WithResourceDescription("Fragment formats used when appending notes."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readNoteFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// optString returns a string argument or "" when absent.
func optString(req mcp.CallToolRequest, key string) string {
	if v, err := req.RequireString(key); err == nil {
		return v
	}
	return ""
}

func (s *Server) appendNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format := s.cfg.DefaultFormat
	if f := optString(req, "format"); f != "" {
		format = models.NoteFormat(f)
		if !format.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown format: %s", f)), nil
		}
	}

	note := models.Note{
		Content:      content,
		Format:       format,
		Tags:         strings.Fields(optString(req, "tags")),
		Timestamp:    time.Now(),
		TargetFile:   optString(req, "file"),
		UseDailyNote: optString(req, "file") == "",
	}

	path, err := s.svc.Append(ctx, note)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("appended to: %s", path)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path, err := s.svc.CreateNote(ctx, filename, optString(req, "content"), optString(req, "subdirectory"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.svc.ReadNote(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) listRecent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 10
	if v := optString(req, "limit"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &limit); err != nil || limit <= 0 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid limit: %s", v)), nil
		}
	}

	items, err := s.svc.ListRecent(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(items) == 0 {
		return mcp.NewToolResultText("no notes found"), nil
	}

	var lines []string
	for _, item := range items {
		line := item.Path
		if item.Title != "" {
			line += " - " + item.Title
		}
		lines = append(lines, line)
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) dailyNote(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := time.Now()
	path := s.svc.DailyNotePath(now)
	status := "not created yet"
	if s.svc.DailyNoteExists(now) {
		status = "exists"
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", path, status)), nil
}

func (s *Server) readNoteFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "termilink://note-format",
			MIMEType: "text/markdown",
			Text:     NoteFormatContract,
		},
	}, nil
}
