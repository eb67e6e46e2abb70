package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/termilink/termilink/internal/models"
	"github.com/termilink/termilink/internal/noteservice"
)

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a note to the daily note or a named file",
		ArgsUsage: "<content>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Target file relative to the vault root (default: daily note)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"F"},
				Usage:   "Format mode: plain, timestamp, bullet, or task",
			},
			&cli.StringSliceFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Tag to attach (repeatable, without # prefix)",
			},
			&cli.BoolFlag{
				Name:  "no-timestamp",
				Usage: "Omit the timestamp from this note",
			},
			&cli.BoolFlag{
				Name:  "daily",
				Usage: "Append to the daily note",
				Value: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			content := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if content == "" {
				return fmt.Errorf("note content is required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			format := cfg.DefaultFormat
			if f := cmd.String("format"); f != "" {
				format = models.NoteFormat(f)
				if !format.Valid() {
					return fmt.Errorf("unknown format %q (expected one of: %s)",
						f, strings.Join(formatNames(), ", "))
				}
			}

			file := cmd.String("file")
			note := models.Note{
				Content:      content,
				Format:       format,
				Tags:         cmd.StringSlice("tag"),
				Timestamp:    time.Now(),
				TargetFile:   file,
				UseDailyNote: cmd.Bool("daily") && file == "",
			}

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			include := cfg.IncludeTimestamp && !cmd.Bool("no-timestamp")
			path, err := svc.Append(ctx, note, noteservice.WithTimestamp(include))
			if err != nil {
				return err
			}

			fmt.Printf("Added to %s:\n  %s\n", path, note.Render(include, cfg.TimestampFormat))
			return nil
		},
	}
}

func quickCommand() *cli.Command {
	return &cli.Command{
		Name:      "quick",
		Aliases:   []string{"q"},
		Usage:     "Quickly add a note to the daily note using the default format",
		ArgsUsage: "<content>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			content := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if content == "" {
				return fmt.Errorf("note content is required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			note := models.NewNote(content, cfg.DefaultFormat)
			path, err := svc.Append(ctx, note)
			if err != nil {
				return err
			}

			fmt.Printf("Added to %s\n", path)
			return nil
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new note file in the vault",
		ArgsUsage: "<filename> [content]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Subdirectory within the vault",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			filename := cmd.Args().First()
			if filename == "" {
				return fmt.Errorf("filename is required")
			}
			content := strings.Join(cmd.Args().Slice()[1:], " ")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			path, err := svc.CreateNote(ctx, filename, content, cmd.String("dir"))
			if err != nil {
				return err
			}

			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

func recentCommand() *cli.Command {
	return &cli.Command{
		Name:  "recent",
		Usage: "List recently modified notes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Maximum number of notes to list",
				Value:   10,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			items, err := svc.ListRecent(ctx, int(cmd.Int("limit")))
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No notes found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tTITLE\tMODIFIED")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					item.Path, item.Title, item.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func todayCommand() *cli.Command {
	return &cli.Command{
		Name:  "today",
		Usage: "Show today's daily note path",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			now := time.Now()
			path := svc.DailyNotePath(now)
			if svc.DailyNoteExists(now) {
				fmt.Printf("%s (exists)\n", path)
			} else {
				fmt.Printf("%s (not created yet)\n", path)
			}
			return nil
		},
	}
}

func formatNames() []string {
	formats := models.Formats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}
