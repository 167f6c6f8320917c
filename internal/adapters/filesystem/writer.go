// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/example/bob/internal/ctxutil"
	"github.com/example/bob/internal/ports/secondary"
)

// WriterOptions configures a FileWriter.
type WriterOptions struct {
	Root    string    // project root that artifact paths are relative to
	Force   bool      // replace existing files
	Pretend bool      // report only, touch nothing
	Out     io.Writer // status lines; defaults to os.Stdout
	History secondary.HistoryRepository
	Logger  *slog.Logger
}

type pendingFile struct {
	kind, name, path, content string
}

// FileWriter implements secondary.FileWriter on the local filesystem.
type FileWriter struct {
	opts  WriterOptions
	queue []pendingFile
}

// NewFileWriter creates a new filesystem writer.
func NewFileWriter(opts WriterOptions) *FileWriter {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &FileWriter{opts: opts}
}

// CreateFile queues an artifact for the next Write.
func (w *FileWriter) CreateFile(kind, name, path, content string) {
	w.queue = append(w.queue, pendingFile{kind: kind, name: name, path: path, content: content})
}

// Write persists every queued artifact and empties the queue.
// Existing files are skipped unless Force is set.
func (w *FileWriter) Write(ctx context.Context) ([]secondary.WriteResult, error) {
	queue := w.queue
	w.queue = nil

	var results []secondary.WriteResult
	for _, f := range queue {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		status, err := w.writeOne(f)
		if err != nil {
			return results, fmt.Errorf("failed to write %s: %w", f.path, err)
		}

		result := secondary.WriteResult{Kind: f.kind, Name: f.name, Path: f.path, Status: status}
		results = append(results, result)
		w.report(result)
		w.record(ctx, result)
	}

	return results, nil
}

func (w *FileWriter) writeOne(f pendingFile) (string, error) {
	full := filepath.Join(w.opts.Root, filepath.FromSlash(f.path))

	exists := false
	if _, err := os.Stat(full); err == nil {
		exists = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	if exists && !w.opts.Force {
		return secondary.WriteSkipped, nil
	}
	if w.opts.Pretend {
		return secondary.WritePretend, nil
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, []byte(f.content), 0644); err != nil {
		return "", err
	}

	if exists {
		return secondary.WriteReplaced, nil
	}
	return secondary.WriteCreated, nil
}

// report prints one status line per artifact.
func (w *FileWriter) report(r secondary.WriteResult) {
	switch r.Status {
	case secondary.WriteCreated:
		color.New(color.FgGreen).Fprintf(w.opts.Out, "[ + ] %s %s", r.Kind, r.Name)
	case secondary.WriteReplaced:
		color.New(color.FgCyan).Fprintf(w.opts.Out, "[ ~ ] %s %s", r.Kind, r.Name)
	case secondary.WritePretend:
		color.New(color.FgHiMagenta).Fprintf(w.opts.Out, "[ ? ] %s %s", r.Kind, r.Name)
	case secondary.WriteSkipped:
		color.New(color.FgYellow).Fprintf(w.opts.Out, "[ ! ] %s %s exists, use --force to replace", r.Kind, r.Name)
	}
	fmt.Fprintf(w.opts.Out, " (%s)\n", r.Path)
}

// record journals the result; journal failures never fail a write.
func (w *FileWriter) record(ctx context.Context, r secondary.WriteResult) {
	if w.opts.History == nil {
		return
	}
	err := w.opts.History.Record(ctx, &secondary.GenerationRecord{
		Kind:   r.Kind,
		Name:   r.Name,
		Path:   r.Path,
		Status: r.Status,
		Actor:  ctxutil.ActorFromContext(ctx),
	})
	if err != nil {
		w.opts.Logger.Warn("failed to record generation", "path", r.Path, "error", err)
	}
}

// Ensure FileWriter implements the interface.
var _ secondary.FileWriter = (*FileWriter)(nil)
