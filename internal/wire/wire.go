// Package wire assembles bob's generators and adapters from configuration.
package wire

import (
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/example/bob/internal/adapters/filesystem"
	"github.com/example/bob/internal/adapters/sqlite"
	"github.com/example/bob/internal/config"
	"github.com/example/bob/internal/db"
	"github.com/example/bob/internal/ports/secondary"
	"github.com/example/bob/internal/scaffold"
	"github.com/example/bob/internal/templates"
)

// TemplateStore layers the configured templates directory over the built-ins.
func TemplateStore(cfg *config.Config) *templates.Store {
	var overrides fs.FS
	if cfg.TemplatesDir != "" {
		if info, err := os.Stat(cfg.TemplatesDir); err == nil && info.IsDir() {
			overrides = os.DirFS(cfg.TemplatesDir)
		}
	}
	return templates.NewStore(overrides)
}

// ModelGenerator returns a model generator for cfg.
func ModelGenerator(cfg *config.Config, logger *slog.Logger) *scaffold.ModelGenerator {
	paths := scaffold.Paths{
		Application:   cfg.Paths.Application,
		Bundles:       cfg.Paths.Bundles,
		DefaultBundle: cfg.DefaultBundle,
		Extension:     cfg.Extension,
	}
	return scaffold.NewModelGenerator(TemplateStore(cfg), paths, logger)
}

// FileWriter returns a writer rooted at the project root that journals to the
// history database when enabled. The returned func releases the journal.
// A journal that cannot be opened disables history rather than failing.
func FileWriter(cfg *config.Config, out io.Writer, logger *slog.Logger) (*filesystem.FileWriter, func()) {
	var history secondary.HistoryRepository
	cleanup := func() {}

	if cfg.History {
		database, err := db.Open(cfg.HistoryPath)
		if err != nil {
			logger.Warn("generation history disabled", "path", cfg.HistoryPath, "error", err)
		} else {
			history = sqlite.NewHistoryRepository(database)
			cleanup = func() { database.Close() }
		}
	}

	writer := filesystem.NewFileWriter(filesystem.WriterOptions{
		Root:    cfg.ProjectRoot,
		Force:   cfg.Force,
		Pretend: cfg.Pretend,
		Out:     out,
		History: history,
		Logger:  logger,
	})
	return writer, cleanup
}
