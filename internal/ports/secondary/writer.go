// Package secondary defines the secondary ports (driven adapters) used by generators.
package secondary

import "context"

// Write statuses reported by a FileWriter.
const (
	WriteCreated  = "created"
	WriteReplaced = "replaced"
	WriteSkipped  = "skipped"
	WritePretend  = "pretend"
)

// WriteResult describes what happened to one queued artifact.
type WriteResult struct {
	Kind   string // "Model"
	Name   string // class name
	Path   string
	Status string // one of the Write* statuses
}

// FileWriter defines the secondary port that persists generated artifacts.
// Artifacts are queued with CreateFile and persisted together by Write.
type FileWriter interface {
	CreateFile(kind, name, path, content string)
	Write(ctx context.Context) ([]WriteResult, error)
}
