package interfaces

import (
	"context"

	"managefarms/internal/domain/entities"
	"managefarms/internal/domain/form"
)

// IFormSessions is the registry of open form sessions, keyed by document
// name. Sessions own the staging selections and visibility state of one
// open document; the work-order usecase drives them through the line-item
// and save pipelines.

type IFormSessions interface {
	Open(ctx context.Context, order entities.WorkOrder, persisted bool) (*form.Session, error)
	Lookup(docName string) (*form.Session, bool)
	Close(docName string)
}
