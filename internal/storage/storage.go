package storage

import "context"

// ReportArchive stores generated report documents as objects, keyed by a
// caller-chosen name. It is the backend counterpart of the UI's
// print/export action.
type ReportArchive interface {
	Put(ctx context.Context, key string, data []byte) error
}

// NoopArchive discards everything. Used when archiving is disabled.
type NoopArchive struct{}

func (NoopArchive) Put(ctx context.Context, key string, data []byte) error {
	return nil
}
