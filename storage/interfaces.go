package storage

import "mlscomp/models"

// PropertyWriter is the interface any storage backend must satisfy.
type PropertyWriter interface {
	Write(records []*models.PropertyRecord) error
	Close() error
}
