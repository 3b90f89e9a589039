package docstore

import (
	"encoding/json"
	"errors"
)

var (
	// ErrNotFound is returned by Get when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrExists is returned by PutIfAbsent when the document already exists.
	// The stored document is left untouched (first write wins).
	ErrExists = errors.New("document already exists")
)

// Document is one stored record: a JSON body addressed by
// (collection, partition key, id).
type Document struct {
	ID           string
	PartitionKey string
	Body         json.RawMessage
}

// Store is the document-store port the domain layer runs against. Writes
// replace whole documents (last write wins); there is no cross-document
// transaction.
type Store interface {
	Get(collection, partitionKey, id string) (*Document, error)
	Put(collection string, doc *Document) error
	PutIfAbsent(collection string, doc *Document) error
	Query(collection, partitionKey string) ([]*Document, error)
	Delete(collection, partitionKey, id string) error
}

// Marshal wraps a value into a Document.
func Marshal(partitionKey, id string, v any) (*Document, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Document{ID: id, PartitionKey: partitionKey, Body: body}, nil
}
