package docstore

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

type sqlStore struct {
	db *sqlx.DB
}

// NewSQL returns a Store backed by the documents table. It works against
// both supported drivers; the schema is managed by the db package's
// migrations.
func NewSQL(db *sqlx.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Get(collection, partitionKey, id string) (*Document, error) {
	doc := &Document{ID: id, PartitionKey: partitionKey}
	query := `SELECT body FROM documents WHERE collection = $1 AND partition_key = $2 AND id = $3`

	var body []byte
	err := s.db.QueryRow(query, collection, partitionKey, id).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc.Body = body

	return doc, nil
}

func (s *sqlStore) Put(collection string, doc *Document) error {
	query := `INSERT INTO documents (collection, partition_key, id, body, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (collection, partition_key, id)
	          DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`

	_, err := s.db.Exec(query, collection, doc.PartitionKey, doc.ID, string(doc.Body), time.Now().UTC())
	return err
}

func (s *sqlStore) PutIfAbsent(collection string, doc *Document) error {
	query := `INSERT INTO documents (collection, partition_key, id, body, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (collection, partition_key, id) DO NOTHING`

	result, err := s.db.Exec(query, collection, doc.PartitionKey, doc.ID, string(doc.Body), time.Now().UTC())
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrExists
	}

	return nil
}

func (s *sqlStore) Query(collection, partitionKey string) ([]*Document, error) {
	query := `SELECT id, body FROM documents
	          WHERE collection = $1 AND partition_key = $2
	          ORDER BY id`

	rows, err := s.db.Query(query, collection, partitionKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc := &Document{PartitionKey: partitionKey}
		var body []byte
		err = rows.Scan(&doc.ID, &body)
		if err != nil {
			return nil, err
		}
		doc.Body = body
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (s *sqlStore) Delete(collection, partitionKey, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND partition_key = $2 AND id = $3`

	result, err := s.db.Exec(query, collection, partitionKey, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
