package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// SaveItem archives a normalized item. Returns false when the (source,
// item) pair is already present.
func (r *ItemRepository) SaveItem(item *model.ArchivedItem) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO news_item(item_id, source_id, title, description, source_name, published_at, keywords, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (source_id, item_id) DO NOTHING
		RETURNING id
	`, item.ItemID, item.SourceID, item.Title, item.Description, item.SourceName, item.PublishedAt, pq.Array(item.Keywords), model.StatusPending).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	item.ID = id
	return true, nil
}

func (r *ItemRepository) GetByID(id int64) (*model.ArchivedItem, error) {
	var item model.ArchivedItem
	err := r.db.QueryRow(`
		SELECT id, item_id, source_id, title, description, source_name, published_at, fetched_at, keywords, status
		FROM news_item
		WHERE id = $1
	`, id).Scan(&item.ID, &item.ItemID, &item.SourceID, &item.Title, &item.Description, &item.SourceName, &item.PublishedAt, &item.FetchedAt, pq.Array(&item.Keywords), &item.Status)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *ItemRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE news_item SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

func (r *ItemRepository) SaveError(itemID int64, message, errorType string) error {
	_, err := r.db.Exec(`
		INSERT INTO processing_error(item_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, itemID, message, errorType)
	return err
}

func (r *ItemRepository) GetErrorCount(itemID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM processing_error WHERE item_id = $1
	`, itemID).Scan(&count)
	return count, err
}
