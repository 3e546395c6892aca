package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type TrendRepository struct {
	db *sql.DB
}

func NewTrendRepository(db *sql.DB) *TrendRepository {
	return &TrendRepository{db: db}
}

// SaveBatch appends a freshly fetched trend batch. The table is
// append-only: rows are never updated or deleted.
func (r *TrendRepository) SaveBatch(trends []model.TrendingTopic) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(pq.CopyIn("trending_topic", "trend_id", "name", "tweet_count", "category", "source", "fetched_at"))
	if err != nil {
		return err
	}

	for _, t := range trends {
		if _, err := stmt.Exec(t.ID, t.Name, t.TweetCount, t.Category, t.Source, t.Timestamp); err != nil {
			stmt.Close()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		return err
	}

	if err := stmt.Close(); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *TrendRepository) GetRecent(limit int) ([]model.TrendingTopic, error) {
	rows, err := r.db.Query(`
		SELECT trend_id, name, tweet_count, category, source, fetched_at
		FROM trending_topic
		ORDER BY fetched_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []model.TrendingTopic
	for rows.Next() {
		var t model.TrendingTopic
		err := rows.Scan(&t.ID, &t.Name, &t.TweetCount, &t.Category, &t.Source, &t.Timestamp)
		if err != nil {
			return nil, err
		}
		trends = append(trends, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trends, nil
}
