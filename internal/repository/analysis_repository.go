package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) SaveAnalysis(analysis *model.Analysis) error {
	return r.db.QueryRow(`
		INSERT INTO news_analysis(item_id, summary, key_points, sentiment, topics, suggested_questions, model_used)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, analysis.ItemID, analysis.Summary, pq.Array(analysis.KeyPoints), analysis.Sentiment,
		pq.Array(analysis.Topics), pq.Array(analysis.SuggestedQuestions), analysis.ModelUsed).Scan(&analysis.ID)
}

func (r *AnalysisRepository) GetByItemID(itemID int64) (*model.Analysis, error) {
	var a model.Analysis
	err := r.db.QueryRow(`
		SELECT id, item_id, summary, key_points, sentiment, topics, suggested_questions, model_used, created_at
		FROM news_analysis
		WHERE item_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, itemID).Scan(&a.ID, &a.ItemID, &a.Summary, pq.Array(&a.KeyPoints), &a.Sentiment,
		pq.Array(&a.Topics), pq.Array(&a.SuggestedQuestions), &a.ModelUsed, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}
