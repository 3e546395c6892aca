package model

import "time"

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Analysis is the stored result of running an archived item through the
// GPT analysis pipeline.
type Analysis struct {
	ID                 int64
	ItemID             int64
	Summary            string
	KeyPoints          []string
	Sentiment          string
	Topics             []string
	SuggestedQuestions []string
	ModelUsed          string
	CreatedAt          time.Time
}

type ProcessingError struct {
	ID           int64
	ItemID       int64
	ErrorMessage string
	ErrorType    string
	CreatedAt    time.Time
}
