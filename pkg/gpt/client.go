package gpt

type AnalyzeInput struct {
	Title       string
	Description string
}

type AnalysisResult struct {
	Summary            string
	KeyPoints          []string
	Sentiment          string
	Topics             []string
	SuggestedQuestions []string
	ModelUsed          string
}

type AnalysisClient interface {
	Analyze(input AnalyzeInput) (*AnalysisResult, error)
}
