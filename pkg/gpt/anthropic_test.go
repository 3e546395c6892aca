package gpt

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"summary":"test"}`,
			want:  `{"summary":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"summary\":\"test\"}\n```",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"summary\":\"test\"}\n```",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "extracts JSON from surrounding prose",
			input: "Here is the analysis: {\"summary\":\"test\"} Hope that helps.",
			want:  `{"summary":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeSentiment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"positive", "positive"},
		{"Mostly positive", "positive"},
		{"NEGATIVE", "negative"},
		{"neutral", "neutral"},
		{"mixed", "neutral"},
		{"", "neutral"},
	}

	for _, tt := range tests {
		if got := normalizeSentiment(tt.input); got != tt.want {
			t.Errorf("normalizeSentiment(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
