package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackResponse(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantMatch   bool
		wantContain string
	}{
		{
			name:        "admission keyword",
			message:     "How do I apply for admission?",
			wantMatch:   true,
			wantContain: "online application form",
		},
		{
			name:        "tuition keyword is case insensitive",
			message:     "TUITION fees please",
			wantMatch:   true,
			wantContain: "Tuition fees vary by program",
		},
		{
			name:        "scholarship keyword",
			message:     "do you offer any scholarship",
			wantMatch:   true,
			wantContain: "merit-based scholarships",
		},
		{
			name:        "bare hi matches exactly",
			message:     "hi",
			wantMatch:   true,
			wantContain: "Hello! I'm CampusAI",
		},
		{
			name:        "gratitude",
			message:     "thanks a lot!",
			wantMatch:   true,
			wantContain: "You're welcome",
		},
		{
			name:      "gibberish has no match",
			message:   "asdfqwerty123",
			wantMatch: false,
		},
		{
			name:      "empty message has no match",
			message:   "",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, matched := FallbackResponse(tt.message)
			assert.Equal(t, tt.wantMatch, matched)
			if tt.wantMatch {
				assert.Contains(t, answer, tt.wantContain)
			} else {
				assert.Empty(t, answer)
			}
		})
	}
}

func TestFallbackResponseIsDeterministic(t *testing.T) {
	first, ok := FallbackResponse("tell me about admission deadlines")
	assert.True(t, ok)

	for i := 0; i < 10; i++ {
		again, ok := FallbackResponse("tell me about admission deadlines")
		assert.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestFallbackResponseFirstRuleWins(t *testing.T) {
	// "admission" and "fee" both appear; the admissions rule is evaluated
	// first.
	answer, ok := FallbackResponse("what is the admission fee")
	assert.True(t, ok)
	assert.Contains(t, answer, "online application form")
}
