package openai

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestAllowedModel(t *testing.T) {
	tests := []struct {
		model   string
		allowed bool
	}{
		{openai.GPT3Dot5Turbo, true},
		{openai.GPT4, true},
		{"gpt-4o", false},
		{"davinci", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := AllowedModel(tt.model); got != tt.allowed {
			t.Errorf("AllowedModel(%q) = %v, want %v", tt.model, got, tt.allowed)
		}
	}
}
