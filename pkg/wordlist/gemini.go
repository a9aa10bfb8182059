// Package wordlist produces puzzle word lists from external sources.
package wordlist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultRegion = "us-central1"
	defaultModel  = "gemini-2.5-flash"
)

const themePrompt = `List %d lowercase English words related to the theme %q, suitable for hiding in a word search puzzle.

Rules:
- Each word is a single word, letters a-z only: no spaces, hyphens, digits, or accents.
- Each word is between 3 and %d letters long.
- No duplicates.
- Respond ONLY with a JSON array of strings, no commentary or markdown.`

// GeminiClient wraps the Google GenAI client for Vertex AI.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewGeminiClient(ctx context.Context, projectID, region string) (*GeminiClient, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: defaultModel,
	}, nil
}

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}

// ThemedWords asks Gemini for count words related to theme, each at most
// maxLen letters. Words that come back malformed are dropped rather than
// failing the whole list.
func (g *GeminiClient) ThemedWords(ctx context.Context, theme string, count, maxLen int) ([]string, error) {
	prompt := fmt.Sprintf(themePrompt, count, theme, maxLen)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.4)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse word list JSON: %w\nraw response: %s", err, text)
	}

	words := cleanWords(raw, maxLen)
	if len(words) == 0 {
		return nil, fmt.Errorf("no usable words for theme %q in response: %s", theme, text)
	}
	return words, nil
}

// cleanWords lowercases and deduplicates raw, keeping only words made of
// letters a-z with lengths in [3, maxLen].
func cleanWords(raw []string, maxLen int) []string {
	seen := make(map[string]bool)

	var words []string
	for _, w := range raw {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) < 3 || len(w) > maxLen || seen[w] {
			continue
		}
		valid := true
		for _, r := range w {
			if r < 'a' || r > 'z' {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}
