package companion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"moodsync/apps/backend/internal/config"
)

// Finish reasons after which a candidate's text must not be shown.
var blockedFinishReasons = map[string]struct{}{
	"RECITATION": {},
	"SAFETY":     {},
	"LANGUAGE":   {},
	"BLOCKLIST":  {},
	"SPII":       {},
}

// GeminiClient calls models.generateContent on the Generative Language API.
type GeminiClient struct {
	models *generativelanguage.ModelsService
	model  string
}

func NewGeminiClient(ctx context.Context, cfg config.Config) (*GeminiClient, error) {
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not configured")
	}
	model := strings.TrimSpace(cfg.GeminiModel)
	if model == "" {
		return nil, errors.New("GEMINI_MODEL is not configured")
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if baseURL := strings.TrimSpace(cfg.GeminiBaseURL); baseURL != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimRight(baseURL, "/")+"/"))
	}
	svc, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create generative language service: %w", err)
	}
	return &GeminiClient{models: svc.Models, model: model}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}
	resp, err := c.models.GenerateContent(c.modelResource(), req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gemini generateContent: %w", err)
	}
	return responseText(resp)
}

func (c *GeminiClient) modelResource() string {
	if strings.HasPrefix(c.model, "models/") {
		return c.model
	}
	return "models/" + c.model
}

// responseText mirrors the reference SDK's text accessor: a blocked prompt or
// a blocked candidate is an error, no candidates at all is empty text.
func responseText(resp *generativelanguage.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("gemini: nil response")
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("gemini: prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", nil
	}

	candidate := resp.Candidates[0]
	if _, blocked := blockedFinishReasons[candidate.FinishReason]; blocked {
		return "", fmt.Errorf("gemini: candidate blocked: %s", candidate.FinishReason)
	}
	if candidate.Content == nil {
		return "", nil
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}
