package companion

import (
	"context"
	"errors"
	"strings"
)

// Generator produces raw model text for a prompt. Any failure, including an
// unusable backend response, is reported through the error.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// MockGenerator answers without a network call. It is meant for local runs
// where no backend key is available.
type MockGenerator struct{}

func (MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lowered := strings.ToLower(prompt)
	switch {
	case strings.TrimSpace(prompt) == "":
		return "", errors.New("mock generator: empty prompt")
	case strings.Contains(lowered, "wellness coach"):
		return "**Tip:** take three slow breaths, drink a glass of water, and step outside for five minutes.", nil
	case strings.Contains(lowered, "mood support"):
		return "That sounds like a lot to carry. What part of today weighed on you the most?", nil
	case strings.Contains(lowered, "completed all"):
		return "# You did it all today! 🎉 I'm so proud of you! 💖", nil
	default:
		return "You're doing so well, babe! 💕 Keep going!", nil
	}
}
