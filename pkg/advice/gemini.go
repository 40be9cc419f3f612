package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayline/dayline/internal/config"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

// GeminiGenerator calls the Gemini generateContent endpoint with an API key.
type GeminiGenerator struct {
	service *generativelanguage.Service
	model   string
	timeout time.Duration
}

func NewGeminiGenerator(ctx context.Context, cfg config.Advice) (*GeminiGenerator, error) {
	if !cfg.Enabled() {
		return nil, ErrAdviceDisabled
	}
	opts := []option.ClientOption{option.WithAPIKey(cfg.ApiKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	service, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create generative language client: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiGenerator{
		service: service,
		model:   cfg.Model,
		timeout: timeout,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	request := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: prompt}},
			},
		},
	}

	start := time.Now()
	response, err := g.service.Models.GenerateContent(modelName(g.model), request).Context(ctx).Do()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, g.timeout)
		}
		log.Errorf("gemini request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrGeneratorUnavailable, err)
	}
	log.Debugf("gemini answered in %s", time.Since(start))

	var text strings.Builder
	for _, candidate := range response.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil {
				text.WriteString(part.Text)
			}
		}
		if text.Len() > 0 {
			break
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}

func modelName(model string) string {
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}
