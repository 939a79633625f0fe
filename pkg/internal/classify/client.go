package classify

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/metrics"
)

var (
	// ErrMissingAPIKey means the external model service is not configured.
	ErrMissingAPIKey = errors.New("classifier API key not configured")
	// ErrEmptyResponse means the model returned no content.
	ErrEmptyResponse = errors.New("no response from model")
)

const connectivityMaxTokens = 10

// Client classifies single files through the external model service.
// Transport errors propagate to the caller; response-shape errors are
// absorbed by the fallback policy in parse.go.
type Client struct {
	api     *openai.Client
	cfg     *configs.ClassifierConfig
	breaker *gobreaker.CircuitBreaker
}

// NewClient builds a classification client from the configuration.
func NewClient(cfg *configs.ClassifierConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}

	client := &Client{
		api: openai.NewClientWithConfig(oc),
		cfg: cfg,
	}

	if cfg.CircuitBreaker.Enabled {
		cb := cfg.CircuitBreaker
		client.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "classifier",
			MaxRequests: cb.MaxRequestsInHalf,
			Interval:    cb.GetInterval(),
			Timeout:     cb.GetTimeout(),
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				if counts.Requests < cb.MinRequests {
					return false
				}

				return float64(counts.TotalFailures)/float64(counts.Requests) >= cb.FailureRate
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Logger().Warn().
					Str("breaker", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("classifier circuit state changed")
			},
		})
	}

	return client, nil
}

// Classify dispatches a file to the image or document path and returns the
// tagged outcome. A nil outcome with nil error means the document had too
// little text to classify.
func (c *Client) Classify(ctx context.Context, file *InputFile) (*Outcome, error) {
	if file.IsImage() {
		result, err := c.ClassifyImage(ctx, file)
		if err != nil {
			return nil, err
		}

		return &Outcome{Kind: types.ClassifyKindImage, Result: result}, nil
	}

	analysis, err := c.ClassifyDocument(ctx, file)
	if err != nil {
		return nil, err
	}

	if analysis == nil {
		return nil, nil
	}

	return &Outcome{Kind: types.ClassifyKindDocument, Analysis: analysis}, nil
}

// ClassifyDocument extracts text, prompts the model and wraps the validated
// result with the extraction preview and metadata. Returns (nil, nil) when
// the extracted text is shorter than minTextLength.
func (c *Client) ClassifyDocument(ctx context.Context, file *InputFile) (*types.DocumentAnalysis, error) {
	text := ExtractText(file)
	if len(text) < minTextLength {
		log.Logger().Debug().Str("file", file.Name).Msg("content too short for classification")
		return nil, nil
	}

	raw, err := c.complete(ctx, types.ClassifyKindDocument, c.cfg.Model, c.cfg.MaxTokens,
		[]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: documentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildDocumentPrompt(file.Name, text)},
		})
	if err != nil {
		return nil, fmt.Errorf("classify document %s: %w", file.Name, err)
	}

	preview := truncateText(text, previewLimit)

	return &types.DocumentAnalysis{
		Classification: *parseClassification(raw),
		ExtractedText:  preview,
		Metadata:       documentMetadata(text),
	}, nil
}

// ClassifyImage submits the image inline as a base64 data URL to the vision
// model.
func (c *Client) ClassifyImage(ctx context.Context, file *InputFile) (*types.ClassificationResult, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s",
		file.ContentType, base64.StdEncoding.EncodeToString(file.Content))

	raw, err := c.complete(ctx, types.ClassifyKindImage, c.cfg.VisionModel, c.cfg.VisionMaxTokens,
		[]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: imageSystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: buildImagePrompt(file.Name)},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		})
	if err != nil {
		return nil, fmt.Errorf("classify image %s: %w", file.Name, err)
	}

	return parseClassification(raw), nil
}

// TestConnectivity performs a trivial prompt round-trip for diagnostics.
func (c *Client) TestConnectivity(ctx context.Context) *types.ConnectivityResponse {
	raw, err := c.complete(ctx, "test", c.cfg.Model, connectivityMaxTokens,
		[]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "Say 'API key is working' if you can read this."},
		})
	if err != nil {
		return &types.ConnectivityResponse{OK: false, Message: err.Error()}
	}

	return &types.ConnectivityResponse{OK: true, Message: raw}
}

// complete runs one chat completion through the breaker with the configured
// timeout, recording request metrics per kind.
func (c *Client) complete(ctx context.Context, kind, model string, maxTokens int,
	messages []openai.ChatCompletionMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.GetTimeout())
	defer cancel()

	call := func() (any, error) {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       model,
			Messages:    messages,
			MaxTokens:   maxTokens,
			Temperature: c.cfg.Temperature,
		})
		if err != nil {
			return nil, err
		}

		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return nil, ErrEmptyResponse
		}

		return resp.Choices[0].Message.Content, nil
	}

	start := time.Now()

	var (
		out any
		err error
	)

	if c.breaker != nil {
		out, err = c.breaker.Execute(call)
	} else {
		out, err = call()
	}

	metrics.ClassificationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ClassificationRequests.WithLabelValues(kind, "error").Inc()
		return "", err
	}

	metrics.ClassificationRequests.WithLabelValues(kind, "ok").Inc()

	return out.(string), nil //nolint:errcheck
}
