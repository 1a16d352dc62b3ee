// Package inference talks to a hosted text-generation endpoint. The
// client reports failures to its caller and nothing more; deciding how
// to degrade is the assistant's job.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
)

const (
	requestTimeout = 30 * time.Second

	// Hosted endpoints answer 503 while a cold model is loading.
	statusModelLoading = http.StatusServiceUnavailable
)

type config interface {
	Endpoint() string
	FallbackEndpoint() string
	ApiKey() string
	MaxTokens() int
	Temperature() float64
	TopP() float64
}

type Client struct {
	endpoint string
	fallback string
	apiKey   string
	params   parameters
	http     *http.Client
}

type parameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generateRequest struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

func New(cfg config) *Client {
	return &Client{
		endpoint: cfg.Endpoint(),
		fallback: cfg.FallbackEndpoint(),
		apiKey:   cfg.ApiKey(),
		params: parameters{
			MaxNewTokens:   cfg.MaxTokens(),
			Temperature:    cfg.Temperature(),
			TopP:           cfg.TopP(),
			DoSample:       true,
			ReturnFullText: false,
		},
		http: &http.Client{Timeout: requestTimeout},
	}
}

// Generate submits the prompt to the primary endpoint. If the primary
// answers "model loading", exactly one attempt is made against the
// smaller fallback model before giving up.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := c.generateOnce(ctx, c.endpoint, prompt)
	if err == nil {
		return text, nil
	}
	if errors.Is(err, errModelLoading) && c.fallback != "" {
		logger.Warn("primary model loading, trying fallback endpoint", zap.Error(err))
		return c.generateOnce(ctx, c.fallback, prompt)
	}
	return "", err
}

var errModelLoading = errors.New("model is loading")

func (c *Client) generateOnce(ctx context.Context, endpoint, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Inputs: prompt, Parameters: c.params})
	if err != nil {
		return "", errors.Wrap(err, "marshalling request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling inference endpoint")
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode == statusModelLoading {
		return "", errModelLoading
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", errors.Errorf("inference endpoint returned %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading response body")
	}

	text, err := decodeGenerated(raw)
	if err != nil {
		return "", errors.Wrap(err, "decoding response")
	}
	return cleanText(text), nil
}

// cleanText strips template/control tokens models leak into output.
var controlTokens = []string{
	"<|endoftext|>", "<|end|>", "<|assistant|>", "<|user|>", "<|system|>",
	"</s>", "<s>", "[INST]", "[/INST]", "<pad>",
}

func cleanText(text string) string {
	for _, tok := range controlTokens {
		text = strings.ReplaceAll(text, tok, "")
	}
	return strings.TrimSpace(text)
}
