// Package gemini implements the outbound generative-AI text completion
// client used by the assistant chat endpoint. The call is strictly best
// effort: any failure degrades to a canned human-readable answer, never
// to an error surfaced to the caller.
package gemini

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"

	instructionPrefix = "You are an AI education assistant on Yavin, a comprehensive AI learning platform. " +
		"The user is learning about AI fundamentals, machine learning, neural networks, deep learning, " +
		"modern AI systems, and ethics. Provide clear, educational, and encouraging responses. " +
		"Keep answers concise but informative. User question: "

	fallbackUnconfigured = "I'm the Yavin AI assistant! To enable full AI capabilities, please configure the GEMINI_API_KEY. " +
		"For now, I can help you navigate this educational platform. What would you like to learn about AI?"
	fallbackConnection = "Connection error. Please check your internet and try again."
	fallbackBadStatus  = "I'm having trouble connecting. Please try again."
	fallbackUnparsable = "Received an unexpected response. Please try again."
	fallbackEmpty      = "I couldn't process that. Please try rephrasing."
)

type ClientCfg struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg *ClientCfg) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Second * 30
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: cfg.Logger,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask wraps the user message with the assistant instruction and calls the
// completion API. It always returns a usable answer string.
func (c *Client) Ask(ctx context.Context, message string) string {
	if c.apiKey == "" {
		return fallbackUnconfigured
	}
	body, err := sonic.Marshal(&generateRequest{
		Contents: []content{{Parts: []part{{Text: instructionPrefix + message}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 500,
		},
	})
	if err != nil {
		c.logger.Error("marshalling completion request error", slog.String("error", err.Error()))
		return fallbackUnparsable
	}
	url := c.baseURL + "/models/" + c.model + ":generateContent?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("creating completion request error", slog.String("error", err.Error()))
		return fallbackConnection
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("completion call failed", slog.String("error", err.Error()))
		return fallbackConnection
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("reading completion response error", slog.String("error", err.Error()))
		return fallbackBadStatus
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("completion call returned non-ok status", slog.Int("status", resp.StatusCode))
		return fallbackBadStatus
	}
	var parsed generateResponse
	if err := sonic.Unmarshal(respBody, &parsed); err != nil {
		c.logger.Warn("unmarshalling completion response error", slog.String("error", err.Error()))
		return fallbackUnparsable
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fallbackEmpty
	}
	answer := parsed.Candidates[0].Content.Parts[0].Text
	if answer == "" {
		return fallbackEmpty
	}
	return answer
}
