// Package gemini is a thin client for the Gemini generateContent REST
// endpoint. Failures never affect app state; callers surface the
// message and move on.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guonaihong/gout"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Client struct {
	APIKey  string
	Model   string // e.g. "gemini-2.5-flash"
	BaseURL string // override in tests
	Timeout time.Duration
}

func New(apiKey, model string) *Client {
	return &Client{APIKey: apiKey, Model: model, BaseURL: defaultBaseURL, Timeout: 30 * time.Second}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.APIKey != "" }

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt and returns the model's text. When no API
// key is configured it returns a self-describing message instead of an
// error, so the UI can render it as-is.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "Gemini API key is not configured. Please set the GEMINI_API_KEY environment variable.", nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req := generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}

	var (
		code int
		resp generateResponse
	)
	err := gout.POST(url).
		WithContext(ctx).
		SetJSON(req).
		Code(&code).
		BindJSON(&resp).
		Do()
	if err != nil {
		return "", fmt.Errorf("error communicating with Gemini: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("gemini: %s", resp.Error.Message)
	}
	if code < 200 || code >= 300 {
		return "", fmt.Errorf("gemini: unexpected status %d", code)
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return b.String(), nil
}
