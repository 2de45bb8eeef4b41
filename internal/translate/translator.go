// Package translate provides the optional bilingual description path.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Translator converts text into the configured target language. The
// source language is detected by the provider.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

const (
	defaultEndpoint = "https://translate.googleapis.com/translate_a/single"
	defaultTimeout  = 10 * time.Second
)

// GoogleTranslator calls the public Google Translate endpoint.
type GoogleTranslator struct {
	client   *http.Client
	endpoint string
	target   string
}

// GoogleOption configures a GoogleTranslator.
type GoogleOption func(*GoogleTranslator)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) GoogleOption {
	return func(g *GoogleTranslator) {
		g.client = client
	}
}

// WithEndpoint overrides the translation endpoint URL.
func WithEndpoint(endpoint string) GoogleOption {
	return func(g *GoogleTranslator) {
		g.endpoint = endpoint
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) GoogleOption {
	return func(g *GoogleTranslator) {
		if timeout > 0 {
			g.client.Timeout = timeout
		}
	}
}

// NewGoogleTranslator builds a translator targeting the given
// language code (e.g. "ru").
func NewGoogleTranslator(target string, opts ...GoogleOption) *GoogleTranslator {
	translator := &GoogleTranslator{
		client:   &http.Client{Timeout: defaultTimeout},
		endpoint: defaultEndpoint,
		target:   target,
	}
	for _, opt := range opts {
		opt(translator)
	}
	return translator
}

// Translate implements Translator.
func (g *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", g.target)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate request: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read translate response: %w", err)
	}

	return decodeTranslation(body)
}

// decodeTranslation extracts the translated text from the endpoint's
// nested-array payload: [[["<translated>","<original>",...],...],...].
func decodeTranslation(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("decode translate response: empty payload")
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("decode translate response: unexpected payload shape")
	}

	var b strings.Builder
	for _, raw := range segments {
		segment, ok := raw.([]any)
		if !ok || len(segment) == 0 {
			continue
		}
		if text, ok := segment[0].(string); ok {
			b.WriteString(text)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("decode translate response: no translated text")
	}
	return b.String(), nil
}
