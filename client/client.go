// Package client is a typed HTTP client for the skin coach server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"skin-coach-server/modules/photoanalysis"
	"skin-coach-server/modules/skinanalysis"
)

// ErrInvalidResponse reports a 2xx response whose body does not carry the
// expected payload.
var ErrInvalidResponse = errors.New("invalid response from server")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// 모델 호출은 서버에서 최대 60초 - 여유를 둔다
			Timeout: 90 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends a request and decodes the raw response body. A non-2xx status is
// turned into an *APIError, preferring the server's error envelope.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
			message = envelope.Error
		}
		log.Printf("❌ [Client] %s %s failed: %s", method, path, message)
		return nil, &APIError{Status: resp.StatusCode, Message: message}
	}

	return raw, nil
}

// Health checks the server's /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	raw, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}

	var health struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal(raw, &health); err != nil || !health.OK {
		return ErrInvalidResponse
	}
	return nil
}

// AnalyzeSkin posts a profile to /skinAnalysis and returns the model's
// structured analysis as-is.
func (c *Client) AnalyzeSkin(ctx context.Context, req *skinanalysis.AnalysisRequest) (map[string]interface{}, error) {
	raw, err := c.do(ctx, http.MethodPost, "/skinAnalysis", req)
	if err != nil {
		return nil, err
	}

	var analysis map[string]interface{}
	if err := json.Unmarshal(raw, &analysis); err != nil || analysis == nil {
		return nil, ErrInvalidResponse
	}
	return analysis, nil
}

// AnalyzePhoto posts a photo to /analyzePhoto and returns the coach's text.
func (c *Client) AnalyzePhoto(ctx context.Context, req *photoanalysis.PhotoAnalysisRequest) (*photoanalysis.PhotoAnalysisResult, error) {
	raw, err := c.do(ctx, http.MethodPost, "/analyzePhoto", req)
	if err != nil {
		return nil, err
	}

	var result photoanalysis.PhotoAnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil || !result.OK {
		return nil, ErrInvalidResponse
	}
	return &result, nil
}
