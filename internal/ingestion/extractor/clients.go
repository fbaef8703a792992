package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ConverterClient talks to the external document-to-markdown service.
type ConverterClient interface {
	ToMarkdown(ctx context.Context, filename string, data []byte) (string, error)
}

// TranscriptClient fetches caption segments for a YouTube video id.
type TranscriptClient interface {
	Fetch(ctx context.Context, videoID string) ([]string, error)
}

type converterClient struct {
	baseURL string
	http    *http.Client
}

func NewConverterClient() (ConverterClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("CONVERTER_BASE_URL")), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("CONVERTER_BASE_URL is required")
	}
	return &converterClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

func (c *converterClient) ToMarkdown(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/convert", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("converter returned status %d: %s", resp.StatusCode, truncateBody(payload))
	}
	return string(payload), nil
}

type transcriptClient struct {
	baseURL string
	http    *http.Client
}

func NewTranscriptClient() (TranscriptClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("TRANSCRIPT_BASE_URL")), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("TRANSCRIPT_BASE_URL is required")
	}
	return &transcriptClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *transcriptClient) Fetch(ctx context.Context, videoID string) ([]string, error) {
	endpoint := c.baseURL + "/transcripts/" + url.PathEscape(videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcript service returned status %d: %s", resp.StatusCode, truncateBody(payload))
	}
	var parsed struct {
		Segments []struct {
			Text string `json:"text"`
		} `json:"segments"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("decode transcript response: %w", err)
	}
	segments := make([]string, 0, len(parsed.Segments))
	for _, segment := range parsed.Segments {
		if segment.Text != "" {
			segments = append(segments, segment.Text)
		}
	}
	return segments, nil
}

func truncateBody(body []byte) string {
	const maxLen = 256
	if len(body) > maxLen {
		body = body[:maxLen]
	}
	return string(body)
}
