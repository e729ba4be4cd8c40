package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-sentiment-snapshot/internal/config"
)

// Client talks to the NLP service exposing the classifier and the extractor.
// Failures are returned as-is; the caller decides whether they are fatal.
type Client struct {
	apiUrl string
	client *http.Client
}

var (
	_ Classifier = &Client{}
	_ Extractor  = &Client{}
)

func NewClient(cnf config.NlpService) *Client {
	return &Client{
		apiUrl: cnf.ApiUrl,
		client: &http.Client{Timeout: time.Second * 120},
	}
}

func (c *Client) Classify(ctx context.Context, texts []string) ([]Verdict, error) {

	var response struct {
		Results []Verdict `json:"results"`
	}

	if err := c.post(ctx, "/classify", texts, &response); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	if len(response.Results) != len(texts) {
		return nil, fmt.Errorf("classify: got %d verdicts for %d texts", len(response.Results), len(texts))
	}

	return response.Results, nil
}

func (c *Client) Analyze(ctx context.Context, texts []string) ([]Extraction, error) {

	var response struct {
		Results []Extraction `json:"results"`
	}

	if err := c.post(ctx, "/analyze", texts, &response); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	if len(response.Results) != len(texts) {
		return nil, fmt.Errorf("analyze: got %d extractions for %d texts", len(response.Results), len(texts))
	}

	return response.Results, nil
}

func (c *Client) post(ctx context.Context, path string, texts []string, out interface{}) error {

	body, err := json.Marshal(map[string]interface{}{"texts": texts})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiUrl+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
