package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-sentiment-snapshot/internal/config"
	"go-sentiment-snapshot/internal/model"
	"go-sentiment-snapshot/internal/utils"

	"github.com/rs/zerolog/log"
)

// Client queries the realtime scraping API for product metadata and paged
// review batches. Retrying lives here, at the collaborator boundary; the
// aggregation core stays retry-free.
type Client struct {
	cnf    config.ReviewSource
	client *http.Client
}

var _ ReviewSource = &Client{}

func NewClient(cnf config.ReviewSource) *Client {
	return &Client{
		cnf:    cnf,
		client: &http.Client{Timeout: time.Second * 60},
	}
}

type queryContext struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type query struct {
	Source      string         `json:"source"`
	Query       string         `json:"query"`
	Parse       bool           `json:"parse"`
	Page        int            `json:"page,omitempty"`
	Context     []queryContext `json:"context,omitempty"`
	GeoLocation string         `json:"geo_location,omitempty"`
}

func (c *Client) ProductMetadata(ctx context.Context, asin string) (*Metadata, error) {

	var response struct {
		Results []struct {
			Content struct {
				Title        string  `json:"title"`
				Manufacturer string  `json:"manufacturer"`
				Price        float64 `json:"price"`
			} `json:"content"`
		} `json:"results"`
	}

	retryHandler := utils.NewRetryHandler(time.Second*90, time.Second*5, 3)
	err := retryHandler.Do(func() error {
		return c.post(ctx, query{Source: "amazon_product", Query: asin, Parse: true}, &response)
	})
	if err != nil {
		return nil, fmt.Errorf("product metadata: %w, asin: %s", err, asin)
	}

	if len(response.Results) == 0 {
		return nil, fmt.Errorf("product metadata: empty result, asin: %s", asin)
	}

	content := response.Results[0].Content
	meta := &Metadata{
		ProductName:  content.Title,
		Manufacturer: content.Manufacturer,
		Price:        content.Price,
	}
	if meta.ProductName == "" {
		meta.ProductName = "Unknown"
	}
	if meta.Manufacturer == "" {
		meta.Manufacturer = "Unknown"
	}

	return meta, nil
}

func (c *Client) Reviews(ctx context.Context, asin string, page int) ([]model.RawReview, error) {

	var response struct {
		Results []struct {
			Content struct {
				Reviews []model.RawReview `json:"reviews"`
			} `json:"content"`
		} `json:"results"`
	}

	q := query{
		Source:      "amazon_reviews",
		Query:       asin,
		Parse:       true,
		Page:        page,
		Context:     []queryContext{{Key: "sort_by", Value: "recent"}},
		GeoLocation: c.cnf.GeoLocation,
	}

	if err := c.post(ctx, q, &response); err != nil {
		return nil, fmt.Errorf("reviews: %w, asin: %s, page: %d", err, asin, page)
	}

	if len(response.Results) == 0 {
		log.Debug().Msgf("review source: empty result for asin %s page %d", asin, page)
		return []model.RawReview{}, nil
	}

	return response.Results[0].Content.Reviews, nil
}

func (c *Client) post(ctx context.Context, q query, out interface{}) error {

	body, err := json.Marshal(q)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cnf.ApiUrl, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cnf.Username, c.cnf.Password)

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
