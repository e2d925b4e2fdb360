package supplier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"shopify-importer/internal/adapters/supplier/dto"
	"shopify-importer/internal/config"
)

type FeedService interface {
	FetchCatalog(ctx context.Context) ([]dto.SupplierProduct, error)
}

type Client struct {
	config     config.SupplierConfig
	httpClient *http.Client
}

func NewClient(config config.SupplierConfig, httpClient *http.Client) FeedService {
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// FetchCatalog pulls the full feed, one request per configured category.
// Any category failing aborts the whole fetch; a partial catalog would make
// the reconciler delete every record of the missing categories.
func (c *Client) FetchCatalog(ctx context.Context) ([]dto.SupplierProduct, error) {
	var products []dto.SupplierProduct
	for _, category := range c.config.Categories {
		page, err := c.fetchCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", category, err)
		}
		products = append(products, page...)
	}
	return products, nil
}

func (c *Client) fetchCategory(ctx context.Context, category string) ([]dto.SupplierProduct, error) {
	endpoint := fmt.Sprintf("%s/catalogo?subfamilia=%s",
		strings.TrimRight(c.config.BaseUrl, "/"), url.QueryEscape(category))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := c.httpClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("supplier feed request failed: %s", resp.Status)
	}

	var page []dto.SupplierProduct
	if err := json.Unmarshal(respBody, &page); err != nil {
		return nil, fmt.Errorf("decode supplier feed: %w", err)
	}
	return page, nil
}
