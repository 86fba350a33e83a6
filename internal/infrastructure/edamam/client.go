package edamam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Edamam food-database API
type Client struct {
	httpClient  *http.Client
	appID       string
	appKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new food-database API client
func NewClient(appID, appKey, baseURL string) *Client {
	// The developer tier allows 10 requests per minute
	// rate.Limit is requests per second, so 10/60 ≈ 0.167 requests/sec
	limiter := rate.NewLimiter(rate.Limit(0.167), 5) // burst of 5 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		appID:       appID,
		appKey:      appKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// LookupFood submits one ingredient phrase to the parser endpoint and
// returns the parsed entries. No retries: a failed lookup surfaces
// immediately so the caller can fall through to its next nutrition source.
func (c *Client) LookupFood(ctx context.Context, ingredient string) (*domain.FoodDBResponse, error) {
	log.Printf("[FOODDB] LookupFood called with ingredient: %q", ingredient)

	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		log.Printf("[FOODDB] Rate limiter error: %v", err)
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	// Build request URL
	endpoint := fmt.Sprintf("%s/parser", c.baseURL)
	params := url.Values{}
	params.Add("app_id", c.appID)
	params.Add("app_key", c.appKey)
	params.Add("ingr", ingredient)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Create request
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Wellness/1.0")

	// Execute request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[FOODDB] Request error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFoodDBUnavailable, err)
	}
	defer resp.Body.Close()

	// Check status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[FOODDB] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrFoodDBUnavailable, resp.StatusCode)
	}

	// Parse response
	var response domain.FoodDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Printf("[FOODDB] JSON decode error: %v", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Parsed) == 0 {
		log.Printf("[FOODDB] No parsed entries for ingredient: %q", ingredient)
		return nil, domain.ErrFoodDBNoResults
	}

	log.Printf("[FOODDB] Parsed %d entries for ingredient: %q", len(response.Parsed), ingredient)
	return &response, nil
}
