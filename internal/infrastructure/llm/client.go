package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
	"golang.org/x/time/rate"
)

// systemPrompt pins the reply to a bare JSON object so the extractor can
// recover it even when the model wraps it in prose or code fences.
const systemPrompt = `You are a nutrition assistant. Parse the user's meal text and reply with ONLY a JSON object of this exact shape:
{"foods":[{"name":"chicken breast","quantity":1,"unit":"count","weight":200,"calories":330,"protein":62,"carbs":0,"fats":7.2}],"confidence":90}
Weights are grams. Calories, protein, carbs and fats are totals for the stated amount, not per 100g. confidence is 0-100. No text outside the JSON object.`

// Message roles and payload for the chat completions wire format
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatChoice struct {
	Index   int         `json:"index"`
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Choices []chatChoice `json:"choices"`
}

// Client calls an OpenAI-compatible chat completions endpoint to parse
// meal text into nutrition figures
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
}

// NewClient creates a new LLM API client
func NewClient(apiKey, baseURL, model string) *Client {
	// Entry-tier chat APIs allow around 60 requests per minute
	limiter := rate.NewLimiter(rate.Limit(1), 3) // burst of 3 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		rateLimiter: limiter,
	}
}

// ParseMealText sends one meal text to the model and maps the JSON object
// in its reply onto the domain model. No retries: a failed call surfaces
// immediately so the caller can fall through to its next nutrition source.
func (c *Client) ParseMealText(ctx context.Context, text string) (*domain.LLMParsedMeal, error) {
	log.Printf("[LLM] ParseMealText called with text: %q", text)

	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		log.Printf("[LLM] Rate limiter error: %v", err)
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		MaxTokens:   1000,
		Temperature: 0.1, // low temperature keeps the JSON shape stable
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create request
	reqURL := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	// Execute request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[LLM] Request error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
	}
	defer resp.Body.Close()

	// Check status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[LLM] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrLLMUnavailable, resp.StatusCode)
	}

	// Parse the chat envelope
	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		log.Printf("[LLM] JSON decode error: %v", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", domain.ErrLLMInvalidResponse)
	}

	parsed, err := ExtractParsedMeal(chatResp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("[LLM] Reply extraction error: %v", err)
		return nil, err
	}

	log.Printf("[LLM] Parsed %d foods with confidence %.0f", len(parsed.Foods), parsed.Confidence)
	return parsed, nil
}
