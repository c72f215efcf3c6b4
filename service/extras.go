package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	jokeAPIURL  = "https://official-joke-api.appspot.com/random_joke"
	catFactURL  = "https://catfact.ninja/fact"
	quoteAPIURL = "https://api.quotable.io/random"
	qrAPIURL    = "https://api.qrserver.com/v1/create-qr-code/"
)

// ExtrasClient serves the fun tools that need no API key: jokes, cat facts,
// quotes and QR code links.
type ExtrasClient struct {
	jokeURL    string
	catFactURL string
	quoteURL   string
	httpClient *http.Client
}

func NewExtrasClient() *ExtrasClient {
	return &ExtrasClient{
		jokeURL:    jokeAPIURL,
		catFactURL: catFactURL,
		quoteURL:   quoteAPIURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points every upstream at the given base, used by tests.
func (c *ExtrasClient) WithBaseURL(baseURL string) *ExtrasClient {
	c.jokeURL = baseURL + "/random_joke"
	c.catFactURL = baseURL + "/fact"
	c.quoteURL = baseURL + "/random"
	return c
}

// RandomJoke fetches a setup/punchline joke.
func (c *ExtrasClient) RandomJoke(ctx context.Context) (string, error) {
	var joke struct {
		Setup     string `json:"setup"`
		Punchline string `json:"punchline"`
	}
	if err := c.getJSON(ctx, c.jokeURL, &joke); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n%s", joke.Setup, joke.Punchline), nil
}

// CatFact fetches a random cat fact.
func (c *ExtrasClient) CatFact(ctx context.Context) (string, error) {
	var fact struct {
		Fact string `json:"fact"`
	}
	if err := c.getJSON(ctx, c.catFactURL, &fact); err != nil {
		return "", err
	}
	return fact.Fact, nil
}

// RandomQuote fetches a random quote with attribution.
func (c *ExtrasClient) RandomQuote(ctx context.Context) (string, error) {
	var quote struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := c.getJSON(ctx, c.quoteURL, &quote); err != nil {
		return "", err
	}
	return fmt.Sprintf("%q — %s", quote.Content, quote.Author), nil
}

var qrSizeRE = regexp.MustCompile(`^\d{2,4}x\d{2,4}$`)

// QRCodeURL builds a qrserver.com image link for the given text. The size
// must look like "200x200". No network call is made; the returned URL renders
// the image when fetched.
func QRCodeURL(text, size string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text must not be empty")
	}
	if size == "" {
		size = "200x200"
	}
	if !qrSizeRE.MatchString(size) {
		return "", fmt.Errorf("size must look like 200x200, got %q", size)
	}

	query := url.Values{}
	query.Set("size", size)
	query.Set("data", text)
	return qrAPIURL + "?" + query.Encode(), nil
}

func (c *ExtrasClient) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %s", rawURL, resp.Status)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
