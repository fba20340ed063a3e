package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// googleBooksTimeout bounds the outbound search call; a slow provider is a
// failure, not something to retry.
const googleBooksTimeout = 10 * time.Second

var ErrUpstream = errors.New("google books request failed")

type GoogleBooksService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogleBooksService(apiKey string) *GoogleBooksService {
	return &GoogleBooksService{
		apiKey:  apiKey,
		baseURL: "https://www.googleapis.com/books/v1/volumes",
		client:  &http.Client{Timeout: googleBooksTimeout},
	}
}

// Search proxies a volume search and returns the provider's raw JSON
// payload untouched.
func (s *GoogleBooksService) Search(ctx context.Context, query string) ([]byte, error) {
	q := url.Values{}
	q.Set("q", query)
	if s.apiKey != "" {
		q.Set("key", s.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return body, nil
}
