package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the ShelfWise REST backend. Each resource group is a thin set of
// calls into do with fixed paths and methods.
type Client struct {
	http    *http.Client
	baseURL string

	Products   *ProductsAPI
	Categories *CategoriesAPI
	Cart       *CartAPI
	Orders     *OrdersAPI
	Wishlist   *WishlistAPI
	Reviews    *ReviewsAPI
	Profile    *ProfileAPI
	Users      *UsersAPI
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	c := &Client{
		http: &http.Client{
			Transport: &jsonTransport{Base: http.DefaultTransport},
			Timeout:   cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
	c.Products = &ProductsAPI{c: c}
	c.Categories = &CategoriesAPI{c: c}
	c.Cart = &CartAPI{c: c}
	c.Orders = &OrdersAPI{c: c}
	c.Wishlist = &WishlistAPI{c: c}
	c.Reviews = &ReviewsAPI{c: c}
	c.Profile = &ProfileAPI{c: c}
	c.Users = &UsersAPI{c: c}
	return c
}

// jsonTransport asks for JSON and brotli-compressed bodies.
type jsonTransport struct {
	Base http.RoundTripper
}

func (t *jsonTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.Header.Get("Content-Encoding") == "br" {
		resp.Body = &readCloserWrapper{Reader: brotli.NewReader(resp.Body), Closer: resp.Body}
		resp.Header.Del("Content-Encoding")
		resp.ContentLength = -1
	}
	return resp, nil
}

type readCloserWrapper struct {
	io.Reader
	io.Closer
}

// call describes one request. auth marks endpoints that need a bearer token.
type call struct {
	method   string
	endpoint string
	body     any
	token    string
	auth     bool
}

// do sends the request and decodes the unwrapped response into out (which may be nil).
// keys name the resource-specific envelope fields tried after "data".
func (c *Client) do(ctx context.Context, r call, out any, keys ...string) error {
	raw, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(unwrap(raw, keys...), out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.endpoint, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, r call) ([]byte, error) {
	if r.auth && r.token == "" {
		return nil, ErrNotSignedIn
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", r.method, r.endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", r.method, r.endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}
