package slipclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const slipsPath = "/api/salary-slips"

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("salary slips API status=%d, message=%s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (c *Client) List(ctx context.Context) ([]Slip, error) {
	var slips []Slip
	if err := c.do(ctx, http.MethodGet, slipsPath, nil, &slips); err != nil {
		return nil, err
	}
	if slips == nil {
		slips = []Slip{}
	}
	return slips, nil
}

func (c *Client) Get(ctx context.Context, id string) (Slip, error) {
	var slip Slip
	err := c.do(ctx, http.MethodGet, slipPath(id), nil, &slip)
	return slip, err
}

func (c *Client) Create(ctx context.Context, d Draft) (Slip, error) {
	var slip Slip
	err := c.do(ctx, http.MethodPost, slipsPath, d, &slip)
	return slip, err
}

// Update returns nil, nil when the API reports no record with that id.
func (c *Client) Update(ctx context.Context, id string, d Draft) (*Slip, error) {
	var slip *Slip
	if err := c.do(ctx, http.MethodPut, slipPath(id), d, &slip); err != nil {
		return nil, err
	}
	return slip, nil
}

// Delete returns the API's confirmation message.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, slipPath(id), nil, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

func slipPath(id string) string {
	return slipsPath + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(b)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func errorMessage(b []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(b))
}
