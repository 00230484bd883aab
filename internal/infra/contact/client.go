// Package contact forwards assessment leads to the site's contact endpoint.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lead-assessment-service/internal/domain"
)

// Client posts leads in the contact form's JSON shape.
type Client struct {
	url    string
	client *http.Client
}

// NewClient posts to url with the given per-request timeout.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type contactRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessType string `json:"businessType"`
	Message      string `json:"message"`
	Source       string `json:"source"`
}

// Submit makes a single attempt; any non-2xx status is an error.
func (c *Client) Submit(ctx context.Context, lead domain.Lead) error {
	body, err := json.Marshal(contactRequest{
		FirstName:    lead.Identity.FirstName,
		LastName:     lead.Identity.LastName,
		Email:        lead.Identity.Email,
		Phone:        lead.Identity.Phone,
		BusinessType: lead.Identity.BusinessType,
		Message:      lead.Summary,
		Source:       "assessment",
	})
	if err != nil {
		return fmt.Errorf("marshal contact request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("post contact: status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
