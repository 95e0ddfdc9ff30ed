// Package notify handles the best-effort mailing-list subscription that
// follows a successful save. Failures here are reported to the caller as a
// status flag, never as a failure of the save itself.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
)

const defaultBaseURL = "https://api.convertkit.com/v3"

// KitClient talks to the Kit (ConvertKit) v3 API: a form subscribe followed
// by tagging the subscriber with the persona-derived tags.
type KitClient struct {
	apiKey  string
	formID  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

type KitOptions struct {
	APIKey  string
	FormID  string
	BaseURL string // defaults to the public Kit API
	Timeout time.Duration
}

func NewKitClient(opts KitOptions, log *zap.Logger) *KitClient {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	return &KitClient{
		apiKey:  opts.APIKey,
		formID:  opts.FormID,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Limit(2), 5),
		log:     log,
	}
}

// TagsFor derives the mailing-list tags for a crafter type: the title
// lowercased with spaces replaced by hyphens.
func TagsFor(ct domain.CrafterType) []string {
	if ct.Title == "" {
		return nil
	}
	return []string{strings.ReplaceAll(strings.ToLower(ct.Title), " ", "-")}
}

// Subscribe adds the email to the configured form and applies each tag by
// name. Tags that don't exist on the account are skipped.
func (c *KitClient) Subscribe(ctx context.Context, email, firstName string, tags []string) error {
	if c.apiKey == "" {
		return fmt.Errorf("kit api key not configured")
	}

	if err := c.subscribeForm(ctx, email, firstName); err != nil {
		return err
	}

	if len(tags) == 0 {
		return nil
	}
	tagIDs, err := c.listTags(ctx)
	if err != nil {
		return err
	}
	for _, name := range tags {
		id, ok := tagIDs[name]
		if !ok {
			c.log.Warn("kit tag not found, skipping", zap.String("tag", name))
			continue
		}
		if err := c.subscribeTag(ctx, id, email); err != nil {
			return err
		}
	}
	return nil
}

func (c *KitClient) subscribeForm(ctx context.Context, email, firstName string) error {
	body := map[string]string{
		"api_key":    c.apiKey,
		"email":      email,
		"first_name": firstName,
	}
	url := fmt.Sprintf("%s/forms/%s/subscribe", c.baseURL, c.formID)
	return c.post(ctx, url, body)
}

func (c *KitClient) subscribeTag(ctx context.Context, tagID int64, email string) error {
	body := map[string]string{
		"api_key": c.apiKey,
		"email":   email,
	}
	url := fmt.Sprintf("%s/tags/%d/subscribe", c.baseURL, tagID)
	return c.post(ctx, url, body)
}

func (c *KitClient) listTags(ctx context.Context) (map[string]int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/tags?api_key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kit list tags: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kit list tags: status %d", resp.StatusCode)
	}

	var parsed struct {
		Tags []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"tags"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("kit list tags: %w", err)
	}

	out := make(map[string]int64, len(parsed.Tags))
	for _, tag := range parsed.Tags {
		out[tag.Name] = tag.ID
	}
	return out, nil
}

func (c *KitClient) post(ctx context.Context, url string, body any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("kit request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("kit request: status %d", resp.StatusCode)
	}
	return nil
}
