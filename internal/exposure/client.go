package exposure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/semantic"
)

// ErrIncompatible is returned when the server speaks a protocol version the
// client does not support.
var ErrIncompatible = errors.New("incompatible exposure protocol")

const (
	defaultUserAgent = "facet/0.1"
	requestTimeout   = 5 * time.Second
)

// Client talks to the exposure HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	accept    *semver.Constraints
}

// NewClient builds a Client for the given host:port or URL. An empty bind
// uses DefaultBind.
func NewClient(bind string) (*Client, error) {
	base, err := parseBaseURL(bind)
	if err != nil {
		return nil, err
	}
	accept, err := semver.NewConstraint("^" + ProtocolVersion)
	if err != nil {
		return nil, fmt.Errorf("protocol constraint: %w", err)
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		accept:    accept,
	}, nil
}

// Schema retrieves the action schema.
func (c *Client) Schema(ctx context.Context) (Schema, error) {
	var payload Schema
	if err := c.do(ctx, http.MethodGet, "/schema", nil, &payload); err != nil {
		return Schema{}, err
	}
	return payload, nil
}

// CheckVersion fetches the schema and verifies the server's protocol
// version is compatible with this client.
func (c *Client) CheckVersion(ctx context.Context) (*semver.Version, error) {
	schema, err := c.Schema(ctx)
	if err != nil {
		return nil, err
	}
	return c.compatible(schema.Version)
}

func (c *Client) compatible(raw string) (*semver.Version, error) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid version %q: %v", ErrIncompatible, raw, err)
	}
	if !c.accept.Check(v) {
		return v, fmt.Errorf("%w: server %s, client %s", ErrIncompatible, v, ProtocolVersion)
	}
	return v, nil
}

// Instructions retrieves the Markdown protocol description.
func (c *Client) Instructions(ctx context.Context) (string, error) {
	var text string
	if err := c.do(ctx, http.MethodGet, "/instructions", nil, &text); err != nil {
		return "", err
	}
	return text, nil
}

// View retrieves the semantic tree currently on screen.
func (c *Client) View(ctx context.Context) (semantic.Node, error) {
	var raw string
	if err := c.do(ctx, http.MethodGet, "/view", nil, &raw); err != nil {
		return semantic.Node{}, err
	}
	return semantic.Unmarshal([]byte(raw))
}

// SendActions posts actions for dispatch.
func (c *Client) SendActions(ctx context.Context, actions ...protocol.Action) ([]ActionResult, error) {
	body := struct {
		Actions []json.RawMessage `json:"actions"`
	}{Actions: make([]json.RawMessage, 0, len(actions))}
	for _, a := range actions {
		raw, err := protocol.Marshal(a)
		if err != nil {
			return nil, err
		}
		body.Actions = append(body.Actions, raw)
	}
	var payload DispatchResponse
	if err := c.do(ctx, http.MethodPost, "/actions", body, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// SendText posts agent text whose embedded actions the server dispatches.
func (c *Client) SendText(ctx context.Context, text string) ([]ActionResult, error) {
	body := struct {
		Text string `json:"text"`
	}{Text: text}
	var payload DispatchResponse
	if err := c.do(ctx, http.MethodPost, "/text", body, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest)
}

// doURL sends body as JSON when non-nil. A *string dest receives the raw
// response body; anything else is JSON decoded.
func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if v := resp.Header.Get(VersionHeader); v != "" {
		if _, err := c.compatible(v); err != nil {
			return err
		}
	}
	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api %s returned status %d: %s", rel.String(), resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	switch dest := dest.(type) {
	case nil:
		return nil
	case *string:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		*dest = string(raw)
		return nil
	default:
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
}

func parseBaseURL(bind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(bind)
	if trimmed == "" {
		trimmed = DefaultBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse exposure bind %q: %w", bind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
