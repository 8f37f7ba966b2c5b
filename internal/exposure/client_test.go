package exposure

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/style"
)

func TestParseBaseURLDefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, DefaultBind, u.Host)

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:1234", u.String())

	_, err = parseBaseURL("http://[::1")
	assert.Error(t, err)
}

func TestClientRoundTrip(t *testing.T) {
	ts, store := newTestServer(t)

	c, err := NewClient(ts.URL)
	require.NoError(t, err)
	t.Cleanup(c.http.CloseIdleConnections)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	v, err := c.CheckVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ProtocolVersion, v.String())

	text, err := c.Instructions(ctx)
	require.NoError(t, err)
	assert.Contains(t, text, "Protected actions wait")

	tree, err := c.View(ctx)
	require.NoError(t, err)
	title, ok := tree.FindByTag("page_title")
	require.True(t, ok)
	assert.Equal(t, "Introduction", title.Content)

	results, err := c.SendActions(ctx,
		protocol.SetThemeKind{Kind: style.ThemeKinds()[1]},
		protocol.Shell{Command: "make test"},
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "applied", results[0].Outcome)
	assert.Equal(t, "held", results[1].Outcome)
	assert.Equal(t, style.ThemeKinds()[1], store.Snapshot().ThemeKind)

	results, err = c.SendText(ctx, `[action: {"SetButtonVariant": "outline"})]`)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, style.VariantOutline, store.Snapshot().ButtonVariant)
}

func TestClientReportsAPIErrors(t *testing.T) {
	ts, _ := newTestServer(t)

	c, err := NewClient(ts.URL)
	require.NoError(t, err)
	t.Cleanup(c.http.CloseIdleConnections)

	_, err = c.SendActions(context.Background(), protocol.Unknown{Raw: "x"}, nil)
	assert.Error(t, err)

	_, err = c.SendText(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestClientRejectsIncompatibleServer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		version string
	}{
		{"major bump in header", "2.0.0", ProtocolVersion},
		{"major bump in schema", "", "2.1.0"},
		{"garbage version", "", "latest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set(VersionHeader, tt.header)
				}
				writeJSON(w, http.StatusOK, Schema{Version: tt.version})
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL)
			require.NoError(t, err)
			t.Cleanup(c.http.CloseIdleConnections)

			_, err = c.CheckVersion(context.Background())
			assert.True(t, errors.Is(err, ErrIncompatible), "got %v", err)
		})
	}
}

func TestClientUserAgent(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		writeJSON(w, http.StatusOK, BuildSchema())
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	require.NoError(t, err)
	t.Cleanup(c.http.CloseIdleConnections)

	_, err = c.Schema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaultUserAgent, gotUserAgent)
	assert.Equal(t, "application/json", gotAccept)
}

func TestNilClient(t *testing.T) {
	var c *Client
	_, err := c.Schema(context.Background())
	assert.Error(t, err)
}
