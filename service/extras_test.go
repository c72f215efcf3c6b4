package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/service"
)

func newExtrasTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/random_joke", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"setup":"Why do programmers prefer dark mode?","punchline":"Because light attracts bugs!"}`))
	})
	mux.HandleFunc("/fact", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"fact":"Cats sleep 70% of their lives.","length":30}`))
	})
	mux.HandleFunc("/random", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":"Simplicity is the soul of efficiency.","author":"Austin Freeman"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestExtrasClientRandomJoke(t *testing.T) {
	client := service.NewExtrasClient().WithBaseURL(newExtrasTestServer(t).URL)
	joke, err := client.RandomJoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Why do programmers prefer dark mode?\nBecause light attracts bugs!", joke)
}

func TestExtrasClientCatFact(t *testing.T) {
	client := service.NewExtrasClient().WithBaseURL(newExtrasTestServer(t).URL)
	fact, err := client.CatFact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cats sleep 70% of their lives.", fact)
}

func TestExtrasClientRandomQuote(t *testing.T) {
	client := service.NewExtrasClient().WithBaseURL(newExtrasTestServer(t).URL)
	quote, err := client.RandomQuote(context.Background())
	require.NoError(t, err)
	assert.Contains(t, quote, "Simplicity is the soul of efficiency.")
	assert.Contains(t, quote, "Austin Freeman")
}

func TestExtrasClientReportsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := service.NewExtrasClient().WithBaseURL(server.URL)
	_, err := client.RandomJoke(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestQRCodeURL(t *testing.T) {
	qr, err := service.QRCodeURL("Hello MCP World!", "300x300")
	require.NoError(t, err)

	parsed, err := url.Parse(qr)
	require.NoError(t, err)
	assert.Equal(t, "api.qrserver.com", parsed.Host)
	assert.Equal(t, "300x300", parsed.Query().Get("size"))
	assert.Equal(t, "Hello MCP World!", parsed.Query().Get("data"))
}

func TestQRCodeURLDefaultsSize(t *testing.T) {
	qr, err := service.QRCodeURL("hi", "")
	require.NoError(t, err)
	assert.Contains(t, qr, "size=200x200")
}

func TestQRCodeURLRejectsBadInput(t *testing.T) {
	_, err := service.QRCodeURL("  ", "200x200")
	require.Error(t, err)

	for _, size := range []string{"200", "200x", "x200", "bigxbig", "1x1"} {
		_, err := service.QRCodeURL("hi", size)
		require.Error(t, err, "size %q", size)
	}
}
