package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masalog-backend/config"
	"masalog-backend/internal/client"
)

func newTestConfig(prodURL, testURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LogAPI.BaseURL = prodURL + "/logs/%s"
	cfg.LogAPI.TestBaseURL = testURL + "/logs/%s"
	cfg.LogAPI.Timeout = 5 * time.Second
	return cfg
}

func TestLogAPIClient_FetchRaw(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte("line one\nline two\n"))
	}))
	defer server.Close()

	c := client.NewLogAPIClient(newTestConfig(server.URL, server.URL))
	body, err := c.FetchRaw(context.Background(), "masa_api", false)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/logs/masa_api", gotPath)
	assert.Equal(t, "line one\nline two\n", body)
}

func TestLogAPIClient_TestEnvironment(t *testing.T) {
	prod := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("prod"))
	}))
	defer prod.Close()
	uat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("uat"))
	}))
	defer uat.Close()

	c := client.NewLogAPIClient(newTestConfig(prod.URL, uat.URL))

	body, err := c.FetchRaw(context.Background(), "x", true)
	require.NoError(t, err)
	assert.Equal(t, "uat", body)

	body, err = c.FetchRaw(context.Background(), "x", false)
	require.NoError(t, err)
	assert.Equal(t, "prod", body)
}

func TestLogAPIClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := client.NewLogAPIClient(newTestConfig(server.URL, server.URL))
	_, err := c.FetchRaw(context.Background(), "x", false)
	assert.Error(t, err)
}

func TestLogAPIClient_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := client.NewLogAPIClient(newTestConfig(server.URL, server.URL))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.FetchRaw(ctx, "x", false)
	assert.Error(t, err)
}
