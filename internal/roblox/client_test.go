package roblox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/placerank/placerank/internal/apierr"
	"github.com/placerank/placerank/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(baseURL string) config.Upstream {
	return config.Upstream{URL: baseURL, PageSize: 100, Timeout: time.Second}
}

func TestClient_FetchPage_RequestShape(t *testing.T) {
	var (
		gotPath   string
		gotQuery  url.Values
		gotHeader http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotHeader = r.Header.Clone()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[],"nextPageCursor":null}`))
	}))
	defer srv.Close()

	client := NewClient(testOptions(srv.URL))

	page, err := client.FetchPage(context.Background(), "123456", "")
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Equal(t, "/v1/games/123456/servers/Public", gotPath)
	assert.Equal(t, "Desc", gotQuery.Get("sortOrder"))
	assert.Equal(t, "100", gotQuery.Get("limit"))
	assert.False(t, gotQuery.Has("cursor"), "cursor must be absent on the first page")

	assert.Equal(t, "application/json", gotHeader.Get("Accept"))
	assert.Contains(t, gotHeader.Get("User-Agent"), "placerank/")
}

func TestClient_FetchPage_CursorForwarded(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"data":[],"nextPageCursor":""}`))
	}))
	defer srv.Close()

	client := NewClient(testOptions(srv.URL))

	_, err := client.FetchPage(context.Background(), "123", "cursor-abc")
	require.NoError(t, err)

	assert.True(t, gotQuery.Has("cursor"))
	assert.Equal(t, "cursor-abc", gotQuery.Get("cursor"))
}

func TestClient_FetchPage_DecodesRecords(t *testing.T) {
	body := `{
		"data": [
			{"id":"job-1","playing":7,"maxPlayers":12,"fps":59.94,"ping":110.2},
			{"id":"job-2","playing":null,"fps":null}
		],
		"nextPageCursor":"cursor-2"
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(testOptions(srv.URL))

	page, err := client.FetchPage(context.Background(), "123", "")
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "cursor-2", page.NextPageCursor)

	full := page.Data[0]
	assert.Equal(t, "job-1", full.ID)
	require.NotNil(t, full.Playing)
	assert.Equal(t, 7, *full.Playing)
	require.NotNil(t, full.MaxPlayers)
	assert.Equal(t, 12, *full.MaxPlayers)
	require.NotNil(t, full.FPS)
	assert.InDelta(t, 59.94, *full.FPS, 0.001)
	require.NotNil(t, full.Ping)
	assert.InDelta(t, 110.2, *full.Ping, 0.001)

	// Absent and null fields both decode to nil
	sparse := page.Data[1]
	assert.Equal(t, "job-2", sparse.ID)
	assert.Nil(t, sparse.Playing)
	assert.Nil(t, sparse.MaxPlayers)
	assert.Nil(t, sparse.FPS)
	assert.Nil(t, sparse.Ping)
}

func TestClient_FetchPage_NullCursorMeansExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"job-1"}],"nextPageCursor":null}`))
	}))
	defer srv.Close()

	client := NewClient(testOptions(srv.URL))

	page, err := client.FetchPage(context.Background(), "123", "")
	require.NoError(t, err)
	assert.Empty(t, page.NextPageCursor)
}

func TestClient_FetchPage_UpstreamStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "too many requests", status: http.StatusTooManyRequests},
		{name: "internal error", status: http.StatusInternalServerError},
		{name: "not found", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "upstream says no", tt.status)
			}))
			defer srv.Close()

			client := NewClient(testOptions(srv.URL))

			page, err := client.FetchPage(context.Background(), "123", "")
			require.Error(t, err)
			assert.Nil(t, page)

			var uerr *apierr.UpstreamError
			require.True(t, errors.As(err, &uerr), "expected *apierr.UpstreamError, got %#v", err)
			assert.Equal(t, tt.status, uerr.StatusCode)
			assert.Contains(t, err.Error(), strconv.Itoa(tt.status))
			assert.True(t, errors.Is(err, apierr.ErrUpstreamFailed))
		})
	}
}

func TestClient_FetchPage_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := NewClient(testOptions(srv.URL))

	page, err := client.FetchPage(context.Background(), "123", "")
	require.Error(t, err)
	assert.Nil(t, page)

	assert.False(t, errors.Is(err, apierr.ErrUpstreamFailed), "a 200 with a bad body is not an upstream status failure")
	assert.Contains(t, err.Error(), "decode upstream response")
}
