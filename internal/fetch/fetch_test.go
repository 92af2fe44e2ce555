package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "yes", r.Header.Get("X-Request"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	result, err := NewClient(nil).Get(context.Background(), server.URL, map[string]string{"X-Request": "yes"})
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.JSONEq(t, `{"ok": true}`, string(result.Body))
	assert.Equal(t, "application/json", result.ContentType)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestGet_DefaultHeadersFromOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.UserAgent = "custom/1.0"
	opts.Headers = map[string]string{"Accept": "application/json"}

	_, err := NewClient(opts).Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
}

func TestGet_InvalidURL(t *testing.T) {
	_, err := NewClient(nil).Get(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
	assert.Equal(t, 0, StatusCode(err))
}

func TestGet_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := NewClient(nil).Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Contains(t, err.Error(), "404")
}

func TestStatusCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", &Error{URL: "http://x", Message: "HTTP status 403", StatusCode: 403})
	assert.Equal(t, 403, StatusCode(err))
	assert.Equal(t, 0, StatusCode(fmt.Errorf("plain")))
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "Ada", "count": 3}`))
	}))
	defer server.Close()

	var out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, NewClient(nil).GetJSON(context.Background(), server.URL, nil, &out))
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestGetJSON_Malformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer server.Close()

	var out map[string]any
	err := NewClient(nil).GetJSON(context.Background(), server.URL, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode JSON response")
}

func TestPostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ada@example.com", r.PostForm.Get("session_key"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	form := url.Values{"session_key": {"ada@example.com"}}
	_, err := NewClient(nil).PostForm(context.Background(), server.URL, form, nil)
	require.NoError(t, err)
}

func TestCookieJar(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/set" {
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "ajax:123", Path: "/"})
			return
		}
		if c, err := r.Cookie("JSESSIONID"); err == nil {
			seen = c.Value
		}
	}))
	defer server.Close()

	client := NewClient(nil)
	_, err := client.Get(context.Background(), server.URL+"/set", nil)
	require.NoError(t, err)
	assert.Equal(t, "ajax:123", client.Cookie(server.URL, "JSESSIONID"))
	assert.Empty(t, client.Cookie(server.URL, "missing"))

	_, err = client.Get(context.Background(), server.URL+"/echo", nil)
	require.NoError(t, err)
	assert.Equal(t, "ajax:123", seen)
}
