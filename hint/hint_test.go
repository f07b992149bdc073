package hint_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plus3/pinchspell/hint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDecodesVerdict(t *testing.T) {
	var got struct {
		TrayWord    string `json:"tray_word"`
		PoolLetters string `json:"pool_letters"`
		Snapshot    string `json:"snapshot"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/check", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(hint.Verdict{
			Valid:      true,
			Definition: "a small domesticated feline",
			Example:    "The cat sat on the mat.",
		})
	}))
	defer server.Close()

	client := hint.New(server.URL, time.Second)
	verdict, err := client.Check(context.Background(), []byte{1, 2, 3}, "CAT", "XYZ")
	require.NoError(t, err)

	assert.True(t, verdict.Valid)
	assert.Equal(t, "a small domesticated feline", verdict.Definition)
	assert.Equal(t, "CAT", got.TrayWord)
	assert.Equal(t, "XYZ", got.PoolLetters)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), got.Snapshot)
}

func TestCheckBadStatusFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := hint.New(server.URL, time.Second)
	verdict, err := client.Check(context.Background(), nil, "CAT", "XYZ")
	assert.Error(t, err)
	assert.Equal(t, hint.Fallback(), verdict)
}

func TestCheckMalformedBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := hint.New(server.URL, time.Second)
	verdict, err := client.Check(context.Background(), nil, "CAT", "XYZ")
	assert.Error(t, err)
	assert.Equal(t, hint.Fallback(), verdict)
}

func TestCheckUnreachableServiceFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := hint.New(server.URL, time.Second)
	verdict, err := client.Check(context.Background(), nil, "CAT", "XYZ")
	assert.Error(t, err)
	assert.Equal(t, hint.Fallback(), verdict)
}

func TestCheckHonorsContext(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := hint.New(server.URL, time.Minute)
	verdict, err := client.Check(ctx, nil, "CAT", "XYZ")
	assert.Error(t, err)
	assert.Equal(t, hint.Fallback(), verdict)
}
