package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
)

func TestTagsFor(t *testing.T) {
	tags := TagsFor(domain.CrafterType{Title: "Stash Buster Extraordinaire"})
	assert.Equal(t, []string{"stash-buster-extraordinaire"}, tags)

	assert.Nil(t, TagsFor(domain.CrafterType{}))
}

func newTestKit(t *testing.T, handler http.Handler) *KitClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewKitClient(KitOptions{
		APIKey:  "test-key",
		FormID:  "9145879",
		BaseURL: srv.URL,
	}, zap.NewNop())
}

func TestSubscribeFormAndTags(t *testing.T) {
	var formCalls, tagCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/forms/9145879/subscribe", func(w http.ResponseWriter, r *http.Request) {
		formCalls++
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-key", body["api_key"])
		assert.Equal(t, "jo@example.com", body["email"])
		assert.Equal(t, "Jo", body["first_name"])
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/tags", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"tags": []map[string]any{
				{"id": 42, "name": "quick-win-queen"},
				{"id": 43, "name": "stash-buster-extraordinaire"},
			},
		})
	})
	mux.HandleFunc("/tags/42/subscribe", func(w http.ResponseWriter, r *http.Request) {
		tagCalls++
		w.WriteHeader(http.StatusOK)
	})

	kit := newTestKit(t, mux)
	err := kit.Subscribe(context.Background(), "jo@example.com", "Jo", []string{"quick-win-queen"})
	require.NoError(t, err)
	assert.Equal(t, 1, formCalls)
	assert.Equal(t, 1, tagCalls)
}

func TestSubscribeUnknownTagIsSkipped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/forms/9145879/subscribe", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/tags", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"tags": []map[string]any{}})
	})

	kit := newTestKit(t, mux)
	err := kit.Subscribe(context.Background(), "jo@example.com", "", []string{"no-such-tag"})
	assert.NoError(t, err)
}

func TestSubscribeFormFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/forms/9145879/subscribe", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	kit := newTestKit(t, mux)
	err := kit.Subscribe(context.Background(), "jo@example.com", "", nil)
	assert.Error(t, err)
}

func TestSubscribeWithoutAPIKey(t *testing.T) {
	kit := NewKitClient(KitOptions{FormID: "9145879"}, zap.NewNop())
	err := kit.Subscribe(context.Background(), "jo@example.com", "", nil)
	assert.Error(t, err)
}
