package notifications

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTelegramNotifier_SendAlert verifies the sendMessage call shape:
// bot-token path, JSON body with chat_id, text and Markdown parse mode.
func TestTelegramNotifier_SendAlert(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer server.Close()

	notifier := NewTelegramNotifier(server.URL, "123:abc", "42")
	err := notifier.SendAlert("success", "converted 2 assets")
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "42", gotBody["chat_id"])
	assert.Equal(t, "Markdown", gotBody["parse_mode"])
	assert.Contains(t, gotBody["text"], "converted 2 assets")
	assert.Contains(t, gotBody["text"], "✅")
}

// TestTelegramNotifier_SendAlert_Error verifies a non-200 response is
// reported as an error including the API's reply.
func TestTelegramNotifier_SendAlert_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"ok":false,"description":"chat not found"}`)
	}))
	defer server.Close()

	notifier := NewTelegramNotifier(server.URL, "123:abc", "42")
	err := notifier.SendAlert("error", "conversion failed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "chat not found")
}

// TestTelegramNotifier_LevelEmoji verifies each alert level picks its
// marker.
func TestTelegramNotifier_LevelEmoji(t *testing.T) {
	var texts []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		texts = append(texts, body["text"])
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer server.Close()

	notifier := NewTelegramNotifier(server.URL, "123:abc", "42")
	for _, level := range []string{"info", "warning", "error", "success"} {
		require.NoError(t, notifier.SendAlert(level, "msg"))
	}

	require.Len(t, texts, 4)
	assert.Contains(t, texts[0], "ℹ️")
	assert.Contains(t, texts[1], "⚠️")
	assert.Contains(t, texts[2], "🚨")
	assert.Contains(t, texts[3], "✅")
}
