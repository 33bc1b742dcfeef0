package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yavin/platform/internal/gemini"
)

func completionServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAsk(t *testing.T) {
	ctx := context.Background()
	t.Run("no api key yields the setup hint", func(t *testing.T) {
		client := gemini.New(&gemini.ClientCfg{})
		answer := client.Ask(ctx, "What is AI?")
		assert.Contains(t, answer, "GEMINI_API_KEY")
	})
	t.Run("answer extracted from the first candidate", func(t *testing.T) {
		server := completionServer(t, http.StatusOK,
			`{"candidates":[{"content":{"parts":[{"text":"A neural network is a function approximator."}]}}]}`)
		client := gemini.New(&gemini.ClientCfg{APIKey: "test_key", BaseURL: server.URL})
		answer := client.Ask(ctx, "What is a neural network?")
		assert.Equal(t, "A neural network is a function approximator.", answer)
	})
	t.Run("non-ok status degrades", func(t *testing.T) {
		server := completionServer(t, http.StatusTooManyRequests, `{"error":"quota"}`)
		client := gemini.New(&gemini.ClientCfg{APIKey: "test_key", BaseURL: server.URL})
		answer := client.Ask(ctx, "What is AI?")
		assert.Equal(t, "I'm having trouble connecting. Please try again.", answer)
	})
	t.Run("unparsable body degrades", func(t *testing.T) {
		server := completionServer(t, http.StatusOK, `not json at all`)
		client := gemini.New(&gemini.ClientCfg{APIKey: "test_key", BaseURL: server.URL})
		answer := client.Ask(ctx, "What is AI?")
		assert.Equal(t, "Received an unexpected response. Please try again.", answer)
	})
	t.Run("empty candidate list degrades", func(t *testing.T) {
		server := completionServer(t, http.StatusOK, `{"candidates":[]}`)
		client := gemini.New(&gemini.ClientCfg{APIKey: "test_key", BaseURL: server.URL})
		answer := client.Ask(ctx, "What is AI?")
		assert.Equal(t, "I couldn't process that. Please try rephrasing.", answer)
	})
	t.Run("unreachable upstream degrades", func(t *testing.T) {
		server := completionServer(t, http.StatusOK, `{}`)
		server.Close()
		client := gemini.New(&gemini.ClientCfg{APIKey: "test_key", BaseURL: server.URL})
		answer := client.Ask(ctx, "What is AI?")
		assert.Equal(t, "Connection error. Please check your internet and try again.", answer)
	})
}
