package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_ReturnsFirstChoiceContent(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "GPU_NAME: A100"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "llama3-70b-8192", 0.3, 1024, 0)
	out, err := client.Complete(context.Background(), []Message{
		{Role: "system", Content: "persona"},
		{Role: "user", Content: "prompt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "GPU_NAME: A100", out)

	assert.Equal(t, "llama3-70b-8192", gotBody["model"])
	assert.Equal(t, 0.3, gotBody["temperature"])
	assert.Equal(t, float64(1024), gotBody["max_tokens"])
	assert.Nil(t, gotBody["stream"])
}

func TestComplete_Non2xxIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", 0.3, 100, 0)
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "x"}})
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestComplete_NoChoicesIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", 0.3, 100, 0)
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "x"}})
	assert.True(t, errors.Is(err, ErrUpstream))
}

func sseFrame(content string) string {
	frame := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"delta": map[string]string{"content": content}},
		},
	}
	raw, _ := json.Marshal(frame)
	return "data: " + string(raw) + "\n\n"
}

func TestStream_RelaysChunksInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["stream"])

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, chunk := range []string{"Hel", "lo", " there"} {
			_, _ = w.Write([]byte(sseFrame(chunk)))
			flusher.Flush()
		}
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", 0.7, 0, 0)

	var chunks []string
	err := client.Stream(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hel", "lo", " there"}, chunks)
	assert.Equal(t, "Hello there", strings.Join(chunks, ""))
}

func TestStream_AbnormalTerminationKeepsPartialOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		_, _ = w.Write([]byte(sseFrame("partial")))
		flusher.Flush()
		// No [DONE] sentinel: the body just ends.
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", 0.7, 0, 0)

	var out strings.Builder
	err := client.Stream(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(chunk string) error {
		out.WriteString(chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "partial", out.String())
}

func TestStream_SinkErrorStopsForwarding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range []string{"a", "b", "c"} {
			_, _ = w.Write([]byte(sseFrame(chunk)))
		}
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", 0.7, 0, 0)

	clientGone := errors.New("client gone")
	var got []string
	err := client.Stream(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(chunk string) error {
		got = append(got, chunk)
		if len(got) == 2 {
			return clientGone
		}
		return nil
	})
	assert.Equal(t, clientGone, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestStream_UpstreamFailureBeforeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", 0.7, 0, 0)
	err := client.Stream(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(string) error {
		t.Fatal("sink must not be called")
		return nil
	})
	assert.True(t, errors.Is(err, ErrUpstream))
}
