package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	endpoint string
	fallback string
}

func (c testConfig) Endpoint() string         { return c.endpoint }
func (c testConfig) FallbackEndpoint() string { return c.fallback }
func (c testConfig) ApiKey() string           { return "test-key" }
func (c testConfig) MaxTokens() int           { return 250 }
func (c testConfig) Temperature() float64     { return 0.7 }
func (c testConfig) TopP() float64            { return 0.9 }

func respond(t *testing.T, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 250, req.Parameters.MaxNewTokens)
		assert.True(t, req.Parameters.DoSample)
		assert.False(t, req.Parameters.ReturnFullText)

		_, _ = w.Write([]byte(body))
	}
}

func Test_OnArrayResponse_ShouldDecodeFirstElement(t *testing.T) {
	srv := httptest.NewServer(respond(t, `[{"generated_text":"Save 20% of your income."}]`))
	defer srv.Close()

	text, err := New(testConfig{endpoint: srv.URL}).Generate(context.Background(), "prompt")

	assert.NoError(t, err)
	assert.Equal(t, "Save 20% of your income.", text)
}

func Test_OnObjectResponse_ShouldDecodeSummaryField(t *testing.T) {
	srv := httptest.NewServer(respond(t, `{"summary_text":"Spending is stable."}`))
	defer srv.Close()

	text, err := New(testConfig{endpoint: srv.URL}).Generate(context.Background(), "prompt")

	assert.NoError(t, err)
	assert.Equal(t, "Spending is stable.", text)
}

func Test_OnStringResponse_ShouldDecodeBareString(t *testing.T) {
	srv := httptest.NewServer(respond(t, `"Plain answer."`))
	defer srv.Close()

	text, err := New(testConfig{endpoint: srv.URL}).Generate(context.Background(), "prompt")

	assert.NoError(t, err)
	assert.Equal(t, "Plain answer.", text)
}

func Test_OnModelLoading_ShouldRetryFallbackOnce(t *testing.T) {
	primaryCalls := 0
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		primaryCalls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer primary.Close()

	fallbackCalls := 0
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fallbackCalls++
		_, _ = w.Write([]byte(`[{"generated_text":"fallback answer"}]`))
	}))
	defer fallback.Close()

	client := New(testConfig{endpoint: primary.URL, fallback: fallback.URL})
	text, err := client.Generate(context.Background(), "prompt")

	assert.NoError(t, err)
	assert.Equal(t, "fallback answer", text)
	assert.Equal(t, 1, primaryCalls)
	assert.Equal(t, 1, fallbackCalls)
}

func Test_OnModelLoadingWithoutFallback_ShouldReturnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(testConfig{endpoint: srv.URL}).Generate(context.Background(), "prompt")

	assert.Error(t, err)
}

func Test_OnServerError_ShouldNotRetryFallback(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	fallbackCalls := 0
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fallbackCalls++
	}))
	defer fallback.Close()

	_, err := New(testConfig{endpoint: primary.URL, fallback: fallback.URL}).Generate(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Equal(t, 0, fallbackCalls)
}

func Test_OnControlTokens_ShouldStripThem(t *testing.T) {
	srv := httptest.NewServer(respond(t, `[{"generated_text":"<s>[INST]Budget carefully.[/INST]</s> <|endoftext|>"}]`))
	defer srv.Close()

	text, err := New(testConfig{endpoint: srv.URL}).Generate(context.Background(), "prompt")

	assert.NoError(t, err)
	assert.Equal(t, "Budget carefully.", text)
}

func Test_OnUnrecognizedShape_ShouldReturnError(t *testing.T) {
	srv := httptest.NewServer(respond(t, `{"unexpected":true}`))
	defer srv.Close()

	_, err := New(testConfig{endpoint: srv.URL}).Generate(context.Background(), "prompt")

	assert.Error(t, err)
}
