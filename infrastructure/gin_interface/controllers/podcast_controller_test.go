package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"podcast-gateway/config"
	"podcast-gateway/domain"
	"podcast-gateway/infrastructure/adapters"
	"podcast-gateway/middleware"
)

// scriptedGenerator replays a fixed event sequence and records the requests
// it saw.
type scriptedGenerator struct {
	mu       sync.Mutex
	events   []domain.Event
	requests []domain.PodcastRequest
}

func (g *scriptedGenerator) Generate(_ context.Context, req domain.PodcastRequest) <-chan domain.Event {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	ch := make(chan domain.Event, len(g.events))
	for _, ev := range g.events {
		ch <- ev
	}
	close(ch)
	return ch
}

func (g *scriptedGenerator) requestCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

type stubRegistry struct {
	beginErr error
	begins   int
	ends     int
}

func (r *stubRegistry) Begin(string) error {
	r.begins++
	return r.beginErr
}

func (r *stubRegistry) End(string) {
	r.ends++
}

// sseRecorder adds the CloseNotify method c.Stream expects from the
// response writer.
type sseRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newSSERecorder() *sseRecorder {
	return &sseRecorder{
		ResponseRecorder: httptest.NewRecorder(),
		closed:           make(chan bool, 1),
	}
}

func (r *sseRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func completeEvents(result domain.GenerationResult) []domain.Event {
	return []domain.Event{
		{Kind: domain.EventStatus, Message: "Starting podcast generation..."},
		{Kind: domain.EventProgress, Progress: 30, Message: "Fetching source content..."},
		{Kind: domain.EventProgress, Progress: 100, Message: "Podcast generation complete!"},
		{Kind: domain.EventComplete, Result: &result},
	}
}

type controllerFixture struct {
	router    *gin.Engine
	generator *scriptedGenerator
	registry  *stubRegistry
	storeDir  string
}

func newFixture(t *testing.T, events []domain.Event) *controllerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := adapters.NewZerologWrapper()
	generator := &scriptedGenerator{events: events}
	registry := &stubRegistry{}

	storeDir := t.TempDir()
	store, err := adapters.NewFSArtifactStore(&config.StorageConfig{
		PrimaryDir:    storeDir,
		CandidateDirs: []string{storeDir},
	}, logger)
	require.NoError(t, err)

	controller := NewPodcastController(
		logger,
		generator,
		registry,
		store,
		middleware.NewAuthHandler("secret-token"),
		middleware.NewSessionHandler("session-secret", logger),
		"secret-token",
	)

	router := gin.New()
	controller.RegisterRoutes(router)

	return &controllerFixture{
		router:    router,
		generator: generator,
		registry:  registry,
		storeDir:  storeDir,
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body gin.H, header map[string]string) *sseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := newSSERecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerateStreamsEventsUntilComplete(t *testing.T) {
	fixture := newFixture(t, completeEvents(domain.StructuredResult("podcast_a.mp3", "/audio/podcast_a.mp3", "HOST: hi")))

	rec := postJSON(t, fixture.router, "/api/generate", gin.H{
		"urls":       []string{"https://example.com/a"},
		"tts_model":  "gemini",
		"google_key": "k",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	require.Contains(t, body, "event:status")
	require.Contains(t, body, "Starting podcast generation...")
	require.Contains(t, body, "event:progress")
	require.Contains(t, body, `"progress":30`)
	require.Contains(t, body, "event:complete")
	require.Contains(t, body, `"audioUrl":"/audio/podcast_a.mp3"`)
	require.Contains(t, body, `"transcript":"HOST: hi"`)

	require.Equal(t, 1, fixture.registry.begins)
	require.Equal(t, 1, fixture.registry.ends)
}

func TestGenerateErrorEventEndsStream(t *testing.T) {
	fixture := newFixture(t, []domain.Event{
		{Kind: domain.EventStatus, Message: "Starting podcast generation..."},
		{Kind: domain.EventError, Message: "Script synthesis failed"},
	})

	rec := postJSON(t, fixture.router, "/api/generate", gin.H{
		"urls":       []string{"https://example.com/a"},
		"google_key": "k",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "event:error")
	require.Contains(t, body, "Script synthesis failed")
	require.NotContains(t, body, "event:complete")
	require.Equal(t, 1, fixture.registry.ends)
}

func TestGenerateBusySessionGets409(t *testing.T) {
	fixture := newFixture(t, nil)
	fixture.registry.beginErr = domain.ErrSessionBusy

	rec := postJSON(t, fixture.router, "/api/generate", gin.H{
		"urls":       []string{"https://example.com/a"},
		"google_key": "k",
	}, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Zero(t, fixture.generator.requestCount())
	require.Zero(t, fixture.registry.ends)
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	fixture := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	fixture.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, fixture.generator.requestCount())
}

func TestGenerateNewsRequiresTopicsAndPinsModel(t *testing.T) {
	fixture := newFixture(t, completeEvents(domain.PathResult("news_podcast_a.mp3", "/audio/news_podcast_a.mp3")))

	rec := postJSON(t, fixture.router, "/api/generate-news", gin.H{}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"No topics provided"}`, rec.Body.String())

	rec = postJSON(t, fixture.router, "/api/generate-news", gin.H{
		"topics":     "fusion energy",
		"tts_model":  "elevenlabs",
		"google_key": "k",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, 1, fixture.generator.requestCount())
	got := fixture.generator.requests[0]
	require.Equal(t, domain.TTSModelGemini, got.TTSModel)
	require.Equal(t, "fusion energy", got.Topic)
	require.Empty(t, got.URLs)
}

func TestGenerateFromTranscriptAuthMatrix(t *testing.T) {
	cases := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{"missing", nil, "No token provided"},
		{"malformed", map[string]string{"Authorization": "Token abc"}, "Invalid token format"},
		{"wrong", map[string]string{"Authorization": "Bearer nope"}, "Invalid token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := newFixture(t, nil)

			rec := postJSON(t, fixture.router, "/api/generate-from-transcript", gin.H{
				"transcript": "HOST: hi",
				"google_key": "k",
			}, tc.header)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.JSONEq(t, `{"error":"`+tc.want+`"}`, rec.Body.String())
			require.Zero(t, fixture.generator.requestCount())
		})
	}
}

func TestGenerateFromTranscriptSuccess(t *testing.T) {
	fixture := newFixture(t, completeEvents(domain.StructuredResult("podcast_a.mp3", "/audio/podcast_a.mp3", "HOST: hi")))

	rec := postJSON(t, fixture.router, "/api/generate-from-transcript", gin.H{
		"transcript": "HOST: hi",
		"tts_model":  "gemini",
		"google_key": "k",
	}, map[string]string{"Authorization": "Bearer secret-token"})

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Success    bool   `json:"success"`
		AudioURL   string `json:"audio_url"`
		Transcript string `json:"transcript"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	require.Equal(t, "/audio/podcast_a.mp3", payload.AudioURL)
	require.Equal(t, "HOST: hi", payload.Transcript)
}

func TestGenerateFromTranscriptValidation(t *testing.T) {
	fixture := newFixture(t, nil)
	auth := map[string]string{"Authorization": "Bearer secret-token"}

	rec := postJSON(t, fixture.router, "/api/generate-from-transcript", gin.H{
		"google_key": "k",
	}, auth)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Missing transcript in request body"}`, rec.Body.String())

	rec = postJSON(t, fixture.router, "/api/generate-from-transcript", gin.H{
		"transcript": "HOST: hi",
		"tts_model":  "gemini",
	}, auth)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "google_key")
	require.Zero(t, fixture.generator.requestCount())
}

func TestGenerateFromTranscriptFailureIs500(t *testing.T) {
	fixture := newFixture(t, []domain.Event{
		{Kind: domain.EventStatus, Message: "Starting podcast generation..."},
		{Kind: domain.EventError, Message: "Audio synthesis failed"},
	})

	rec := postJSON(t, fixture.router, "/api/generate-from-transcript", gin.H{
		"transcript": "HOST: hi",
		"tts_model":  "gemini",
		"google_key": "k",
	}, map[string]string{"Authorization": "Bearer secret-token"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Audio synthesis failed"}`, rec.Body.String())
}

func TestAudioEndpointServesStoredArtifact(t *testing.T) {
	fixture := newFixture(t, nil)

	require.NoError(t, os.WriteFile(filepath.Join(fixture.storeDir, "podcast_a.mp3"), []byte("mp3 bytes"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/audio/podcast_a.mp3", nil)
	rec := httptest.NewRecorder()
	fixture.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "mp3 bytes", rec.Body.String())
}

func TestAudioEndpointMissingArtifact(t *testing.T) {
	fixture := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/audio/podcast_missing.mp3", nil)
	rec := httptest.NewRecorder()
	fixture.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Audio file not found"}`, rec.Body.String())
}

func TestTestEnvReportsTokenShape(t *testing.T) {
	fixture := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/test-env", nil)
	rec := httptest.NewRecorder()
	fixture.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"api_token_set":true,"api_token_length":12}`, rec.Body.String())
}
