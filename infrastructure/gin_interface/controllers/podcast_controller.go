package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"podcast-gateway/application/ports/inbound"
	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/domain"
	"podcast-gateway/infrastructure/gin_interface/dto"
	"podcast-gateway/middleware"
)

type PodcastController interface {
	RegisterRoutes(g *gin.Engine)
}

type podcastController struct {
	logger    outbound.LoggerPort
	generator inbound.PodcastGeneratorPort
	sessions  inbound.SessionRegistryPort
	store     outbound.ArtifactStorePort
	auth      middleware.AuthHandler
	session   middleware.SessionHandler
	apiToken  string
}

func NewPodcastController(
	logger outbound.LoggerPort,
	generator inbound.PodcastGeneratorPort,
	sessions inbound.SessionRegistryPort,
	store outbound.ArtifactStorePort,
	auth middleware.AuthHandler,
	session middleware.SessionHandler,
	apiToken string,
) PodcastController {
	return &podcastController{
		logger:    logger,
		generator: generator,
		sessions:  sessions,
		store:     store,
		auth:      auth,
		session:   session,
		apiToken:  apiToken,
	}
}

func (p *podcastController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", p.handleHealth)
	g.GET("/audio/:filename", p.handleAudio)
	g.GET("/api/test-env", p.handleTestEnv)

	events := g.Group("/api", p.session.SessionMiddleware())
	events.POST("/generate", p.handleGenerate)
	events.POST("/generate-news", p.handleGenerateNews)

	protected := g.Group("/api", p.auth.AuthMiddleware())
	protected.POST("/generate-from-transcript", p.handleGenerateFromTranscript)
}

func (p *podcastController) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGenerate accepts the full request shape and answers with an SSE
// stream carrying the status/progress/complete/error events for this
// request. Closing the connection cancels the generation.
func (p *podcastController) handleGenerate(c *gin.Context) {
	var body dto.GeneratePodcastRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p.streamGeneration(c, body.ToDomain())
}

// handleGenerateNews is the topic-only variant; the tts model is pinned to
// gemini regardless of what the body asks for.
func (p *podcastController) handleGenerateNews(c *gin.Context) {
	var body dto.GeneratePodcastRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := body.ToDomain()
	req.URLs = nil
	req.Transcript = ""
	req.TTSModel = domain.TTSModelGemini

	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No topics provided"})
		return
	}

	p.streamGeneration(c, req)
}

func (p *podcastController) streamGeneration(c *gin.Context, req domain.PodcastRequest) {
	sessionID := middleware.SessionID(c)
	if err := p.sessions.Begin(sessionID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	defer p.sessions.End(sessionID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	events := p.generator.Generate(c.Request.Context(), req)

	c.Stream(func(w io.Writer) bool {
		ev, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent(string(ev.Kind), eventPayload(ev))
		return !ev.Terminal()
	})
}

func eventPayload(ev domain.Event) gin.H {
	switch ev.Kind {
	case domain.EventProgress:
		return gin.H{"progress": ev.Progress, "message": ev.Message}
	case domain.EventComplete:
		payload := gin.H{"audioUrl": ev.Result.AudioURL}
		if ev.Result.Kind == domain.ResultStructured {
			payload["transcript"] = ev.Result.Transcript
		}
		return payload
	default:
		return gin.H{"message": ev.Message}
	}
}

// handleGenerateFromTranscript is the token-gated synchronous variant: it
// runs the same pipeline for a transcript-only input and answers with JSON
// instead of events.
func (p *podcastController) handleGenerateFromTranscript(c *gin.Context) {
	var body dto.GeneratePodcastRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if body.Transcript == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing transcript in request body"})
		return
	}

	req := body.ToDomain()
	req.URLs = nil
	req.Topic = ""

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var terminal domain.Event
	for ev := range p.generator.Generate(c.Request.Context(), req) {
		if ev.Terminal() {
			terminal = ev
		}
	}

	switch terminal.Kind {
	case domain.EventComplete:
		payload := gin.H{
			"success":   true,
			"audio_url": terminal.Result.AudioURL,
		}
		if terminal.Result.Kind == domain.ResultStructured {
			payload["transcript"] = terminal.Result.Transcript
		}
		c.JSON(http.StatusOK, payload)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": terminal.Message})
	}
}

// handleAudio probes the candidate storage directories in order and serves
// the first match.
func (p *podcastController) handleAudio(c *gin.Context) {
	filename := c.Param("filename")

	path, err := p.store.Open(c.Request.Context(), filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
		return
	}

	c.File(path)
}

func (p *podcastController) handleTestEnv(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_token_set":    p.apiToken != "",
		"api_token_length": len(p.apiToken),
	})
}
