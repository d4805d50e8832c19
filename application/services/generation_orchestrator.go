package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"podcast-gateway/application/ports/inbound"
	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/domain"
)

// Fixed progress checkpoints. Content acquisition scales across 0-30, the
// later phases jump rather than interpolate.
const (
	progressFetchCeiling = 30
	progressScriptDone   = 60
	progressAudioDone    = 90
	progressComplete     = 100
)

type generationOrchestrator struct {
	logger       outbound.LoggerPort
	workerPool   outbound.TaskDispatcher
	fetcher      outbound.ContentFetcherPort
	synthesizers outbound.SynthesizerSelectorPort
	store        outbound.ArtifactStorePort
}

// NewGenerationOrchestrator sequences acquisition, script synthesis, audio
// synthesis and artifact placement for one request at a time. Credentials
// travel inside the request; nothing here touches process-wide state.
func NewGenerationOrchestrator(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	fetcher outbound.ContentFetcherPort,
	synthesizers outbound.SynthesizerSelectorPort,
	store outbound.ArtifactStorePort,
) inbound.PodcastGeneratorPort {
	return &generationOrchestrator{
		logger:       logger,
		workerPool:   workerPool,
		fetcher:      fetcher,
		synthesizers: synthesizers,
		store:        store,
	}
}

func (g *generationOrchestrator) Generate(ctx context.Context, req domain.PodcastRequest) <-chan domain.Event {
	stream := domain.NewEventStream(2*len(req.URLs) + 12)

	if err := g.workerPool.Submit(func() {
		g.run(ctx, req, stream)
	}); err != nil {
		g.logger.Error(err, "Failed to dispatch generation to worker pool")
		stream.Fail("Server is overloaded, try again later")
	}

	return stream.Events()
}

func (g *generationOrchestrator) run(ctx context.Context, req domain.PodcastRequest, stream *domain.EventStream) {
	stream.Status("Starting podcast generation...")

	if err := req.Validate(); err != nil {
		g.logger.Error(err, "Rejected generation request")
		stream.Fail(err.Error())
		return
	}

	transcript := req.Transcript
	if transcript == "" {
		corpus := g.resolveCorpus(ctx, req, stream)
		if cancelled(ctx, stream) {
			return
		}

		stream.Status("Generating podcast content...")
		scriptSynth, err := g.synthesizers.ScriptFor(req.TTSModel)
		if err != nil {
			stream.Fail(err.Error())
			return
		}

		transcript, err = scriptSynth.Synthesize(ctx, outbound.SynthesizeScriptRequest{
			Corpus:       corpus,
			Topic:        req.Topic,
			Conversation: req.Conversation,
			LongForm:     req.LongForm,
			Credentials:  req.Credentials,
		})
		if err != nil {
			g.logger.Error(err, "Script synthesis failed")
			stream.Fail("Script synthesis failed")
			return
		}
		stream.Progress(progressScriptDone, "Generating podcast content...")
	}

	if cancelled(ctx, stream) {
		return
	}

	stream.Status("Processing audio...")
	audioSynth, err := g.synthesizers.AudioFor(req.TTSModel)
	if err != nil {
		stream.Fail(err.Error())
		return
	}

	audio, err := audioSynth.Synthesize(ctx, outbound.SynthesizeAudioRequest{
		Transcript:  transcript,
		TTSModel:    req.TTSModel,
		Credentials: req.Credentials,
	})
	if err != nil {
		g.logger.Error(err, "Audio synthesis failed")
		stream.Fail("Audio synthesis failed")
		return
	}
	stream.Progress(progressAudioDone, "Processing final audio...")

	if cancelled(ctx, stream) {
		return
	}

	artifact, err := g.store.Save(ctx, artifactName(req), audio)
	if err != nil {
		g.logger.Error(err, "Failed to store audio artifact")
		stream.Fail("Failed to store generated audio")
		return
	}

	stream.Progress(progressComplete, "Podcast generation complete!")
	if transcript != "" {
		stream.Complete(domain.StructuredResult(artifact.Name, artifact.AudioURL, transcript))
	} else {
		stream.Complete(domain.PathResult(artifact.Name, artifact.AudioURL))
	}
}

// resolveCorpus fetches every source URL independently; a failed URL is
// reported as a status event and dropped. An empty corpus still proceeds to
// script synthesis.
func (g *generationOrchestrator) resolveCorpus(ctx context.Context, req domain.PodcastRequest, stream *domain.EventStream) string {
	if req.Topic != "" {
		return ""
	}

	var parts []string
	for i, url := range req.URLs {
		if ctx.Err() != nil {
			return ""
		}

		content, err := g.fetcher.Fetch(ctx, url)
		if err != nil {
			g.logger.ErrorWithFields(err, "Failed to fetch source URL", map[string]interface{}{
				"url": url,
			})
			stream.Status(fmt.Sprintf("Skipping source that could not be fetched: %s", url))
		} else {
			parts = append(parts, content)
		}

		stream.Progress((i+1)*progressFetchCeiling/len(req.URLs), "Fetching source content...")
	}

	return strings.Join(parts, "\n\n")
}

func artifactName(req domain.PodcastRequest) string {
	prefix := "podcast"
	if req.Topic != "" {
		prefix = "news_podcast"
	}
	return fmt.Sprintf("%s_%s.mp3", prefix, uuid.NewString())
}

func cancelled(ctx context.Context, stream *domain.EventStream) bool {
	if ctx.Err() != nil {
		stream.Fail("Generation cancelled")
		return true
	}
	return false
}
