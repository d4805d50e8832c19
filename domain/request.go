package domain

import (
	"errors"
	"fmt"
)

type TTSModel string

const (
	TTSModelGemini      TTSModel = "gemini"
	TTSModelGeminiMulti TTSModel = "geminimulti"
	TTSModelOpenAI      TTSModel = "openai"
	TTSModelElevenLabs  TTSModel = "elevenlabs"

	DefaultTTSModel = TTSModelGeminiMulti
)

var (
	ErrNoContentSource        = errors.New("request must carry exactly one of urls, topic or transcript")
	ErrAmbiguousContentSource = errors.New("request carries more than one content source")
	ErrUnknownTTSModel        = errors.New("unknown tts model")
	ErrSessionBusy            = errors.New("a generation is already running on this session")
	ErrArtifactNotFound       = errors.New("audio file not found")
)

type MissingCredentialError struct {
	Key string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing %s for the selected tts model", e.Key)
}

// Credentials are request-scoped provider keys. They travel with the request
// and are never written to process-wide state.
type Credentials struct {
	GoogleKey     string
	OpenAIKey     string
	ElevenLabsKey string
}

type ConversationConfig struct {
	PodcastName          string
	PodcastTagline       string
	ConversationStyle    []string
	RolesPerson1         string
	RolesPerson2         string
	DialogueStructure    []string
	EngagementTechniques []string
	UserInstructions     string
	WordCount            int
	Creativity           float64
	OutputLanguage       string
	EndingMessage        string
}

func DefaultConversationConfig() ConversationConfig {
	return ConversationConfig{
		RolesPerson1:      "Host",
		RolesPerson2:      "Guest",
		DialogueStructure: []string{"Introduction", "Content", "Conclusion"},
		Creativity:        0.7,
		WordCount:         2000,
		OutputLanguage:    "English",
		EndingMessage:     "Thank you for listening to this episode.",
	}
}

type PodcastRequest struct {
	URLs       []string
	Topic      string
	Transcript string

	Conversation ConversationConfig
	TTSModel     TTSModel
	LongForm     bool
	ImageURLs    []string

	Credentials Credentials
}

// Validate checks that exactly one content source is present and that the
// credentials required by the selected tts model were supplied.
func (r *PodcastRequest) Validate() error {
	sources := 0
	if len(r.URLs) > 0 {
		sources++
	}
	if r.Topic != "" {
		sources++
	}
	if r.Transcript != "" {
		sources++
	}
	if sources == 0 {
		return ErrNoContentSource
	}
	if sources > 1 {
		return ErrAmbiguousContentSource
	}

	if r.TTSModel == "" {
		r.TTSModel = DefaultTTSModel
	}

	return r.checkCredentials()
}

func (r *PodcastRequest) checkCredentials() error {
	switch r.TTSModel {
	case TTSModelGemini, TTSModelGeminiMulti:
		if r.Credentials.GoogleKey == "" {
			return &MissingCredentialError{Key: "google_key"}
		}
	case TTSModelOpenAI:
		if r.Credentials.OpenAIKey == "" {
			return &MissingCredentialError{Key: "openai_key"}
		}
	case TTSModelElevenLabs:
		if r.Credentials.ElevenLabsKey == "" {
			return &MissingCredentialError{Key: "elevenlabs_key"}
		}
		// Script synthesis for the elevenlabs path still runs on Gemini.
		if r.Credentials.GoogleKey == "" {
			return &MissingCredentialError{Key: "google_key"}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTTSModel, r.TTSModel)
	}
	return nil
}
