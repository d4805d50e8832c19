package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRequiresExactlyOneSource(t *testing.T) {
	req := PodcastRequest{TTSModel: TTSModelGemini, Credentials: Credentials{GoogleKey: "k"}}
	require.ErrorIs(t, req.Validate(), ErrNoContentSource)

	req.URLs = []string{"https://example.com/a"}
	req.Topic = "ai news"
	require.ErrorIs(t, req.Validate(), ErrAmbiguousContentSource)

	req.Topic = ""
	require.NoError(t, req.Validate())
}

func TestValidateDefaultsTTSModel(t *testing.T) {
	req := PodcastRequest{
		Topic:       "ai news",
		Credentials: Credentials{GoogleKey: "k"},
	}
	require.NoError(t, req.Validate())
	require.Equal(t, DefaultTTSModel, req.TTSModel)
}

func TestValidateCredentialMatrix(t *testing.T) {
	cases := []struct {
		name    string
		model   TTSModel
		creds   Credentials
		missing string
	}{
		{"gemini without google key", TTSModelGemini, Credentials{}, "google_key"},
		{"geminimulti without google key", TTSModelGeminiMulti, Credentials{OpenAIKey: "x"}, "google_key"},
		{"openai without openai key", TTSModelOpenAI, Credentials{GoogleKey: "x"}, "openai_key"},
		{"elevenlabs without elevenlabs key", TTSModelElevenLabs, Credentials{GoogleKey: "x"}, "elevenlabs_key"},
		{"elevenlabs without google key", TTSModelElevenLabs, Credentials{ElevenLabsKey: "x"}, "google_key"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := PodcastRequest{Topic: "t", TTSModel: tc.model, Credentials: tc.creds}
			err := req.Validate()

			var missing *MissingCredentialError
			require.ErrorAs(t, err, &missing)
			require.Equal(t, tc.missing, missing.Key)
		})
	}
}

func TestValidateUnknownModel(t *testing.T) {
	req := PodcastRequest{Topic: "t", TTSModel: "polly"}
	require.ErrorIs(t, req.Validate(), ErrUnknownTTSModel)
}

func TestValidateAcceptsCompleteRequests(t *testing.T) {
	cases := []PodcastRequest{
		{Topic: "t", TTSModel: TTSModelGemini, Credentials: Credentials{GoogleKey: "g"}},
		{Transcript: "HOST: hi", TTSModel: TTSModelOpenAI, Credentials: Credentials{OpenAIKey: "o"}},
		{URLs: []string{"https://example.com"}, TTSModel: TTSModelElevenLabs, Credentials: Credentials{ElevenLabsKey: "e", GoogleKey: "g"}},
	}
	for _, req := range cases {
		err := req.Validate()
		require.NoError(t, err)
	}
}

func TestMissingCredentialErrorIsNotSessionBusy(t *testing.T) {
	err := error(&MissingCredentialError{Key: "google_key"})
	require.False(t, errors.Is(err, ErrSessionBusy))
	require.Contains(t, err.Error(), "google_key")
}
