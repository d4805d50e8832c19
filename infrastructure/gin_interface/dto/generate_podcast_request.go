package dto

import "podcast-gateway/domain"

// GeneratePodcastRequest is the wire shape shared by the event-stream
// endpoints and the transcript endpoint. podcast_name/podcast_tagline are
// accepted as aliases of name/tagline.
type GeneratePodcastRequest struct {
	URLs       []string `json:"urls"`
	Topics     string   `json:"topics"`
	Transcript string   `json:"transcript"`

	Name           string `json:"name"`
	Tagline        string `json:"tagline"`
	PodcastName    string `json:"podcast_name"`
	PodcastTagline string `json:"podcast_tagline"`

	ConversationStyle    []string `json:"conversation_style"`
	RolesPerson1         string   `json:"roles_person1"`
	RolesPerson2         string   `json:"roles_person2"`
	DialogueStructure    []string `json:"dialogue_structure"`
	EngagementTechniques []string `json:"engagement_techniques"`
	UserInstructions     string   `json:"user_instructions"`
	WordCount            int      `json:"word_count"`
	Creativity           *float64 `json:"creativity"`
	OutputLanguage       string   `json:"output_language"`
	EndingMessage        string   `json:"ending_message"`

	TTSModel   string   `json:"tts_model"`
	IsLongForm bool     `json:"is_long_form"`
	ImageURLs  []string `json:"image_urls"`

	GoogleKey     string `json:"google_key"`
	OpenAIKey     string `json:"openai_key"`
	ElevenLabsKey string `json:"elevenlabs_key"`
}

func (r *GeneratePodcastRequest) ToDomain() domain.PodcastRequest {
	conv := domain.DefaultConversationConfig()

	if r.Name != "" {
		conv.PodcastName = r.Name
	} else if r.PodcastName != "" {
		conv.PodcastName = r.PodcastName
	}
	if r.Tagline != "" {
		conv.PodcastTagline = r.Tagline
	} else if r.PodcastTagline != "" {
		conv.PodcastTagline = r.PodcastTagline
	}
	if len(r.ConversationStyle) > 0 {
		conv.ConversationStyle = r.ConversationStyle
	}
	if r.RolesPerson1 != "" {
		conv.RolesPerson1 = r.RolesPerson1
	}
	if r.RolesPerson2 != "" {
		conv.RolesPerson2 = r.RolesPerson2
	}
	if len(r.DialogueStructure) > 0 {
		conv.DialogueStructure = r.DialogueStructure
	}
	if len(r.EngagementTechniques) > 0 {
		conv.EngagementTechniques = r.EngagementTechniques
	}
	if r.UserInstructions != "" {
		conv.UserInstructions = r.UserInstructions
	}
	if r.WordCount > 0 {
		conv.WordCount = r.WordCount
	}
	if r.Creativity != nil {
		conv.Creativity = *r.Creativity
	}
	if r.OutputLanguage != "" {
		conv.OutputLanguage = r.OutputLanguage
	}
	if r.EndingMessage != "" {
		conv.EndingMessage = r.EndingMessage
	}

	return domain.PodcastRequest{
		URLs:         r.URLs,
		Topic:        r.Topics,
		Transcript:   r.Transcript,
		Conversation: conv,
		TTSModel:     domain.TTSModel(r.TTSModel),
		LongForm:     r.IsLongForm,
		ImageURLs:    r.ImageURLs,
		Credentials: domain.Credentials{
			GoogleKey:     r.GoogleKey,
			OpenAIKey:     r.OpenAIKey,
			ElevenLabsKey: r.ElevenLabsKey,
		},
	}
}
