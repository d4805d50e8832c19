package adapters

import (
	"fmt"
	"strings"

	"podcast-gateway/application/ports/outbound"
)

// buildScriptPrompt renders the conversation configuration and the corpus
// into one instruction block shared by every script synthesizer backend.
func buildScriptPrompt(req outbound.SynthesizeScriptRequest) string {
	conv := req.Conversation

	var b strings.Builder
	b.WriteString("Write a two-person podcast dialogue transcript.\n")
	b.WriteString(fmt.Sprintf("Speaker 1 is the %s, speaker 2 is the %s.\n", orDefault(conv.RolesPerson1, "Host"), orDefault(conv.RolesPerson2, "Guest")))
	b.WriteString("Format every line as \"<speaker role>: <text>\" with no other markup.\n")

	if conv.PodcastName != "" {
		b.WriteString(fmt.Sprintf("The podcast is called %q", conv.PodcastName))
		if conv.PodcastTagline != "" {
			b.WriteString(fmt.Sprintf(" — %q", conv.PodcastTagline))
		}
		b.WriteString(".\n")
	}
	if len(conv.ConversationStyle) > 0 {
		b.WriteString("Conversation style: " + strings.Join(conv.ConversationStyle, ", ") + ".\n")
	}
	if len(conv.DialogueStructure) > 0 {
		b.WriteString("Structure the dialogue as: " + strings.Join(conv.DialogueStructure, " -> ") + ".\n")
	}
	if len(conv.EngagementTechniques) > 0 {
		b.WriteString("Use these engagement techniques: " + strings.Join(conv.EngagementTechniques, ", ") + ".\n")
	}
	if conv.WordCount > 0 {
		words := conv.WordCount
		if req.LongForm {
			words *= 2
		}
		b.WriteString(fmt.Sprintf("Target length: about %d words.\n", words))
	}
	if conv.OutputLanguage != "" {
		b.WriteString("Write the dialogue in " + conv.OutputLanguage + ".\n")
	}
	if conv.UserInstructions != "" {
		b.WriteString("Additional instructions: " + conv.UserInstructions + "\n")
	}
	if conv.EndingMessage != "" {
		b.WriteString(fmt.Sprintf("Close the episode with: %q\n", conv.EndingMessage))
	}

	if req.Topic != "" {
		b.WriteString("\nThe episode topic is: " + req.Topic + "\n")
	} else {
		b.WriteString("\nBase the episode on the following source material:\n\n")
		b.WriteString(req.Corpus)
		b.WriteString("\n")
	}

	return b.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
