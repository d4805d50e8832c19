package domain

import "strings"

type TranscriptTurn struct {
	Speaker string
	Text    string
	// Person is 1 or 2, assigned by order of first appearance. Lines
	// without a speaker prefix inherit the previous turn's person.
	Person int
}

// ParseTranscript splits a dialogue transcript into speaker turns. A turn
// starts at a line shaped like "Name: text"; continuation lines append to
// the current turn.
func ParseTranscript(transcript string) []TranscriptTurn {
	var turns []TranscriptTurn
	speakers := map[string]int{}

	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		speaker, text, ok := splitSpeakerLine(line)
		if !ok {
			if len(turns) == 0 {
				turns = append(turns, TranscriptTurn{Text: line, Person: 1})
			} else {
				turns[len(turns)-1].Text += " " + line
			}
			continue
		}

		person, seen := speakers[speaker]
		if !seen {
			if len(speakers) < 2 {
				person = len(speakers) + 1
			} else {
				person = 2
			}
			speakers[speaker] = person
		}

		turns = append(turns, TranscriptTurn{Speaker: speaker, Text: text, Person: person})
	}

	return turns
}

func splitSpeakerLine(line string) (speaker, text string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 || idx > 40 {
		return "", "", false
	}
	speaker = strings.TrimSpace(line[:idx])
	if speaker == "" || strings.ContainsAny(speaker, ".!?") {
		return "", "", false
	}
	return speaker, strings.TrimSpace(line[idx+1:]), true
}
