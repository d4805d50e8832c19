package domain

type ResultKind string

const (
	ResultPath       ResultKind = "path"
	ResultStructured ResultKind = "structured"
)

// GenerationResult is the tagged outcome of a finished pipeline run. A bare
// path result carries no transcript; a structured result carries both.
type GenerationResult struct {
	Kind         ResultKind
	ArtifactName string
	AudioURL     string
	Transcript   string
}

func PathResult(artifactName, audioURL string) GenerationResult {
	return GenerationResult{
		Kind:         ResultPath,
		ArtifactName: artifactName,
		AudioURL:     audioURL,
	}
}

func StructuredResult(artifactName, audioURL, transcript string) GenerationResult {
	return GenerationResult{
		Kind:         ResultStructured,
		ArtifactName: artifactName,
		AudioURL:     audioURL,
		Transcript:   transcript,
	}
}
