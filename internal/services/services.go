package services

import (
	"context"

	"lingo-bridge/internal/share"
	"lingo-bridge/internal/speech"
	"lingo-bridge/internal/translation"
)

// Translator runs the translate-then-annotate pipeline
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string, traditional bool) (*translation.Result, error)
}

// Speaker renders text as a temporary audio artifact
type Speaker interface {
	Synthesize(ctx context.Context, text, lang string) (*speech.Artifact, error)
}

// Sharer persists and retrieves shared translations
type Sharer interface {
	Create(ctx context.Context, sourceText, translation, pronunciation string) (string, error)
	Get(ctx context.Context, id string) (*share.Record, error)
}

// Services holds all application services
type Services struct {
	Translator Translator
	Speaker    Speaker
	Sharer     Sharer
}

// NewServices creates and initializes all services
func NewServices(translator Translator, speaker Speaker, sharer Sharer) *Services {
	return &Services{
		Translator: translator,
		Speaker:    speaker,
		Sharer:     sharer,
	}
}
