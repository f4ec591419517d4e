package translator_provider

import "context"

// TranslatorProvider defines the interface that all translation providers must implement
type TranslatorProvider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// ProviderType represents the type of translation provider
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderGoogle ProviderType = "google"
)
