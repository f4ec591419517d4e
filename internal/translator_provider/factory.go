package translator_provider

import (
	"fmt"

	"lingo-bridge/internal/third_party/gemini"
	"lingo-bridge/internal/third_party/googlecloud"
	lingobridge_openai "lingo-bridge/internal/third_party/openai"
	"lingo-bridge/pkg/types"
)

// Factory creates translator providers based on the specified type
type Factory struct {
	config *types.Config
}

// NewFactory creates a new provider factory
func NewFactory(config *types.Config) *Factory {
	return &Factory{
		config: config,
	}
}

// CreateProvider creates a translator provider based on the specified type
func (f *Factory) CreateProvider(providerType ProviderType) (TranslatorProvider, error) {
	switch providerType {
	case ProviderOpenAI:
		return lingobridge_openai.NewOpenAIClient(f.config.OpenAI)
	case ProviderGemini:
		return gemini.NewGeminiClient(f.config.Gemini)
	case ProviderGoogle:
		return googlecloud.NewTranslateClient(f.config.Google)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
