package translation

import (
	"context"

	"go.uber.org/zap"

	"lingo-bridge/pkg/types"
)

// Chinese target codes understood by the providers. A generic "zh"
// target is resolved to one of the concrete variants before the
// provider is called.
const (
	langChinese            = "zh"
	langChineseSimplified  = "zh-CN"
	langChineseTraditional = "zh-TW"
)

// TranslatorProviderInterface defines the methods required for translation providers
type TranslatorProviderInterface interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// AnnotatorInterface derives a pronunciation guide from translated text
type AnnotatorInterface interface {
	Annotate(text string, traditional bool) string
}

// Result is the outcome of one translate-then-annotate pipeline run.
type Result struct {
	SourceText    string
	Translation   string
	Pronunciation string
}

// Service runs the translation pipeline: normalize the target language,
// call the provider once, and annotate Chinese results with a
// pronunciation guide.
type Service struct {
	logger    *zap.Logger
	provider  TranslatorProviderInterface
	annotator AnnotatorInterface
}

// NewService creates a new instance of the translation service
func NewService(logger *zap.Logger, provider TranslatorProviderInterface, annotator AnnotatorInterface) *Service {
	return &Service{
		logger:    logger,
		provider:  provider,
		annotator: annotator,
	}
}

// Translate translates text and, for Chinese targets, derives a
// pronunciation guide. Empty text short-circuits without contacting the
// provider.
func (s *Service) Translate(ctx context.Context, text, sourceLang, targetLang string, traditional bool) (*Result, error) {
	if text == "" {
		return &Result{}, nil
	}

	target := ResolveTarget(targetLang, traditional)

	s.logger.Info("translating text",
		zap.String("source_language", sourceLang),
		zap.String("target_language", target),
		zap.Int("text_length", len(text)),
	)

	translated, err := s.provider.Translate(ctx, text, sourceLang, target)
	if err != nil {
		return nil, types.NewUpstreamError("translation failed", err)
	}

	result := &Result{
		SourceText:  text,
		Translation: translated,
	}
	if target == langChineseSimplified || target == langChineseTraditional {
		result.Pronunciation = s.annotator.Annotate(translated, target == langChineseTraditional)
	}

	s.logger.Info("translation completed",
		zap.String("target_language", target),
		zap.Int("translation_length", len(result.Translation)),
	)
	return result, nil
}

// ResolveTarget collapses the generic Chinese code into a concrete
// script variant. An explicit variant such as "zh-TW" passes through
// unchanged.
func ResolveTarget(targetLang string, traditional bool) string {
	if targetLang != langChinese {
		return targetLang
	}
	if traditional {
		return langChineseTraditional
	}
	return langChineseSimplified
}
