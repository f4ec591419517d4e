package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"lingo-bridge/pkg/types"
)

// Artifact is a per-request temporary audio file. Whoever obtains one
// must call Release after the bytes have been transmitted; Release is
// safe to defer on every exit path and to call more than once.
type Artifact struct {
	path string
}

// NewArtifact wraps an existing file as a releasable artifact.
func NewArtifact(path string) *Artifact {
	return &Artifact{path: path}
}

func (a *Artifact) Path() string {
	return a.path
}

func (a *Artifact) Open() (*os.File, error) {
	return os.Open(a.path)
}

// Release removes the temporary file.
func (a *Artifact) Release() error {
	err := os.Remove(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Synthesizer converts text into an MP3 clip via the OpenAI speech API.
type Synthesizer struct {
	logger *zap.Logger
	client *openai.Client
	model  string
	voice  string
}

func NewSynthesizer(logger *zap.Logger, openAIConfig types.OpenAIConfig, speechConfig types.SpeechConfig) *Synthesizer {
	c := openai.NewClient(option.WithAPIKey(openAIConfig.APIKey))
	return &Synthesizer{
		logger: logger,
		client: &c,
		model:  speechConfig.Model,
		voice:  speechConfig.Voice,
	}
}

// Synthesize renders text as MP3 audio into a temporary file. On error
// no file is left behind.
func (s *Synthesizer) Synthesize(ctx context.Context, text, lang string) (*Artifact, error) {
	tmp, err := os.CreateTemp("", "lingobridge-speech-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	s.logger.Info("synthesizing speech",
		zap.String("lang", lang),
		zap.Int("text_length", len(text)),
	)

	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(s.voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
		Instructions:   openai.String(fmt.Sprintf("Speak the text in the language with code %q using natural native pronunciation.", lang)),
	})
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, types.NewUpstreamError("speech synthesis failed", err)
	}
	defer resp.Body.Close()

	written, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return nil, types.NewUpstreamError("speech synthesis failed", err)
	}
	if written == 0 {
		os.Remove(tmp.Name())
		return nil, types.NewUpstreamError("speech synthesis failed", fmt.Errorf("no audio data received"))
	}

	return &Artifact{path: tmp.Name()}, nil
}
