package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/zap"

	"lingo-bridge/internal/phonetic"
	"lingo-bridge/internal/services"
	"lingo-bridge/internal/share"
	"lingo-bridge/internal/speech"
	"lingo-bridge/internal/translation"
	"lingo-bridge/pkg/types"
)

const testBaseURL = "http://localhost:6777"

// mockProvider implements the translator provider interface without
// touching the network
type mockProvider struct {
	translation string
	err         error
	calls       int
	lastTarget  string
}

func (m *mockProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	m.calls++
	m.lastTarget = targetLang
	return m.translation, m.err
}

// fakeSpeaker writes a fixed payload to a temp file instead of calling
// a TTS provider
type fakeSpeaker struct {
	err      error
	lastPath string
}

func (f *fakeSpeaker) Synthesize(ctx context.Context, text, lang string) (*speech.Artifact, error) {
	if f.err != nil {
		return nil, f.err
	}
	tmp, err := os.CreateTemp("", "fake-speech-*.mp3")
	if err != nil {
		return nil, err
	}
	if _, err := tmp.Write([]byte("ID3 fake mp3 payload")); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()
	f.lastPath = tmp.Name()
	return speech.NewArtifact(tmp.Name()), nil
}

func setupTestServer(t *testing.T, provider translation.TranslatorProviderInterface, speaker services.Speaker) *GinServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqldb, err := sql.Open(sqliteshim.ShimName, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	store := share.NewStore(db, zap.NewNop())
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	translator := translation.NewService(zap.NewNop(), provider, phonetic.NewAnnotator())
	svc := services.NewServices(translator, speaker, store)

	return NewGinServer(zap.NewNop(), types.ServerConfig{BaseURL: testBaseURL}, svc)
}

func doJSON(t *testing.T, server *GinServer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	server := setupTestServer(t, &mockProvider{}, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTranslateEmptyText(t *testing.T) {
	provider := &mockProvider{translation: "should not be used"}
	server := setupTestServer(t, provider, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodPost, "/translate", `{"text": "", "source": "en", "target": "zh"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body types.TranslateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Translation != "" || body.Pronunciation != "" {
		t.Errorf("expected empty translation and pronunciation, got %+v", body)
	}
	if provider.calls != 0 {
		t.Errorf("expected no provider call, got %d", provider.calls)
	}
}

func TestTranslateEndToEnd(t *testing.T) {
	provider := &mockProvider{translation: "你好"}
	server := setupTestServer(t, provider, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodPost, "/translate", `{"text": "Hello", "source": "en", "target": "zh"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if provider.lastTarget != "zh-CN" {
		t.Errorf("provider target = %q, want %q", provider.lastTarget, "zh-CN")
	}

	var body types.TranslateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Translation != "你好" {
		t.Errorf("translation = %q, want %q", body.Translation, "你好")
	}
	if body.Pronunciation != "nǐ hǎo" {
		t.Errorf("pronunciation = %q, want %q", body.Pronunciation, "nǐ hǎo")
	}
	if body.SourceText != "Hello" {
		t.Errorf("source_text = %q, want %q", body.SourceText, "Hello")
	}
}

func TestTranslateUpstreamError(t *testing.T) {
	provider := &mockProvider{err: context.DeadlineExceeded}
	server := setupTestServer(t, provider, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodPost, "/translate", `{"text": "Hello", "source": "en", "target": "zh"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == nil {
		t.Error("expected error message in response")
	}
}

func TestTranslateMalformedBody(t *testing.T) {
	server := setupTestServer(t, &mockProvider{}, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodPost, "/translate", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSpeak(t *testing.T) {
	speaker := &fakeSpeaker{}
	server := setupTestServer(t, &mockProvider{}, speaker)

	rec := doJSON(t, server, http.MethodPost, "/speak", `{"text": "你好", "lang": "zh-CN"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("content type = %q, want audio/mpeg", ct)
	}
	if rec.Body.String() != "ID3 fake mp3 payload" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}

	// Temp artifact must be gone once the response is written
	if _, err := os.Stat(speaker.lastPath); !os.IsNotExist(err) {
		t.Errorf("expected artifact removed, stat err = %v", err)
	}
}

func TestSpeakMissingText(t *testing.T) {
	server := setupTestServer(t, &mockProvider{}, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodPost, "/speak", `{"text": "", "lang": "en"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSpeakUpstreamError(t *testing.T) {
	speaker := &fakeSpeaker{err: types.NewUpstreamError("speech synthesis failed", context.DeadlineExceeded)}
	server := setupTestServer(t, &mockProvider{}, speaker)

	rec := doJSON(t, server, http.MethodPost, "/speak", `{"text": "hi", "lang": "en"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestShareRoundTrip(t *testing.T) {
	server := setupTestServer(t, &mockProvider{}, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodPost, "/share",
		`{"source_text": "Hello", "translation": "你好", "pronunciation": "nǐ hǎo"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body types.ShareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	prefix := testBaseURL + "/?share="
	if !strings.HasPrefix(body.ShareURL, prefix) {
		t.Fatalf("share_url = %q, want prefix %q", body.ShareURL, prefix)
	}
	token := strings.TrimPrefix(body.ShareURL, prefix)
	if len(token) != 8 {
		t.Fatalf("token = %q, want 8 characters", token)
	}

	page := doJSON(t, server, http.MethodGet, "/?share="+token, "")
	if page.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", page.Code)
	}
	for _, want := range []string{"Hello", "你好", "nǐ hǎo"} {
		if !strings.Contains(page.Body.String(), want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestShareMissingTranslation(t *testing.T) {
	server := setupTestServer(t, &mockProvider{}, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodPost, "/share", `{"source_text": "Hello", "translation": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestIndexUnknownShareFallsBack(t *testing.T) {
	server := setupTestServer(t, &mockProvider{}, &fakeSpeaker{})

	rec := doJSON(t, server, http.MethodGet, "/?share=nosuchid", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Lingo Bridge") {
		t.Error("expected default page body")
	}
}
