package share

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"lingo-bridge/pkg/types"
)

// Record is one shared translation. Records are write-once: never
// mutated, never deleted, no expiry.
type Record struct {
	bun.BaseModel `bun:"table:translations"`

	ID            string    `bun:"id,pk" json:"id"`
	SourceText    string    `bun:"source_text,notnull" json:"source_text"`
	Translation   string    `bun:"translation,notnull" json:"translation"`
	Pronunciation string    `bun:"pronunciation" json:"pronunciation"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

const tokenLength = 8

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Store persists shared translations keyed by a short random token.
type Store struct {
	db     *bun.DB
	logger *zap.Logger
}

func NewStore(db *bun.DB, logger *zap.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the translations table if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*Record)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create translations table: %w", err)
	}
	return nil
}

// Create stores a translation triple and returns its share token.
// Token collisions are statistically negligible and not defended
// against; a colliding insert fails with the driver's constraint error.
func (s *Store) Create(ctx context.Context, sourceText, translation, pronunciation string) (string, error) {
	if sourceText == "" {
		return "", types.NewValidationError("source_text is required")
	}
	if translation == "" {
		return "", types.NewValidationError("translation is required")
	}

	id, err := NewToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}

	record := &Record{
		ID:            id,
		SourceText:    sourceText,
		Translation:   translation,
		Pronunciation: pronunciation,
		CreatedAt:     time.Now(),
	}
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store shared translation: %w", err)
	}

	s.logger.Info("shared translation stored", zap.String("id", id))
	return id, nil
}

// Get looks up a shared translation by its token.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	record := new(Record)
	err := s.db.NewSelect().
		Model(record).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.NewNotFoundError("shared translation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load shared translation: %w", err)
	}
	return record, nil
}

// NewToken returns an 8-character random identifier drawn from a
// url-safe alphanumeric charset.
func NewToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = tokenCharset[int(b)%len(tokenCharset)]
	}
	return string(buf), nil
}
