package vocabulary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/silabario/internal/database"
	"github.com/at-ishikawa/silabario/internal/syllable"
)

const mysqlDuplicateEntry = 1062

var wordColumns = []string{"word", "syllables", "stress_index", "category", "image_hint"}

type wordRow struct {
	ID          int64     `db:"id"`
	Word        string    `db:"word"`
	Syllables   []byte    `db:"syllables"`
	StressIndex int       `db:"stress_index"`
	Category    string    `db:"category"`
	ImageHint   string    `db:"image_hint"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r wordRow) toWord() (Word, error) {
	var syllables []string
	if err := json.Unmarshal(r.Syllables, &syllables); err != nil {
		return Word{}, fmt.Errorf("json.Unmarshal(syllables of %q) > %w", r.Word, err)
	}
	return Word{
		Word:        r.Word,
		Syllables:   syllables,
		StressIndex: r.StressIndex,
		Category:    syllable.Category(r.Category),
		ImageHint:   r.ImageHint,
	}, nil
}

// encodeSyllables stores syllables as a JSON array so any character survives the round trip.
func encodeSyllables(syllables []string) (string, error) {
	if syllables == nil {
		syllables = []string{}
	}
	data, err := json.Marshal(syllables)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(syllables) > %w", err)
	}
	return string(data), nil
}

func wordArgs(w *Word) ([]any, error) {
	syllables, err := encodeSyllables(w.Syllables)
	if err != nil {
		return nil, err
	}
	return []any{w.Word, syllables, w.StressIndex, string(w.Category), w.ImageHint}, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all words in insertion order.
func (r *DBRepository) FindAll(ctx context.Context) ([]Word, error) {
	var rows []wordRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM words ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words) > %w", err)
	}
	words := make([]Word, 0, len(rows))
	for _, row := range rows {
		w, err := row.toWord()
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// FindByWord returns the stored word, or nil if not found.
func (r *DBRepository) FindByWord(ctx context.Context, word string) (*Word, error) {
	var row wordRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM words WHERE word = ?", Normalize(word))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word) > %w", err)
	}
	w, err := row.toWord()
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts a new word.
func (r *DBRepository) Create(ctx context.Context, word *Word) error {
	args, err := wordArgs(word)
	if err != nil {
		return err
	}
	query := database.BuildMultiRowInsert("words", wordColumns, 1)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, word.Word)
		}
		return fmt.Errorf("db.ExecContext(insert word) > %w", err)
	}
	return nil
}

// BatchCreate inserts words with a single statement inside a transaction.
func (r *DBRepository) BatchCreate(ctx context.Context, words []*Word) error {
	if len(words) == 0 {
		return nil
	}

	query := database.BuildMultiRowInsert("words", wordColumns, len(words))
	args := make([]any, 0, len(words)*len(wordColumns))
	for _, w := range words {
		wArgs, err := wordArgs(w)
		if err != nil {
			return err
		}
		args = append(args, wArgs...)
	}
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if isDuplicateEntry(err) {
				return fmt.Errorf("%w: %v", ErrDuplicateWord, err)
			}
			return fmt.Errorf("tx.ExecContext(insert words) > %w", err)
		}
		return nil
	})
}

// Update replaces the analysis of an existing word.
func (r *DBRepository) Update(ctx context.Context, word *Word) error {
	syllables, err := encodeSyllables(word.Syllables)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE words SET syllables = ?, stress_index = ?, category = ?, image_hint = ?, updated_at = CURRENT_TIMESTAMP
		WHERE word = ?`,
		syllables, word.StressIndex, string(word.Category), word.ImageHint, word.Word)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update word) > %w", err)
	}
	return expectAffected(result, word.Word)
}

// Delete removes a word.
func (r *DBRepository) Delete(ctx context.Context, word string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM words WHERE word = ?", Normalize(word))
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete word) > %w", err)
	}
	return expectAffected(result, word)
}

func expectAffected(result sql.Result, word string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	return nil
}
