package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

// Keys of the app_state table. Each consumer owns a disjoint namespace.
const (
	keyDocuments = "documents"
	keyActiveID  = "active_id"

	// keyLegacyContent predates the document collection: old schema versions
	// stored one markdown blob under it.
	keyLegacyContent = "content"

	keyToken  = "github.token"
	keyOwner  = "github.owner"
	keyRepo   = "github.repo"
	keyBranch = "github.branch"

	keyPrefAutoRender   = "pref.auto_render"
	keyPrefMathRender   = "pref.math_render"
	keyPrefFullHeight   = "pref.full_height"
	keyPrefInputVisible = "pref.input_visible"
	keyPrefTheme        = "pref.theme"
	keyPrefDirGeneral   = "pref.dir.general"
	keyPrefDirInline    = "pref.dir.inline_code"
	keyPrefDirCodeBlock = "pref.dir.code_block"
)

type stateRepository struct {
	*DB
	logger *logger.Logger
}

// NewStateRepository returns a [StateRepository] backed by the app_state
// key-value table of the given database.
func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	return &stateRepository{DB: db, logger: logger}
}

func (r *stateRepository) setValue(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert("app_state").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("key", key).Msg("failed to upsert state value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *stateRepository) getValue(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From("app_state").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrStateNotFound
		}
		r.logger.Err(err).Str("key", key).Msg("failed to read state value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// SaveDocumentState implements [StateRepository]. The document collection and
// the active id live under separate keys so either can be inspected or reset
// independently.
func (r *stateRepository) SaveDocumentState(ctx context.Context, state models.DocumentState) error {
	payload, err := json.Marshal(state.Documents)
	if err != nil {
		return fmt.Errorf("encode document collection: %w", err)
	}

	if err = r.setValue(ctx, keyDocuments, string(payload)); err != nil {
		return err
	}
	return r.setValue(ctx, keyActiveID, state.ActiveID)
}

// LoadDocumentState implements [StateRepository]. Unparseable stored JSON is
// logged and reported as absence so the caller can seed a fresh collection;
// it never fails startup.
func (r *stateRepository) LoadDocumentState(ctx context.Context) (models.DocumentState, bool, error) {
	raw, err := r.getValue(ctx, keyDocuments)
	if err != nil {
		if errors.Is(err, ErrStateNotFound) {
			return models.DocumentState{}, false, nil
		}
		return models.DocumentState{}, false, err
	}

	var docs []models.Document
	if err = json.Unmarshal([]byte(raw), &docs); err != nil {
		r.logger.Warn().Err(err).Msg("persisted document collection is corrupt, starting fresh")
		return models.DocumentState{}, false, nil
	}
	if len(docs) == 0 {
		return models.DocumentState{}, false, nil
	}

	state := models.DocumentState{Documents: docs}
	if active, err := r.getValue(ctx, keyActiveID); err == nil {
		if _, ok := state.Get(active); ok {
			state.ActiveID = active
		}
	}

	return state, true, nil
}

// SavePreferences implements [StateRepository]. Every flag is stored as its
// string form under its own key.
func (r *stateRepository) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	values := map[string]string{
		keyPrefAutoRender:   strconv.FormatBool(prefs.AutoRender),
		keyPrefMathRender:   strconv.FormatBool(prefs.MathRender),
		keyPrefFullHeight:   strconv.FormatBool(prefs.FullHeight),
		keyPrefInputVisible: strconv.FormatBool(prefs.InputVisible),
		keyPrefTheme:        prefs.Theme,
		keyPrefDirGeneral:   string(prefs.General),
		keyPrefDirInline:    string(prefs.InlineCode),
		keyPrefDirCodeBlock: string(prefs.CodeBlock),
	}

	for _, key := range []string{
		keyPrefAutoRender, keyPrefMathRender, keyPrefFullHeight,
		keyPrefInputVisible, keyPrefTheme, keyPrefDirGeneral,
		keyPrefDirInline, keyPrefDirCodeBlock,
	} {
		if err := r.setValue(ctx, key, values[key]); err != nil {
			return err
		}
	}

	return nil
}

// LoadPreferences implements [StateRepository]. Absent or unparseable values
// fall back to the documented defaults.
func (r *stateRepository) LoadPreferences(ctx context.Context) (models.Preferences, error) {
	prefs := models.DefaultPreferences()

	prefs.AutoRender = r.boolValue(ctx, keyPrefAutoRender, prefs.AutoRender)
	prefs.MathRender = r.boolValue(ctx, keyPrefMathRender, prefs.MathRender)
	prefs.FullHeight = r.boolValue(ctx, keyPrefFullHeight, prefs.FullHeight)
	prefs.InputVisible = r.boolValue(ctx, keyPrefInputVisible, prefs.InputVisible)

	if theme, err := r.getValue(ctx, keyPrefTheme); err == nil && theme != "" {
		prefs.Theme = theme
	}
	if dir, err := r.getValue(ctx, keyPrefDirGeneral); err == nil {
		prefs.General = models.ParseDirection(dir)
	}
	if dir, err := r.getValue(ctx, keyPrefDirInline); err == nil {
		prefs.InlineCode = models.ParseDirection(dir)
	}
	if dir, err := r.getValue(ctx, keyPrefDirCodeBlock); err == nil {
		prefs.CodeBlock = models.ParseDirection(dir)
	}

	return prefs, nil
}

func (r *stateRepository) boolValue(ctx context.Context, key string, fallback bool) bool {
	raw, err := r.getValue(ctx, key)
	if err != nil {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		r.logger.Warn().Str("key", key).Str("value", raw).Msg("unparseable stored preference, using default")
		return fallback
	}
	return parsed
}

// SaveToken implements [StateRepository].
func (r *stateRepository) SaveToken(ctx context.Context, token string) error {
	return r.setValue(ctx, keyToken, token)
}

// LoadToken implements [StateRepository].
// LoadLegacyContent implements [StateRepository].
func (r *stateRepository) LoadLegacyContent(ctx context.Context) (string, error) {
	content, err := r.getValue(ctx, keyLegacyContent)
	if errors.Is(err, ErrStateNotFound) {
		return "", nil
	}
	return content, err
}

func (r *stateRepository) LoadToken(ctx context.Context) (string, error) {
	token, err := r.getValue(ctx, keyToken)
	if errors.Is(err, ErrStateNotFound) {
		return "", nil
	}
	return token, err
}

// SaveRepoTarget implements [StateRepository].
func (r *stateRepository) SaveRepoTarget(ctx context.Context, target models.RepoTarget) error {
	if err := r.setValue(ctx, keyOwner, target.Owner); err != nil {
		return err
	}
	if err := r.setValue(ctx, keyRepo, target.Repo); err != nil {
		return err
	}
	return r.setValue(ctx, keyBranch, target.Branch)
}

// LoadRepoTarget implements [StateRepository].
func (r *stateRepository) LoadRepoTarget(ctx context.Context) (models.RepoTarget, error) {
	var target models.RepoTarget
	var err error

	if target.Owner, err = r.optionalValue(ctx, keyOwner); err != nil {
		return models.RepoTarget{}, err
	}
	if target.Repo, err = r.optionalValue(ctx, keyRepo); err != nil {
		return models.RepoTarget{}, err
	}
	if target.Branch, err = r.optionalValue(ctx, keyBranch); err != nil {
		return models.RepoTarget{}, err
	}

	return target, nil
}

func (r *stateRepository) optionalValue(ctx context.Context, key string) (string, error) {
	value, err := r.getValue(ctx, key)
	if errors.Is(err, ErrStateNotFound) {
		return "", nil
	}
	return value, err
}
