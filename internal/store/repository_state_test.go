package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

const (
	selectValueQuery = `SELECT value FROM app_state WHERE key = ?`
	upsertValueQuery = `INSERT INTO app_state (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
)

func newTestRepo(t *testing.T) (*stateRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	repo := NewStateRepository(db, logger.Nop()).(*stateRepository)
	return repo, mock
}

func expectGet(mock sqlmock.Sqlmock, key, value string) {
	mock.ExpectQuery(regexp.QuoteMeta(selectValueQuery)).
		WithArgs(key).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(value))
}

func expectGetMissing(mock sqlmock.Sqlmock, key string) {
	mock.ExpectQuery(regexp.QuoteMeta(selectValueQuery)).
		WithArgs(key).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
}

func expectSet(mock sqlmock.Sqlmock, key, value string) {
	mock.ExpectExec(regexp.QuoteMeta(upsertValueQuery)).
		WithArgs(key, value).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

// ── Document state ──────────────────────────────────────────────────────────

func TestSaveDocumentState_WritesBothKeys(t *testing.T) {
	repo, mock := newTestRepo(t)

	state := models.DocumentState{
		Documents: []models.Document{{ID: "1", Name: "New File", Content: ""}},
		ActiveID:  "1",
	}

	expectSet(mock, keyDocuments, `[{"id":"1","name":"New File","content":""}]`)
	expectSet(mock, keyActiveID, "1")

	require.NoError(t, repo.SaveDocumentState(context.Background(), state))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDocumentState_RoundTrip(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectGet(mock, keyDocuments, `[{"id":"1","name":"a"},{"id":"2","name":"b"}]`)
	expectGet(mock, keyActiveID, "2")

	state, ok, err := repo.LoadDocumentState(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, state.Documents, 2)
	assert.Equal(t, "2", state.ActiveID)
}

func TestLoadDocumentState_Missing(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectGetMissing(mock, keyDocuments)

	_, ok, err := repo.LoadDocumentState(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadDocumentState_CorruptJSONTreatedAsAbsence(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectGet(mock, keyDocuments, `{"this is": not json`)

	_, ok, err := repo.LoadDocumentState(context.Background())
	require.NoError(t, err, "corrupt state must never fail startup")
	assert.False(t, ok)
}

func TestLoadDocumentState_DanglingActiveIDDropped(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectGet(mock, keyDocuments, `[{"id":"1","name":"a"}]`)
	expectGet(mock, keyActiveID, "ghost")

	state, ok, err := repo.LoadDocumentState(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, state.ActiveID)
}

// ── Preferences ─────────────────────────────────────────────────────────────

func TestLoadPreferences_AllMissingYieldsDefaults(t *testing.T) {
	repo, mock := newTestRepo(t)

	for _, key := range []string{
		keyPrefAutoRender, keyPrefMathRender, keyPrefFullHeight,
		keyPrefInputVisible, keyPrefTheme, keyPrefDirGeneral,
		keyPrefDirInline, keyPrefDirCodeBlock,
	} {
		expectGetMissing(mock, key)
	}

	prefs, err := repo.LoadPreferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestLoadPreferences_GarbageValuesFallBack(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectGet(mock, keyPrefAutoRender, "banana")
	expectGet(mock, keyPrefMathRender, "true")
	expectGetMissing(mock, keyPrefFullHeight)
	expectGet(mock, keyPrefInputVisible, "false")
	expectGet(mock, keyPrefTheme, "dark")
	expectGet(mock, keyPrefDirGeneral, "rtl")
	expectGet(mock, keyPrefDirInline, "sideways")
	expectGetMissing(mock, keyPrefDirCodeBlock)

	prefs, err := repo.LoadPreferences(context.Background())
	require.NoError(t, err)

	assert.True(t, prefs.AutoRender, "garbage bool falls back to default")
	assert.True(t, prefs.MathRender)
	assert.False(t, prefs.FullHeight)
	assert.False(t, prefs.InputVisible)
	assert.Equal(t, "dark", prefs.Theme)
	assert.Equal(t, models.DirectionRTL, prefs.General)
	assert.Equal(t, models.DirectionAuto, prefs.InlineCode, "unknown direction falls back to auto")
	assert.Equal(t, models.DirectionAuto, prefs.CodeBlock)
}

// ── Token and repository target ─────────────────────────────────────────────

func TestSaveLoadToken(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectSet(mock, keyToken, "ghp_secret")
	require.NoError(t, repo.SaveToken(context.Background(), "ghp_secret"))

	expectGet(mock, keyToken, "ghp_secret")
	token, err := repo.LoadToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret", token)
}

func TestLoadToken_MissingIsEmpty(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectGetMissing(mock, keyToken)

	token, err := repo.LoadToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLoadLegacyContent(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectGet(mock, keyLegacyContent, "# old notes")
	content, err := repo.LoadLegacyContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "# old notes", content)

	expectGetMissing(mock, keyLegacyContent)
	content, err = repo.LoadLegacyContent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestSaveRepoTarget_WritesAllKeys(t *testing.T) {
	repo, mock := newTestRepo(t)

	expectSet(mock, keyOwner, "alice")
	expectSet(mock, keyRepo, "notes")
	expectSet(mock, keyBranch, "main")

	target := models.RepoTarget{Owner: "alice", Repo: "notes", Branch: "main"}
	require.NoError(t, repo.SaveRepoTarget(context.Background(), target))
	require.NoError(t, mock.ExpectationsWereMet())
}
