package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentState_Get(t *testing.T) {
	state := DocumentState{
		Documents: []Document{
			{ID: "1", Name: "a"},
			{ID: "2", Name: "b"},
		},
	}

	doc, ok := state.Get("2")
	require.True(t, ok)
	assert.Equal(t, "b", doc.Name)

	_, ok = state.Get("3")
	assert.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, DirectionLTR, ParseDirection("ltr"))
	assert.Equal(t, DirectionRTL, ParseDirection("rtl"))
	assert.Equal(t, DirectionAuto, ParseDirection("auto"))
	assert.Equal(t, DirectionAuto, ParseDirection(""))
	assert.Equal(t, DirectionAuto, ParseDirection("sideways"))
}

func TestSyncResult_Total(t *testing.T) {
	result := SyncResult{
		Succeeded: []SyncedFile{{ID: "1"}, {ID: "2"}},
		Failed:    []FailedFile{{ID: "3"}},
		Skipped:   []SkippedFile{{ID: "4"}},
	}
	assert.Equal(t, 4, result.Total())

	assert.Zero(t, SyncResult{}.Total())
}

func TestRepoTarget_IsConfigured(t *testing.T) {
	assert.False(t, RepoTarget{}.IsConfigured())
	assert.False(t, RepoTarget{Owner: "alice"}.IsConfigured())
	assert.True(t, RepoTarget{Owner: "alice", Repo: "notes"}.IsConfigured())
}
