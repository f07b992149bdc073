package scores_test

import (
	"path/filepath"
	"testing"

	"github.com/plus3/pinchspell/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshStoreReadsZero(t *testing.T) {
	store, err := scores.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	score, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestSetThenGet(t *testing.T) {
	store, err := scores.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SetHighScore(120))
	score, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 120, score)

	// A later write replaces the value outright; the caller decides what
	// counts as a high score.
	require.NoError(t, store.SetHighScore(45))
	score, err = store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 45, score)
}

func TestScoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := scores.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SetHighScore(310))
	require.NoError(t, store.Close())

	reopened, err := scores.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	score, err := reopened.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 310, score)
}
