package postgres

import (
	"context"
	"testing"

	"site-editor-api/config"
	"site-editor-api/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEditorQueriesRequireStart(t *testing.T) {
	ctx := context.Background()
	repo := New(ctx, zap.NewNop().Sugar(), &config.Config{})

	_, err := repo.ListEditors(ctx)
	require.ErrorIs(t, err, errNotStarted)
	_, err = repo.CreateEditor(ctx, entities.Editor{Name: "a", Email: "a@b.c"})
	require.ErrorIs(t, err, errNotStarted)
	require.ErrorIs(t, repo.DeleteEditor(ctx, "id"), errNotStarted)
	require.NoError(t, repo.OnStop(ctx))
}
