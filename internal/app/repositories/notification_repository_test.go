package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func notificationIDs(ns []*models.Notification) []string {
	ids := make([]string, 0, len(ns))
	for _, n := range ns {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestNotificationAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(nil)

	added, err := repo.Add(ctx, &models.Notification{ID: "n1", RecipientID: "S1", Message: "first"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(ctx, &models.Notification{ID: "n1", RecipientID: "S2", Message: "second"})
	require.NoError(t, err)
	assert.False(t, added)

	got, ok := repo.GetByID(ctx, "n1")
	require.True(t, ok)
	assert.Equal(t, "first", got.Message)
	assert.Empty(t, repo.ListForRecipient(ctx, "S2"))

	_, err = repo.Add(ctx, &models.Notification{RecipientID: "S1"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNotificationPendingAndMarkSent(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(nil)
	base := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

	for _, n := range []*models.Notification{
		{ID: "b", RecipientID: "S1", ScheduledTime: base},
		{ID: "a", RecipientID: "S1", ScheduledTime: base},
		{ID: "c", RecipientID: "S2", ScheduledTime: base.Add(-time.Hour)},
	} {
		_, err := repo.Add(ctx, n)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"c", "a", "b"}, notificationIDs(repo.ListPending(ctx)))
	assert.Equal(t, []string{"a", "b"}, notificationIDs(repo.ListForRecipient(ctx, "S1")))

	require.NoError(t, repo.MarkSent(ctx, "a"))
	assert.Equal(t, []string{"c", "b"}, notificationIDs(repo.ListPending(ctx)))
	assert.Len(t, repo.ListForRecipient(ctx, "S1"), 2)

	assert.ErrorIs(t, repo.MarkSent(ctx, "zzz"), ErrNotificationNotFound)
}

func TestNotificationDeletePrunesRecipient(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(nil)
	_, err := repo.Add(ctx, &models.Notification{ID: "n1", RecipientID: "S1"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "n1"))
	assert.False(t, repo.byRecipient.HasKey("S1"))
	assert.Empty(t, repo.ListForRecipient(ctx, "S1"))

	err = repo.Delete(ctx, "n1")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
