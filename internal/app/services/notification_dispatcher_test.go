package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
)

type fakeDeliverer struct {
	mu        sync.Mutex
	online    map[string]bool
	delivered []string
	calls     int
}

func (f *fakeDeliverer) Deliver(n *models.Notification) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if !f.online[n.RecipientID] {
		return 0
	}
	f.delivered = append(f.delivered, n.ID)
	return 1
}

func (f *fakeDeliverer) ClientCount(recipientID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.online[recipientID] {
		return 1
	}
	return 0
}

func (f *fakeDeliverer) ids() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.delivered...)
}

func TestDispatchDue(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	base := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

	for _, n := range []*models.Notification{
		{ID: "n2", RecipientID: "S1", Message: "second", ScheduledTime: base.Add(time.Minute)},
		{ID: "n1", RecipientID: "S1", Message: "first", ScheduledTime: base},
		{ID: "n3", RecipientID: "S2", Message: "offline", ScheduledTime: base},
		{ID: "n4", RecipientID: "S1", Message: "later", ScheduledTime: base.Add(time.Hour)},
	} {
		_, err := svc.NotificationService.Schedule(ctx, n)
		require.NoError(t, err)
	}

	deliverer := &fakeDeliverer{online: map[string]bool{"S1": true}}
	d := NewNotificationDispatcher(svc.NotificationService, deliverer, time.Second)
	d.now = func() time.Time { return base.Add(10 * time.Minute) }

	assert.Equal(t, 2, d.DispatchDue(ctx))
	assert.Equal(t, []string{"n1", "n2"}, deliverer.ids())
	assert.Equal(t, 2, deliverer.calls, "offline recipients are skipped before delivery")

	pending := svc.NotificationService.ListPending(ctx)
	require.Len(t, pending, 2)
	assert.Equal(t, "n3", pending[0].ID)
	assert.Equal(t, "n4", pending[1].ID)

	// already sent notifications are not delivered again
	assert.Zero(t, d.DispatchDue(ctx))

	deliverer.mu.Lock()
	deliverer.online["S2"] = true
	deliverer.mu.Unlock()
	assert.Equal(t, 1, d.DispatchDue(ctx))
	assert.Equal(t, []string{"n1", "n2", "n3"}, deliverer.ids())
}

func TestDispatcherRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc, _ := newTestServices(t)
	_, err := svc.NotificationService.Schedule(ctx, &models.Notification{ID: "n1", RecipientID: "S1", Message: "hi", ScheduledTime: time.Now().Add(-time.Minute)})
	require.NoError(t, err)

	deliverer := &fakeDeliverer{online: map[string]bool{"S1": true}}
	d := NewNotificationDispatcher(svc.NotificationService, deliverer, 10*time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(svc.NotificationService.ListPending(context.Background())) == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
