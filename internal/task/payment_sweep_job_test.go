package task

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fellowship_escrow/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	mu         sync.Mutex
	stale      []entities.Proposal
	listErr    error
	failFor    map[string]bool
	expired    []string
	locksFreed int
}

func (f *fakeSweeper) ExpiredSelections(context.Context) ([]entities.Proposal, error) {
	return f.stale, f.listErr
}

func (f *fakeSweeper) ExpireSelection(_ context.Context, p entities.Proposal) error {
	if f.failFor[p.ID] {
		return errors.New("store down")
	}
	f.mu.Lock()
	f.expired = append(f.expired, p.ID)
	f.mu.Unlock()
	return nil
}

func (f *fakeSweeper) ReleaseStaleLocks(context.Context) (int, error) {
	return f.locksFreed, nil
}

func TestPaymentSweepJob_Run(t *testing.T) {
	sweeper := &fakeSweeper{
		stale: []entities.Proposal{
			{ID: "p-1", ChallengeID: "ch-1"},
			{ID: "p-2", ChallengeID: "ch-2"},
			{ID: "p-3", ChallengeID: "ch-3"},
		},
		failFor:    map[string]bool{"p-2": true},
		locksFreed: 1,
	}
	job, err := NewPaymentSweepJob(sweeper, time.Minute, 2)
	require.NoError(t, err)
	defer job.Close()

	res := job.Run(context.Background())
	assert.Equal(t, SweepResult{Expired: 2, Failed: 1, LocksReleased: 1}, res)
	assert.ElementsMatch(t, []string{"p-1", "p-3"}, sweeper.expired)
}

func TestPaymentSweepJob_ListFailureSkipsRun(t *testing.T) {
	sweeper := &fakeSweeper{listErr: errors.New("timeout"), locksFreed: 3}
	job, err := NewPaymentSweepJob(sweeper, time.Minute, 1)
	require.NoError(t, err)
	defer job.Close()

	assert.Equal(t, SweepResult{}, job.Run(context.Background()))
	assert.Equal(t, "payment_pending_sweep", job.GetName())
}
