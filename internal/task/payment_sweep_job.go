package task

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/infrastructure/logger"

	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// SelectionSweeper is the part of the escrow coordinator the sweep drives.
type SelectionSweeper interface {
	ExpiredSelections(ctx context.Context) ([]entities.Proposal, error)
	ExpireSelection(ctx context.Context, p entities.Proposal) error
	ReleaseStaleLocks(ctx context.Context) (int, error)
}

// SweepResult summarizes one run.
type SweepResult struct {
	Expired       int
	Failed        int
	LocksReleased int
}

// PaymentSweepJob reverts payment_pending proposals whose checkout was
// abandoned without a callback, then clears orphaned selection locks.
// Different challenges are reverted in parallel on an ants pool.
type PaymentSweepJob struct {
	sweeper  SelectionSweeper
	interval time.Duration
	timeout  time.Duration
	pool     *ants.Pool
}

func NewPaymentSweepJob(sweeper SelectionSweeper, interval time.Duration, workers int) (*PaymentSweepJob, error) {
	if workers <= 0 {
		workers = 8
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	timeout := interval
	if timeout <= 0 || timeout > time.Minute {
		timeout = time.Minute
	}
	return &PaymentSweepJob{sweeper: sweeper, interval: interval, timeout: timeout, pool: pool}, nil
}

func (j *PaymentSweepJob) GetName() string {
	return "payment_pending_sweep"
}

func (j *PaymentSweepJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(j.interval)
}

func (j *PaymentSweepJob) Execute(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	res := j.Run(ctx)
	if res.Expired > 0 || res.Failed > 0 || res.LocksReleased > 0 {
		logger.Info("[task][sweep] completed",
			zap.Int("expired", res.Expired),
			zap.Int("failed", res.Failed),
			zap.Int("locks_released", res.LocksReleased),
		)
	}
}

// Run performs one sweep and waits for every submitted revert.
func (j *PaymentSweepJob) Run(ctx context.Context) SweepResult {
	var res SweepResult

	stale, err := j.sweeper.ExpiredSelections(ctx)
	if err != nil {
		logger.Error("[task][sweep] list stale selections failed", zap.Error(err))
		return res
	}

	var (
		wg      sync.WaitGroup
		expired atomic.Int64
		failed  atomic.Int64
	)
	for _, p := range stale {
		p := p
		wg.Add(1)
		err := j.pool.Submit(func() {
			defer wg.Done()
			if err := j.sweeper.ExpireSelection(ctx, p); err != nil {
				failed.Add(1)
				logger.Warn("[task][sweep] expire selection failed",
					zap.String("challenge_id", p.ChallengeID),
					zap.String("proposal_id", p.ID),
					zap.Error(err),
				)
				return
			}
			expired.Add(1)
		})
		if err != nil {
			wg.Done()
			failed.Add(1)
			logger.Error("[task][sweep] submit to pool failed", zap.String("proposal_id", p.ID), zap.Error(err))
		}
	}
	wg.Wait()
	res.Expired = int(expired.Load())
	res.Failed = int(failed.Load())

	n, err := j.sweeper.ReleaseStaleLocks(ctx)
	if err != nil {
		logger.Error("[task][sweep] release stale locks failed", zap.Error(err))
	}
	res.LocksReleased = n
	return res
}

// Close releases the worker pool.
func (j *PaymentSweepJob) Close() {
	j.pool.Release()
}
