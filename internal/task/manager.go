package task

import (
	"context"
	"fmt"

	"fellowship_escrow/internal/infrastructure/logger"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Job is one periodic background task.
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute(ctx context.Context)
}

// Manager runs the registered jobs on a gocron scheduler.
type Manager struct {
	scheduler gocron.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewManager() (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{scheduler: s, ctx: ctx, cancel: cancel}, nil
}

// Register schedules job. A run that is still going when the next tick
// fires pushes that tick back instead of overlapping.
func (m *Manager) Register(job Job) error {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(func() { job.Execute(m.ctx) }),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("[task][manager] register job failed", zap.String("job", job.GetName()), zap.Error(err))
		return err
	}
	logger.Info("[task][manager] job registered", zap.String("job", job.GetName()))
	return nil
}

func (m *Manager) Start() {
	m.scheduler.Start()
	logger.Info("[task][manager] started")
}

// Stop cancels running jobs and waits for the scheduler to drain.
func (m *Manager) Stop() {
	m.cancel()
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("[task][manager] shutdown failed", zap.Error(err))
	}
	logger.Info("[task][manager] stopped")
}
