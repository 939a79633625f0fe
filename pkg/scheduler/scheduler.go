// Package scheduler wraps gocron/v2 with named maintenance jobs and
// run-state tracking for the management API.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
)

// refreshInterval is how often NextRun/LastRun are re-read from gocron.
const refreshInterval = 10 * time.Second

// JobStatus is the lifecycle state of a maintenance job.
type JobStatus string

const (
	StatusScheduled JobStatus = "scheduled"
	StatusRunning   JobStatus = "running"
	StatusError     JobStatus = "error"
)

// JobInfo is the monitoring view of one registered job.
type JobInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CronExpr    string    `json:"cron_expr"`
	NextRun     time.Time `json:"next_run"`
	LastRun     time.Time `json:"last_run"`
	LastSuccess time.Time `json:"last_success,omitempty"`
	Status      JobStatus `json:"status"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Scheduler owns the gocron instance plus the name and id indexes the
// management handlers query.
type Scheduler struct {
	inner  gocron.Scheduler
	logger *zerolog.Logger

	mu     sync.RWMutex
	byName map[string]gocron.Job
	names  map[uuid.UUID]string
	infos  map[string]*JobInfo

	cancelRefresh context.CancelFunc
}

// NewScheduler builds a Scheduler and starts its background refresh loop.
func NewScheduler() (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		inner:         inner,
		logger:        log.Logger(),
		byName:        make(map[string]gocron.Job),
		names:         make(map[uuid.UUID]string),
		infos:         make(map[string]*JobInfo),
		cancelRefresh: cancel,
	}

	go s.refreshLoop(ctx)

	return s, nil
}

// AddCron registers a job under a unique name with a cron expression.
// The job body runs with the given base context and is recovered on
// panic so one broken job cannot take the scheduler down.
func (s *Scheduler) AddCron(name string, cronExpr string, job func(ctx context.Context), ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}

	run := func(ctx context.Context) {
		s.setStatus(name, StatusRunning, "")

		defer func() {
			if r := recover(); r != nil {
				s.setStatus(name, StatusError, fmt.Sprintf("panic: %v", r))
				s.logger.Error().Str("job", name).Interface("panic", r).Msg("Job panicked")
			}
		}()

		job(ctx)

		s.markSuccess(name)
	}

	j, err := s.inner.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(run, ctx),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}

	now := time.Now()
	nextRun, _ := j.NextRun()

	s.byName[name] = j
	s.names[j.ID()] = name
	s.infos[name] = &JobInfo{
		ID:        j.ID().String(),
		Name:      name,
		CronExpr:  cronExpr,
		NextRun:   nextRun,
		Status:    StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.logger.Info().Str("job", name).Str("cron", cronExpr).Msg("Registered cron job")

	return nil
}

// Start begins executing registered jobs.
func (s *Scheduler) Start() {
	s.logger.Info().Msg("Starting scheduler")
	s.inner.Start()
}

// Stop halts the refresh loop and shuts gocron down.
func (s *Scheduler) Stop() error {
	s.logger.Info().Msg("Stopping scheduler")
	s.cancelRefresh()

	return s.inner.Shutdown()
}

// StopJobs pauses execution of all jobs without unregistering them.
func (s *Scheduler) StopJobs() error {
	return s.inner.StopJobs()
}

// GetJobByName looks a job up for manual triggering.
func (s *Scheduler) GetJobByName(name string) (gocron.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.byName[name]
	if !exists {
		return nil, fmt.Errorf("job %q not registered", name)
	}

	return job, nil
}

// RemoveJob unregisters a job by its gocron id.
func (s *Scheduler) RemoveJob(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name, exists := s.names[id]; exists {
		delete(s.byName, name)
		delete(s.infos, name)
		delete(s.names, id)
	}

	return s.inner.RemoveJob(id)
}

// JobsWaitingInQueue reports runs queued behind the concurrency limit.
func (s *Scheduler) JobsWaitingInQueue() int {
	return s.inner.JobsWaitingInQueue()
}

// GetJobInfos snapshots the monitoring view of every job.
func (s *Scheduler) GetJobInfos() []JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]JobInfo, 0, len(s.infos))
	for _, info := range s.infos {
		infos = append(infos, *info)
	}

	return infos
}

func (s *Scheduler) setStatus(name string, status JobStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if info, exists := s.infos[name]; exists {
		info.Status = status
		info.Error = errMsg
		info.UpdatedAt = time.Now()
	}
}

func (s *Scheduler) markSuccess(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if info, exists := s.infos[name]; exists {
		now := time.Now()
		info.Status = StatusScheduled
		info.Error = ""
		info.LastRun = now
		info.LastSuccess = now
		info.UpdatedAt = now
	}
}

func (s *Scheduler) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshRunTimes()
		}
	}
}

// refreshRunTimes pulls NextRun/LastRun from gocron so the monitoring
// view stays close to reality between job runs.
func (s *Scheduler) refreshRunTimes() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, job := range s.byName {
		info := s.infos[name]
		if info == nil {
			continue
		}

		if nextRun, err := job.NextRun(); err == nil {
			info.NextRun = nextRun
		}

		if lastRun, err := job.LastRun(); err == nil && lastRun.After(info.LastRun) {
			info.LastRun = lastRun
		}

		info.UpdatedAt = time.Now()
	}
}
