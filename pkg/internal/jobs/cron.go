// Package jobs registers the business cron jobs on top of the scheduler.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
	ctxPkg "github.com/Himan2899/SmartFileOrganizer/pkg/context"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/service"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/queue"
	"github.com/Himan2899/SmartFileOrganizer/pkg/scheduler"
)

// RegisterCronJobs wires the maintenance jobs:
//   - snapshot purge on the configured cron (organizer.purge_cron), removing
//     batch snapshots older than the retention window
//   - weekly sweep of exported zip archives left in the bucket
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// inject the storage manager so services resolve their backends
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	purgeCron := configs.GetConfig().Organizer.PurgeCron
	if purgeCron == "" {
		purgeCron = CronSnapshotPurgeDefault
	}

	_ = sched.AddCron(JobSnapshotPurge, purgeCron, func(ctx context.Context) {
		runSnapshotPurge(ctx)
	}, baseCtx)

	_ = sched.AddCron(JobArchiveSweep, CronArchiveSweep, func(ctx context.Context) {
		runArchiveSweep(ctx, mgr)
	}, baseCtx)

	return nil
}

// runSnapshotPurge removes batch snapshots past the retention window.
func runSnapshotPurge(ctx context.Context) {
	l := log.Logger().With().Str("job", JobSnapshotPurge).Logger()

	retention := configs.GetConfig().Organizer.SnapshotRetentionDays
	if retention <= 0 {
		l.Debug().Msg("snapshot retention disabled, skipping purge")
		return
	}

	before := time.Now().AddDate(0, 0, -retention)

	svc := service.NewSnapshotService(ctx)

	n, err := svc.PurgeOlderThan(ctx, before)
	if err != nil {
		l.Error().Err(err).Time("before", before).Msg("snapshot purge failed")
		return
	}

	if n > 0 {
		l.Info().Int("purged", n).Time("before", before).Msg("purged expired snapshots")

		if mqc := ctxPkg.GetMQClient(ctx); mqc != nil {
			pubErr := queue.PublishSnapshotPurged(mqc.Publisher(), queue.SnapshotPurgedPayload{
				Purged:        n,
				RetentionDays: retention,
			}, queue.WithProducer("organizer"))
			if pubErr != nil {
				l.Warn().Err(pubErr).Msg("publish snapshot purged failed")
			}
		}
	}
}

// runArchiveSweep deletes exported zip archives older than archiveMaxAgeDays.
func runArchiveSweep(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobArchiveSweep).Logger()

	s3cli := mgr.GetS3Client()
	if s3cli == nil {
		l.Error().Msg("s3 client not initialized")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -archiveMaxAgeDays)
	removed := 0

	for obj := range s3cli.ListObjects(ctx, s3cli.Bucket(), minio.ListObjectsOptions{
		Prefix:    "archives/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			l.Error().Err(obj.Err).Msg("list archives failed")
			return
		}

		if obj.LastModified.After(cutoff) {
			continue
		}

		if err := s3cli.RemoveObject(ctx, s3cli.Bucket(), obj.Key, minio.RemoveObjectOptions{}); err != nil {
			l.Error().Err(err).Str("key", obj.Key).Msg("remove archive failed")
			continue
		}

		removed++
	}

	if removed > 0 {
		l.Info().Int("removed", removed).Time("cutoff", cutoff).Msg("swept old archives")
	}
}
