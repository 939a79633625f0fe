package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	ctxPkg "github.com/Himan2899/SmartFileOrganizer/pkg/context"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/model"
	dbc "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/db"
	mqc "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/mq"
	s3c "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/s3"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/queue"
)

// ErrBatchNotFound is returned when a batch ID has no snapshot.
var ErrBatchNotFound = errors.New("batch not found")

// SnapshotService reads and prunes persisted organization batches.
type SnapshotService struct {
	s3Client *s3c.Client
	dbClient *dbc.Client
	mqClient *mqc.Client
}

func NewSnapshotService(c context.Context) *SnapshotService {
	return &SnapshotService{
		s3Client: ctxPkg.GetS3Client(c),
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

func (s *SnapshotService) db(ctx context.Context) (*gorm.DB, error) {
	if s.dbClient == nil {
		return nil, fmt.Errorf("db not initialized")
	}

	return s.dbClient.GetDB().WithContext(ctx), nil
}

// List returns batch summaries, newest first.
func (s *SnapshotService) List(ctx context.Context, limit, offset int) (*types.ListBatchesResponse, error) {
	dbx, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := dbx.Model(&model.OrganizeBatch{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count batches: %w", err)
	}

	var batches []model.OrganizeBatch

	err = dbx.Order("created_at DESC").Limit(limit).Offset(offset).Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}

	summaries := make([]types.BatchSummary, 0, len(batches))
	for i := range batches {
		summaries = append(summaries, batchSummary(&batches[i]))
	}

	return &types.ListBatchesResponse{
		Batches: summaries,
		Total:   int(total),
	}, nil
}

// Get returns one batch with its file rows and recomputed stats.
func (s *SnapshotService) Get(ctx context.Context, batchID string) (*types.BatchDetailResponse, error) {
	dbx, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	batch, files, err := loadBatch(dbx, batchID)
	if err != nil {
		return nil, err
	}

	items := make([]types.OrganizedFileItem, 0, len(files))
	for i := range files {
		items = append(items, fileItem(&files[i]))
	}

	return &types.BatchDetailResponse{
		Batch: batchSummary(batch),
		Files: items,
		Stats: ComputeStats(items),
	}, nil
}

// Delete removes a batch snapshot together with its stored originals.
func (s *SnapshotService) Delete(ctx context.Context, batchID string) error {
	dbx, err := s.db(ctx)
	if err != nil {
		return err
	}

	batch, files, err := loadBatch(dbx, batchID)
	if err != nil {
		return err
	}

	deleted := s.removeObjects(ctx, files)

	err = dbx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_id = ?", batchID).Delete(&model.OrganizedFile{}).Error; err != nil {
			return fmt.Errorf("delete files: %w", err)
		}

		if err := tx.Delete(batch).Error; err != nil {
			return fmt.Errorf("delete batch: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if s.mqClient != nil {
		pubErr := queue.PublishBatchDeleted(s.mqClient.Publisher(), queue.BatchDeletedPayload{
			Batch:          queue.BatchRef{BatchID: batchID, Name: batch.Name},
			DeletedObjects: deleted,
		}, queue.WithProducer("organizer"))
		if pubErr != nil {
			log.Logger().Warn().Err(pubErr).Str("batch_id", batchID).Msg("publish batch deleted failed")
		}
	}

	log.Logger().Info().
		Str("batch_id", batchID).
		Int("objects", deleted).
		Msg("batch deleted")

	return nil
}

// PurgeOlderThan drops every batch created before the cutoff and returns the
// number purged. Object removal is best effort per batch.
func (s *SnapshotService) PurgeOlderThan(ctx context.Context, before time.Time) (int, error) {
	dbx, err := s.db(ctx)
	if err != nil {
		return 0, err
	}

	var batches []model.OrganizeBatch

	err = dbx.Where("created_at < ?", before).Find(&batches).Error
	if err != nil {
		return 0, fmt.Errorf("find expired batches: %w", err)
	}

	purged := 0

	for i := range batches {
		if err := s.Delete(ctx, batches[i].BatchID); err != nil {
			log.Logger().Warn().Err(err).
				Str("batch_id", batches[i].BatchID).
				Msg("purge batch failed")

			continue
		}

		purged++
	}

	return purged, nil
}

// removeObjects deletes the batch's stored originals, counting successes.
func (s *SnapshotService) removeObjects(ctx context.Context, files []model.OrganizedFile) int {
	if s.s3Client == nil {
		return 0
	}

	deleted := 0

	for i := range files {
		f := &files[i]
		if f.ObjectKey == "" {
			continue
		}

		err := s.s3Client.RemoveObject(ctx, s.s3Client.Bucket(), f.ObjectKey,
			minio.RemoveObjectOptions{})
		if err != nil {
			log.Logger().Warn().Err(err).Str("object", f.ObjectKey).Msg("remove object failed")
			continue
		}

		deleted++
	}

	return deleted
}

func loadBatch(dbx *gorm.DB, batchID string) (*model.OrganizeBatch, []model.OrganizedFile, error) {
	var batch model.OrganizeBatch

	err := dbx.Where("batch_id = ?", batchID).First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBatchNotFound
		}

		return nil, nil, fmt.Errorf("load batch: %w", err)
	}

	var files []model.OrganizedFile

	err = dbx.Where("batch_id = ?", batchID).Order("id").Find(&files).Error
	if err != nil {
		return nil, nil, fmt.Errorf("load batch files: %w", err)
	}

	return &batch, files, nil
}

func batchSummary(b *model.OrganizeBatch) types.BatchSummary {
	axes, err := b.OrganizedBy()
	if err != nil {
		log.Logger().Warn().Err(err).Str("batch_id", b.BatchID).Msg("decode organized_by failed")
	}

	return types.BatchSummary{
		BatchID:        b.BatchID,
		Name:           b.Name,
		FileCount:      b.FileCount,
		DuplicateCount: b.DuplicateCount,
		TotalSize:      b.TotalSize,
		OrganizedBy:    axes,
		CreatedAt:      b.CreatedAt,
	}
}

func fileItem(f *model.OrganizedFile) types.OrganizedFileItem {
	item := types.OrganizedFileItem{
		FileName:         f.FileName,
		Size:             f.Size,
		ContentType:      f.ContentType,
		OrganizationPath: f.TargetPath,
		Hash:             f.Hash,
		IsDuplicate:      f.Duplicate,
		FileType:         f.FileType,
		SizeCategory:     GetSizeCategory(f.Size),
		ObjectKey:        f.ObjectKey,
		Metadata:         types.FileMeta{LastModified: f.LastModified},
	}

	if f.Category != "" {
		item.AI = &types.AIClassification{
			Category:   f.Category,
			Confidence: f.Confidence,
			Reasoning:  f.Reasoning,
		}
	}

	return item
}
