package service

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/oklog/ulid"
	"gorm.io/gorm"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
	ctxPkg "github.com/Himan2899/SmartFileOrganizer/pkg/context"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/classify"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/model"
	dbc "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/db"
	mqc "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/mq"
	s3c "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/s3"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/metrics"
	"github.com/Himan2899/SmartFileOrganizer/pkg/queue"
)

// OrganizeService runs the organization engine and persists the resulting
// whole-batch snapshot.
type OrganizeService struct {
	s3Client *s3c.Client
	dbClient *dbc.Client
	mqClient *mqc.Client
}

// NewOrganizeService resolves the storage backends from the context.
func NewOrganizeService(c context.Context) *OrganizeService {
	return &OrganizeService{
		s3Client: ctxPkg.GetS3Client(c),
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// newBatchID returns a sortable unique batch identifier.
func newBatchID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(crand.Reader, 0)).String()
}

// objectKeyFor places one stored original under the batch prefix. The
// positional index keeps same-named files, which the identity key
// tolerates, from overwriting each other in the bucket.
func objectKeyFor(batchID string, index int, name string) string {
	return fmt.Sprintf("batches/%s/%04d_%s", batchID, index, name)
}

// Organize runs one end-to-end batch: classification fan-out up front, then a
// single-threaded per-file pass over hashing, duplicate detection and path
// resolution, preserving input order. The originals are stored under
// batches/<batchID>/<index>_<name> and the snapshot is persisted as a new
// immutable batch.
func (s *OrganizeService) Organize(ctx context.Context, files []*classify.InputFile,
	rules *types.OrganizationRules) (*types.OrganizeResponse, error) {
	l := log.Logger().With().Str("component", "organize").Logger()

	batchID := newBatchID()

	// the whole batch's classification runs once, before the per-file loop
	outcomes := s.classifyBatch(ctx, files, rules)

	seen := make(map[string]struct{})
	items := make([]types.OrganizedFileItem, 0, len(files))

	var totalSize int64

	duplicates := 0

	for _, f := range files {
		if IsIgnored(f.Name, rules.IgnoredTypes) {
			l.Debug().Str("file", f.Name).Msg("skipping ignored type")
			continue
		}

		hash := ""
		isDuplicate := false

		if rules.DetectDuplicates {
			hash = HashBytes(f.Content)

			if _, isDuplicate = seen[hash]; !isDuplicate {
				seen[hash] = struct{}{}
			} else {
				duplicates++

				metrics.DuplicatesDetected.Inc()
			}
		}

		outcome := outcomes[f.Key()]
		path := ResolvePath(f, rules, outcome)

		item := types.OrganizedFileItem{
			FileName:         f.Name,
			Size:             f.Size,
			ContentType:      f.ContentType,
			OrganizationPath: path,
			Hash:             hash,
			IsDuplicate:      isDuplicate,
			FileType:         GetFileType(f.Name),
			SizeCategory:     GetSizeCategory(f.Size),
			AI:               outcomeToAI(outcome),
			Metadata:         types.FileMeta{LastModified: f.LastModified},
		}

		if s.s3Client != nil {
			objectKey := objectKeyFor(batchID, len(items), f.Name)

			if _, err := s.s3Client.PutObject(ctx, s.s3Client.Bucket(), objectKey,
				bytes.NewReader(f.Content), f.Size,
				minio.PutObjectOptions{ContentType: f.ContentType}); err != nil {
				return nil, fmt.Errorf("store %s: %w", f.Name, err)
			}

			item.ObjectKey = objectKey
		}

		metrics.FilesOrganized.Inc()

		totalSize += f.Size

		items = append(items, item)
	}

	stats := ComputeStats(items)

	if err := s.persistSnapshot(ctx, batchID, rules, items, duplicates, totalSize); err != nil {
		return nil, err
	}

	s.publishOrganized(batchID, rules, len(items), duplicates, totalSize)

	if rules.AIClassification && len(outcomes) > 0 {
		s.publishClassified(batchID, len(files), outcomes, stats.AverageConfidence)
	}

	l.Info().
		Str("batch_id", batchID).
		Int("files", len(items)).
		Int("duplicates", duplicates).
		Int64("total_size", totalSize).
		Msg("batch organized")

	return &types.OrganizeResponse{
		BatchID: batchID,
		Files:   items,
		Stats:   stats,
	}, nil
}

// classifyBatch fans the batch out to the classifier when AI classification
// is requested. Configuration and whole-batch failures degrade to an empty
// map: files fall through to non-AI path resolution instead of aborting.
func (s *OrganizeService) classifyBatch(ctx context.Context, files []*classify.InputFile,
	rules *types.OrganizationRules) map[string]*classify.Outcome {
	if !rules.AIClassification {
		return nil
	}

	cfg := configs.GetConfig().Classifier
	if !cfg.Enabled {
		log.Logger().Warn().Msg("AI classification requested but classifier disabled")
		return nil
	}

	client, err := classify.NewClient(&cfg)
	if err != nil {
		log.Logger().Warn().Err(err).Msg("classifier unavailable, organizing without AI")
		s.publishDegraded(cfg.Model, err)

		return nil
	}

	bc := classify.NewBatchClassifier(client, cfg.GroupSize, cfg.GetGroupDelay())

	outcomes, err := bc.ClassifyBatch(ctx, files)
	if err != nil {
		log.Logger().Warn().Err(err).Msg("batch classification interrupted, using partial results")
	}

	return outcomes
}

// outcomeToAI flattens a tagged outcome into the snapshot shape.
func outcomeToAI(outcome *classify.Outcome) *types.AIClassification {
	cls := outcome.Classification()
	if cls == nil {
		return nil
	}

	ai := &types.AIClassification{
		Category:    cls.Category,
		Confidence:  cls.Confidence,
		Subcategory: cls.Subcategory,
		Reasoning:   cls.Reasoning,
	}

	if outcome.Kind == types.ClassifyKindDocument && outcome.Analysis != nil {
		ai.ExtractedText = outcome.Analysis.ExtractedText
		ai.Metadata = outcome.Analysis.Metadata
	}

	return ai
}

// persistSnapshot writes the batch row and its file rows in one transaction.
func (s *OrganizeService) persistSnapshot(ctx context.Context, batchID string,
	rules *types.OrganizationRules, items []types.OrganizedFileItem,
	duplicates int, totalSize int64) error {
	if s.dbClient == nil {
		return fmt.Errorf("db not initialized")
	}

	batch := &model.OrganizeBatch{
		BatchID:        batchID,
		FileCount:      len(items),
		DuplicateCount: duplicates,
		TotalSize:      totalSize,
	}

	if err := batch.SetOrganizedBy(organizeAxes(rules)); err != nil {
		return err
	}

	records := make([]model.OrganizedFile, 0, len(items))

	for i := range items {
		it := &items[i]
		rec := model.OrganizedFile{
			BatchID:      batchID,
			FileName:     it.FileName,
			Size:         it.Size,
			Hash:         it.Hash,
			Duplicate:    it.IsDuplicate,
			ContentType:  it.ContentType,
			FileType:     it.FileType,
			TargetPath:   it.OrganizationPath,
			ObjectKey:    it.ObjectKey,
			LastModified: it.Metadata.LastModified,
		}

		if s.s3Client != nil {
			rec.Bucket = s.s3Client.Bucket()
		}

		if it.AI != nil {
			rec.Category = it.AI.Category
			rec.Confidence = it.AI.Confidence
			rec.SuggestedFolder = firstFolder(it.OrganizationPath)
			rec.Reasoning = it.AI.Reasoning
		}

		records = append(records, rec)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	return dbx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batch).Error; err != nil {
			return fmt.Errorf("persist batch: %w", err)
		}

		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return fmt.Errorf("persist files: %w", err)
			}
		}

		return nil
	})
}

// organizeAxes lists the structural axes enabled in the rules.
func organizeAxes(rules *types.OrganizationRules) []string {
	var axes []string

	if rules.OrganizeByDate {
		axes = append(axes, "date")
	}

	if rules.OrganizeByType {
		axes = append(axes, "type")
	}

	if rules.OrganizeBySize {
		axes = append(axes, "size")
	}

	return axes
}

// firstFolder returns the folder prefix of a path, empty for bare names.
func firstFolder(path string) string {
	if idx := strings.LastIndex(path, "/"); idx > 0 {
		return path[:idx]
	}

	return ""
}

// publishClassified emits the batch-classified event. Failed counts files
// that produced no outcome, including documents skipped for lack of text.
func (s *OrganizeService) publishClassified(batchID string, total int,
	outcomes map[string]*classify.Outcome, avgConfidence float64) {
	if s.mqClient == nil {
		return
	}

	err := queue.PublishBatchClassified(s.mqClient.Publisher(), queue.BatchClassifiedPayload{
		Batch:         queue.BatchRef{BatchID: batchID},
		Classified:    len(outcomes),
		Failed:        total - len(outcomes),
		AvgConfidence: avgConfidence,
	}, queue.WithProducer("organizer"))
	if err != nil {
		log.Logger().Warn().Err(err).Str("batch_id", batchID).Msg("publish batch classified failed")
	}
}

// publishDegraded emits sfo.classify.degraded when organizing proceeds
// without AI.
func (s *OrganizeService) publishDegraded(model string, cause error) {
	if s.mqClient == nil {
		return
	}

	err := queue.PublishClassifyDegraded(s.mqClient.Publisher(), queue.ClassifyDegradedPayload{
		Model: model,
		Error: cause.Error(),
	}, queue.WithProducer("organizer"))
	if err != nil {
		log.Logger().Warn().Err(err).Msg("publish classify degraded failed")
	}
}

// publishOrganized emits the batch-organized event, best effort.
func (s *OrganizeService) publishOrganized(batchID string, rules *types.OrganizationRules,
	fileCount, duplicates int, totalSize int64) {
	if s.mqClient == nil {
		return
	}

	err := queue.PublishBatchOrganized(s.mqClient.Publisher(), queue.BatchOrganizedPayload{
		Batch:       queue.BatchRef{BatchID: batchID},
		FileCount:   fileCount,
		Duplicates:  duplicates,
		TotalSize:   totalSize,
		OrganizedBy: organizeAxes(rules),
	}, queue.WithProducer("organizer"))
	if err != nil {
		log.Logger().Warn().Err(err).Str("batch_id", batchID).Msg("publish batch organized failed")
	}
}
