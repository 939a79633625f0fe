package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/model"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/queue"
)

// WriteZip streams the batch's stored originals as a ZIP archive, laying the
// entries out along their organization paths. Entries whose objects cannot be
// read are skipped so one bad object does not abort the archive.
func (s *SnapshotService) WriteZip(ctx context.Context, batchID string, w io.Writer) error {
	if s.s3Client == nil {
		return fmt.Errorf("s3 not initialized")
	}

	dbx, err := s.db(ctx)
	if err != nil {
		return err
	}

	_, files, err := loadBatch(dbx, batchID)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	for i := range files {
		f := &files[i]
		if f.ObjectKey == "" {
			continue
		}

		obj, err := s.s3Client.GetObject(ctx, s.s3Client.Bucket(), f.ObjectKey,
			minio.GetObjectOptions{})
		if err != nil {
			log.Logger().Warn().Err(err).Str("object", f.ObjectKey).Msg("skip archive entry")
			continue
		}

		name := f.TargetPath
		if name == "" {
			name = f.FileName
		}

		fh := &zip.FileHeader{Name: name, Method: zip.Deflate}
		if !f.LastModified.IsZero() {
			fh.Modified = f.LastModified
		}

		ew, err := zw.CreateHeader(fh)
		if err != nil {
			_ = obj.Close()
			continue
		}

		_, _ = io.Copy(ew, obj)
		_ = obj.Close()
	}

	return zw.Close()
}

// Archive builds the batch's ZIP and stores it under archives/<batchID>.zip,
// stamping the batch as archived.
func (s *SnapshotService) Archive(ctx context.Context, batchID string) (string, error) {
	var buf bytes.Buffer

	if err := s.WriteZip(ctx, batchID, &buf); err != nil {
		return "", err
	}

	archiveKey := fmt.Sprintf("archives/%s.zip", batchID)

	_, err := s.s3Client.PutObject(ctx, s.s3Client.Bucket(), archiveKey,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "application/zip"})
	if err != nil {
		return "", fmt.Errorf("store archive: %w", err)
	}

	dbx, err := s.db(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()

	err = dbx.Model(&model.OrganizeBatch{}).
		Where("batch_id = ?", batchID).
		Update("archived_at", &now).Error
	if err != nil {
		return "", fmt.Errorf("stamp archive: %w", err)
	}

	if s.mqClient != nil {
		pubErr := queue.PublishBatchArchived(s.mqClient.Publisher(), queue.BatchArchivedPayload{
			Batch:       queue.BatchRef{BatchID: batchID},
			ArchiveKey:  archiveKey,
			ArchiveSize: int64(buf.Len()),
		}, queue.WithProducer("organizer"))
		if pubErr != nil {
			log.Logger().Warn().Err(pubErr).Str("batch_id", batchID).Msg("publish batch archived failed")
		}
	}

	log.Logger().Info().
		Str("batch_id", batchID).
		Str("archive", archiveKey).
		Int("size", buf.Len()).
		Msg("batch archived")

	return archiveKey, nil
}
