package handle

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/classify"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/service"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/rule"
)

// OrganizeFiles runs one organization batch over the uploaded files.
//
// The request is multipart/form-data: repeated "files" parts carry the
// files, an optional "rules" field carries the rule set as JSON (the stored
// rules apply when absent), and an optional "modified" field maps file names
// to their last-modified time in unix milliseconds.
func OrganizeFiles(c *gin.Context) {
	l := log.Logger()

	form, err := c.MultipartForm()
	if err != nil {
		l.Warn().Err(err).Msg("failed to parse multipart form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})

		return
	}

	parts := form.File["files"]
	if len(parts) == 0 {
		l.Warn().Msg("no files provided in organize request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})

		return
	}

	rules, err := resolveRules(c)
	if err != nil {
		l.Warn().Err(err).Msg("invalid rules")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rules", "fields": rule.Describe(err)})

		return
	}

	modified := parseModified(c.PostForm("modified"))

	files := make([]*classify.InputFile, 0, len(parts))

	for _, part := range parts {
		f, readErr := readPart(part, modified)
		if readErr != nil {
			l.Error().Err(readErr).Str("file", part.Filename).Msg("failed to read uploaded file")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

			return
		}

		files = append(files, f)
	}

	svc := service.NewOrganizeService(c.Request.Context())

	resp, err := svc.Organize(c.Request.Context(), files, rules)
	if err != nil {
		l.Error().Err(err).Msg("organize batch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// resolveRules decodes the inline rule set or falls back to the stored one.
func resolveRules(c *gin.Context) (*types.OrganizationRules, error) {
	raw := c.PostForm("rules")
	if raw == "" {
		return service.NewRulesService(c.Request.Context()).Get(c.Request.Context())
	}

	var rules types.OrganizationRules
	if err := sonic.UnmarshalString(raw, &rules); err != nil {
		return nil, err
	}

	if err := rule.ValidateStruct(&rules); err != nil {
		return nil, err
	}

	return &rules, nil
}

// parseModified decodes the name to unix-millis map, tolerating absence.
func parseModified(raw string) map[string]int64 {
	if raw == "" {
		return nil
	}

	var m map[string]int64
	if err := sonic.UnmarshalString(raw, &m); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid modified map, ignoring")
		return nil
	}

	return m
}

// readPart loads one multipart file into memory.
func readPart(part *multipart.FileHeader, modified map[string]int64) (*classify.InputFile, error) {
	src, err := part.Open()
	if err != nil {
		return nil, err
	}

	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	lastModified := time.Now()
	if millis, ok := modified[part.Filename]; ok {
		lastModified = time.UnixMilli(millis)
	}

	return &classify.InputFile{
		Name:         part.Filename,
		Size:         part.Size,
		LastModified: lastModified,
		ContentType:  part.Header.Get("Content-Type"),
		Content:      content,
	}, nil
}

// ListBatches returns stored batch snapshots, newest first.
func ListBatches(c *gin.Context) {
	l := log.Logger()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	svc := service.NewSnapshotService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		l.Error().Err(err).Msg("list batches failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBatch returns one batch with its files and stats.
func GetBatch(c *gin.Context) {
	l := log.Logger()

	batchID := c.Param("batchId")

	svc := service.NewSnapshotService(c.Request.Context())

	resp, err := svc.Get(c.Request.Context(), batchID)
	if err != nil {
		if errors.Is(err, service.ErrBatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
			return
		}

		l.Error().Err(err).Str("batch_id", batchID).Msg("get batch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteBatch removes a batch snapshot and its stored originals.
func DeleteBatch(c *gin.Context) {
	l := log.Logger()

	batchID := c.Param("batchId")

	svc := service.NewSnapshotService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), batchID); err != nil {
		if errors.Is(err, service.ErrBatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
			return
		}

		l.Error().Err(err).Str("batch_id", batchID).Msg("delete batch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"batch_id": batchID, "deleted": true})
}

// ArchiveBatch builds the batch's ZIP archive and stores it alongside the
// originals.
func ArchiveBatch(c *gin.Context) {
	l := log.Logger()

	batchID := c.Param("batchId")

	svc := service.NewSnapshotService(c.Request.Context())

	archiveKey, err := svc.Archive(c.Request.Context(), batchID)
	if err != nil {
		if errors.Is(err, service.ErrBatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
			return
		}

		l.Error().Err(err).Str("batch_id", batchID).Msg("archive batch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"batch_id": batchID, "archive_key": archiveKey})
}

// DownloadBatch streams the batch as a ZIP laid out along the organization
// paths.
func DownloadBatch(c *gin.Context) {
	l := log.Logger()

	batchID := c.Param("batchId")

	svc := service.NewSnapshotService(c.Request.Context())

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", "attachment; filename=\""+batchID+".zip\"")

	if err := svc.WriteZip(c.Request.Context(), batchID, c.Writer); err != nil {
		l.Error().Err(err).Str("batch_id", batchID).Msg("stream batch zip failed")
	}
}
