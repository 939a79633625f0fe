package handle

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
	ctxPkg "github.com/Himan2899/SmartFileOrganizer/pkg/context"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/classify"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/queue"
)

// ClassifyFile classifies a single uploaded file with the AI classifier.
//
// The request is multipart/form-data with one "file" part. Documents whose
// extracted text is too short to classify come back with skipped=true.
func ClassifyFile(c *gin.Context) {
	l := log.Logger()

	part, err := c.FormFile("file")
	if err != nil {
		l.Warn().Err(err).Msg("no file provided for classification")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})

		return
	}

	src, err := part.Open()
	if err != nil {
		l.Error().Err(err).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

		return
	}

	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		l.Error().Err(err).Msg("failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

		return
	}

	client, err := classify.NewClient(&configs.GetConfig().Classifier)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, classify.ErrMissingAPIKey) {
			l.Warn().Msg("classification requested without an API key")
		} else {
			l.Error().Err(err).Msg("failed to build classifier client")
		}

		c.JSON(status, gin.H{"error": err.Error()})

		return
	}

	file := &classify.InputFile{
		Name:         part.Filename,
		Size:         part.Size,
		LastModified: time.Now(),
		ContentType:  part.Header.Get("Content-Type"),
		Content:      content,
	}

	outcome, err := client.Classify(c.Request.Context(), file)
	if err != nil {
		l.Error().Err(err).Str("file", file.Name).Msg("classification failed")
		publishClassifyFailed(c, file.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	if outcome == nil {
		c.JSON(http.StatusOK, types.ClassifyResponse{Skipped: true})
		return
	}

	c.JSON(http.StatusOK, types.ClassifyResponse{
		Kind:     outcome.Kind,
		Result:   outcome.Result,
		Analysis: outcome.Analysis,
	})
}

// publishClassifyFailed emits sfo.classify.failed, best effort.
func publishClassifyFailed(c *gin.Context, fileName string, cause error) {
	mqc := ctxPkg.GetMQClient(c.Request.Context())
	if mqc == nil {
		return
	}

	err := queue.PublishClassifyFailed(mqc.Publisher(), queue.ClassifyFailedPayload{
		FileName: fileName,
		Error:    cause.Error(),
	}, queue.WithProducer("organizer"))
	if err != nil {
		log.Logger().Warn().Err(err).Str("file", fileName).Msg("publish classify failed event failed")
	}
}

// TestClassifier checks connectivity to the classification backend.
func TestClassifier(c *gin.Context) {
	l := log.Logger()

	client, err := classify.NewClient(&configs.GetConfig().Classifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ConnectivityResponse{
			OK:      false,
			Message: err.Error(),
		})

		return
	}

	resp := client.TestConnectivity(c.Request.Context())
	if !resp.OK {
		l.Warn().Str("message", resp.Message).Msg("classifier connectivity test failed")
		c.JSON(http.StatusServiceUnavailable, resp)

		return
	}

	c.JSON(http.StatusOK, resp)
}
