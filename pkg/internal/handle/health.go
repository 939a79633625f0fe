package handle

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/Himan2899/SmartFileOrganizer/pkg/context"
)

const healthTimeout = 2 * time.Second

// reportHealth runs one component probe under a short deadline and maps
// the result onto 200/503.
func reportHealth(c *gin.Context, component string, probe func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := probe(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"component": component,
			"status":    "unhealthy",
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": component, "status": "ok"})
}

// HealthDB pings the snapshot database.
func HealthDB(c *gin.Context) {
	reportHealth(c, "db", func(ctx context.Context) error {
		dbc := ctxPkg.GetDBClient(ctx)
		if dbc == nil || dbc.DB == nil {
			return errors.New("db client not initialized")
		}

		sqlDB, err := dbc.DB.DB()
		if err != nil {
			return err
		}

		return sqlDB.PingContext(ctx)
	})
}

// HealthS3 verifies the object store answers a bucket listing.
func HealthS3(c *gin.Context) {
	reportHealth(c, "s3", func(ctx context.Context) error {
		s3c := ctxPkg.GetS3Client(ctx)
		if s3c == nil || s3c.Client == nil {
			return errors.New("s3 client not initialized")
		}

		_, err := s3c.ListBuckets(ctx)

		return err
	})
}

// HealthMQ reports whether the event publisher is wired. The NATS
// connection is established in the client constructor, so a non-nil
// client means the broker was reachable at startup.
func HealthMQ(c *gin.Context) {
	reportHealth(c, "mq", func(ctx context.Context) error {
		if ctxPkg.GetMQClient(ctx) == nil {
			return errors.New("mq client not initialized")
		}

		return nil
	})
}
