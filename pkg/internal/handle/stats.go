package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/service"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
)

// ComputeStats recomputes aggregate statistics over a set of organized
// files. The whole set is recomputed on every call, nothing is incremental.
func ComputeStats(c *gin.Context) {
	l := log.Logger()

	var req types.StatsRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid stats request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if len(req.Files) == 0 {
		l.Warn().Msg("no files provided in stats request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})

		return
	}

	c.JSON(http.StatusOK, service.ComputeStats(req.Files))
}
