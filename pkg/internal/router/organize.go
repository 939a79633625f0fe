package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/handle"
)

// RegisterOrganizeRoutes registers the organization engine routes.
func RegisterOrganizeRoutes(g *gin.RouterGroup) {
	// Run one organization batch over uploaded files.
	g.POST("/organize", handle.OrganizeFiles)

	batchRoutes := g.Group("/organize/batches")
	{
		// List stored batch snapshots.
		batchRoutes.GET("", handle.ListBatches)
		// Fetch one batch with files and stats.
		batchRoutes.GET("/:batchId", handle.GetBatch)
		// Delete a batch and its stored originals.
		batchRoutes.DELETE("/:batchId", handle.DeleteBatch)
		// Store the batch as a ZIP archive.
		batchRoutes.POST("/:batchId/archive", handle.ArchiveBatch)
		// Stream the batch as a ZIP download.
		batchRoutes.GET("/:batchId/download", handle.DownloadBatch)
	}
}
