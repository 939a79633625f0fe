package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/service"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/rule"
)

// GetRules returns the active organization rule set.
func GetRules(c *gin.Context) {
	l := log.Logger()

	svc := service.NewRulesService(c.Request.Context())

	rules, err := svc.Get(c.Request.Context())
	if err != nil {
		l.Error().Err(err).Msg("load rules failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, rules)
}

// PutRules validates and stores a new rule set.
func PutRules(c *gin.Context) {
	l := log.Logger()

	var rules types.OrganizationRules
	if err := c.ShouldBind(&rules); err != nil {
		l.Warn().Err(err).Msg("invalid rules body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewRulesService(c.Request.Context())

	if err := svc.Set(c.Request.Context(), &rules); err != nil {
		l.Warn().Err(err).Msg("store rules failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rules", "fields": rule.Describe(err)})

		return
	}

	c.JSON(http.StatusOK, rules)
}

// ResetRules reverts to the configured default rule set.
func ResetRules(c *gin.Context) {
	l := log.Logger()

	svc := service.NewRulesService(c.Request.Context())

	if err := svc.Reset(c.Request.Context()); err != nil {
		l.Error().Err(err).Msg("reset rules failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, service.DefaultRules())
}
