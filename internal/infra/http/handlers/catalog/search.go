package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *CatalogHandler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "CatalogHandler.Search")
	defer span.End()

	qType := c.Param("type")
	if qType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}

	// The wildcard keeps its leading slash and any slash inside the query
	query := strings.TrimPrefix(c.Param("query"), "/")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result, err := h.catalogService.Search(ctx, query, qType)
	if err != nil {
		span.RecordError(err)
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
