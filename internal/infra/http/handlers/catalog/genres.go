package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *CatalogHandler) Genres(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "CatalogHandler.Genres")
	defer span.End()

	result, err := h.catalogService.Genres(ctx)
	if err != nil {
		span.RecordError(err)
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) Status(c *gin.Context) {
	c.String(http.StatusOK, h.catalogService.Status())
}
