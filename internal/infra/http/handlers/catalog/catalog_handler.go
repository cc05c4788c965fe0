package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	appcatalog "github.com/angristan/spotify-catalog/internal/app/services/catalog"
	"github.com/angristan/spotify-catalog/internal/infra/repository/spotify"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type CatalogHandler struct {
	tracer         trace.Tracer
	logger         logrus.FieldLogger
	catalogService CatalogService
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	catalogService CatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		tracer:         tracer,
		logger:         logger,
		catalogService: catalogService,
	}
}

// respondWithError maps service errors to HTTP responses. Provider errors
// keep their status and JSON body.
func (h *CatalogHandler) respondWithError(c *gin.Context, err error) {
	var reqErr *spotify.RequestError
	var authErr *spotify.AuthenticationError

	switch {
	case errors.Is(err, appcatalog.ErrEmptyQuery),
		errors.Is(err, appcatalog.ErrEmptySearchType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &reqErr) && reqErr.StatusCode != 0 && reqErr.Err == nil:
		if json.Valid(reqErr.Body) {
			c.Data(reqErr.StatusCode, "application/json", reqErr.Body)
			return
		}
		c.JSON(reqErr.StatusCode, gin.H{"error": string(reqErr.Body)})
	case errors.As(err, &authErr):
		h.logger.WithError(err).Error("Spotify authentication failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": authErr.Error()})
	case errors.Is(err, appcatalog.ErrCatalogClient):
		h.logger.WithError(err).Error("Spotify request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "spotify client error"})
	default:
		h.logger.WithError(err).Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
