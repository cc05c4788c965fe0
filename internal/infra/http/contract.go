package server

import (
	"github.com/gin-gonic/gin"
)

type CatalogHandler interface {
	Genres(ctx *gin.Context)
	Search(ctx *gin.Context)
	Status(ctx *gin.Context)
}
