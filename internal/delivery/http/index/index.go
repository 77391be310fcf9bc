package http_index

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML []byte

type Controller struct{}

func New() *Controller {
	return &Controller{}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.index)
}

func (c *Controller) index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
