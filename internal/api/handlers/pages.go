package handlers

import (
	"net/http"

	"github.com/dhima/employee-directory/internal/api/response"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/dhima/employee-directory/internal/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Presentation carries the cosmetic values every page is rendered with.
type Presentation struct {
	Color      string
	MyName     string
	Background bool
}

func (p Presentation) data(extra gin.H) gin.H {
	data := gin.H{
		"color":      p.Color,
		"my_name":    p.MyName,
		"background": p.Background,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// PageHandler serves the static form pages.
type PageHandler struct {
	logger logging.Logger
	view   Presentation
}

// NewPageHandler creates a new page handler.
func NewPageHandler(logger logging.Logger, view Presentation) *PageHandler {
	return &PageHandler{
		logger: logger.With(zap.String("handler", "pages")),
		view:   view,
	}
}

// Home renders the add-employee form.
func (h *PageHandler) Home(c *gin.Context) {
	response.Page(c, http.StatusOK, web.PageAddEmployee, h.view.data(nil))
}

// About renders the about page.
func (h *PageHandler) About(c *gin.Context) {
	response.Page(c, http.StatusOK, web.PageAbout, h.view.data(nil))
}

// GetEmp renders the lookup form.
func (h *PageHandler) GetEmp(c *gin.Context) {
	response.Page(c, http.StatusOK, web.PageGetEmployee, h.view.data(nil))
}
