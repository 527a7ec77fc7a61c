package report

import (
	"fmt"
	"net/http"
	"time"

	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	loc     *time.Location
}

func NewHandler(service Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{service: service, loc: loc}
}

func (h *Handler) filter(c *gin.Context) (ReportQuery, Filter, bool) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ServiceError(c, apperror.MapValidationError(err))
		return q, Filter{}, false
	}
	f, err := q.ToFilter(h.loc)
	if err != nil {
		response.ServiceError(c, err)
		return q, Filter{}, false
	}
	return q, f, true
}

// Export streams the summary workbook as an attachment.
func (h *Handler) Export(c *gin.Context) {
	_, f, ok := h.filter(c)
	if !ok {
		return
	}

	doc, err := h.service.Generate(c.Request.Context(), f)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func (h *Handler) Daily(c *gin.Context) {
	q, f, ok := h.filter(c)
	if !ok {
		return
	}

	rows, err := h.service.DailyRows(c.Request.Context(), f)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	page, meta := response.Paginate(rows, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, "", page, &meta)
}
