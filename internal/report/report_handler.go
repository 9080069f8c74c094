package report

import (
	"fmt"
	"go-messbill/internal/shared/apperror"
	"go-messbill/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bind(c *gin.Context) (ReportRequest, bool) {
	var req ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeValidationError, mapped.Message, err.Error())
		return ReportRequest{}, false
	}
	return req, true
}

func (h *Handler) EmployeeReport(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.service.EmployeeReport(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CategoryReport(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.service.CategoryReport(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportEmployeeReport(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	artifact, err := h.service.ExportEmployeeReport(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeArtifact(c, artifact)
}

func (h *Handler) ExportCategoryReport(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	artifact, err := h.service.ExportCategoryReport(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeArtifact(c, artifact)
}

func writeArtifact(c *gin.Context, a Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
	c.Data(http.StatusOK, a.ContentType, a.Body)
}
