package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
	"github.com/teamsparta-biz/tutor-scheduler/internal/service"
	"github.com/teamsparta-biz/tutor-scheduler/pkg/response"
)

// AvailabilityHandler 可用性模块 HTTP 处理器
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler 创建 AvailabilityHandler
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// ListAvailability 获取可用性列表
// GET /api/v1/availability
func (h *AvailabilityHandler) ListAvailability(c *gin.Context) {
	var req dto.AvailabilityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, err := h.availabilitySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": records})
}

// UpsertAvailability 标记讲师某日可用性（同键覆盖）
// POST /api/v1/availability
func (h *AvailabilityHandler) UpsertAvailability(c *gin.Context) {
	var req dto.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	record, err := h.availabilitySvc.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, record)
}

// DeleteAvailability 删除可用性标记
// DELETE /api/v1/availability/:id
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	if err := h.availabilitySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *AvailabilityHandler) handleAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAvailabilityNotFound):
		response.NotFound(c, 15001, "可用性记录不存在")
	case errors.Is(err, service.ErrInstructorNotFound):
		response.NotFound(c, 12001, "讲师不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/availability_handler.go
