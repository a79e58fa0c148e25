package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
	"github.com/teamsparta-biz/tutor-scheduler/internal/service"
	"github.com/teamsparta-biz/tutor-scheduler/pkg/response"
)

// AssignmentHandler 排课模块 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// ListAssignments 获取排课列表
// GET /api/v1/assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	var req dto.AssignmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignments, err := h.assignmentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// CreateAssignment 创建排课
// POST /api/v1/assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignment, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.Created(c, assignment)
}

// DeleteAssignment 删除排课
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "排课ID不能为空")
		return
	}

	if err := h.assignmentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	var dup *service.DuplicateAssignmentError
	switch {
	case errors.As(err, &dup):
		// 冲突文案带讲师与日期，前端直接展示
		response.Error(c, http.StatusConflict, 14001, dup.Error())
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 14002, "排课记录不存在")
	case errors.Is(err, service.ErrCourseDateNotFound):
		response.NotFound(c, 13002, "课程日程不存在")
	case errors.Is(err, service.ErrInstructorNotFound):
		response.NotFound(c, 12001, "讲师不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/assignment_handler.go
