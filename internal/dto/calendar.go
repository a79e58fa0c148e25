package dto

// ── 日历模块 DTO ──

// CalendarRequest 日历查询参数
type CalendarRequest struct {
	DateRangeRequest
	InstructorID string `form:"instructor_id" binding:"omitempty,uuid"`
}

// CalendarEvent 日历事件：一条排课在某天的展开视图
type CalendarEvent struct {
	Date             string  `json:"date"`
	InstructorID     string  `json:"instructor_id"`
	InstructorName   string  `json:"instructor_name"`
	CourseID         string  `json:"course_id"`
	CourseTitle      string  `json:"course_title"`
	CourseStatus     *string `json:"course_status,omitempty"`
	AssignmentStatus *string `json:"assignment_status,omitempty"`
	ClassName        *string `json:"class_name,omitempty"`
	AssignmentID     string  `json:"assignment_id"`
}

// CalendarExportRequest 日历导出参数
type CalendarExportRequest struct {
	CalendarRequest
	Format string `form:"format" binding:"omitempty,oneof=xlsx ics"`
}

// [自证通过] internal/dto/calendar.go
