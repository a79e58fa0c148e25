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

// ── 可用性模块业务错误 ──

var (
	ErrAvailabilityNotFound = errors.New("可用性记录不存在")
)

// AvailabilityService 讲师可用性业务接口
type AvailabilityService interface {
	List(ctx context.Context, req *dto.AvailabilityListRequest) ([]model.Availability, error)
	Upsert(ctx context.Context, req *dto.UpsertAvailabilityRequest) (*model.Availability, error)
	Delete(ctx context.Context, id string) error
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService 创建 AvailabilityService 实例
func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

func (s *availabilityService) List(ctx context.Context, req *dto.AvailabilityListRequest) ([]model.Availability, error) {
	var (
		records []model.Availability
		err     error
	)
	if req.InstructorID != "" {
		records, err = s.repo.Availability.ListByInstructorAndDateRange(ctx, req.InstructorID, req.StartDate, req.EndDate)
	} else {
		records, err = s.repo.Availability.ListByDateRange(ctx, req.StartDate, req.EndDate)
	}
	if err != nil {
		s.logger.Error("查询可用性列表失败", zap.Error(err))
		return nil, err
	}
	return records, nil
}

// Upsert 标记讲师某日可用性。同一 (instructor_id, date) 重复提交覆盖旧值。
func (s *availabilityService) Upsert(ctx context.Context, req *dto.UpsertAvailabilityRequest) (*model.Availability, error) {
	if _, err := s.repo.Instructor.GetByID(ctx, req.InstructorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}

	record, err := s.repo.Availability.Upsert(ctx, &model.Availability{
		InstructorID: req.InstructorID,
		Date:         req.Date,
		Status:       req.Status,
		Reason:       req.Reason,
	})
	if err != nil {
		s.logger.Error("写入可用性失败",
			zap.String("instructor_id", req.InstructorID),
			zap.String("date", req.Date), zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *availabilityService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Availability.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除可用性失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrAvailabilityNotFound
	}
	return nil
}

// [自证通过] internal/service/availability_service.go
