package model

// 课程排课状态（由同步引擎的状态计算阶段派生）
const (
	AssignmentComplete   = "complete"
	AssignmentIncomplete = "incomplete"
)

// Course 课程表 — 对应 courses
//
// Status 是外部数据源的生命周期标签（如 "in progress" / "tax_invoice" / "lecture_stop"），
// AssignmentStatus / TotalDates / AssignedDates 是本地派生字段：
// TotalDates > 0 且 AssignedDates >= TotalDates 时为 complete，否则 incomplete；
// 无日程时为 NULL。
type Course struct {
	CourseID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NotionPageID     *string `gorm:"type:varchar(64);uniqueIndex"                   json:"notion_page_id,omitempty"`
	Title            string  `gorm:"type:varchar(300);not null"                     json:"title"`
	Status           *string `gorm:"type:varchar(50)"                               json:"status,omitempty"`
	Target           *string `gorm:"type:varchar(300)"                              json:"target,omitempty"`
	Students         *int    `json:"students,omitempty"`
	LectureStart     *string `gorm:"type:varchar(10)"                               json:"lecture_start,omitempty"`
	LectureEnd       *string `gorm:"type:varchar(10)"                               json:"lecture_end,omitempty"`
	WorkbookFullURL  *string `gorm:"type:text"                                      json:"workbook_full_url,omitempty"`
	AssignmentStatus *string `gorm:"type:varchar(20)"                               json:"assignment_status,omitempty"`
	TotalDates       int     `gorm:"not null;default:0"                             json:"total_dates"`
	AssignedDates    int     `gorm:"not null;default:0"                             json:"assigned_dates"`
	BaseModel

	// 关联
	Dates []CourseDate `gorm:"foreignKey:CourseID" json:"dates,omitempty"`
}

func (Course) TableName() string { return "courses" }

// [自证通过] internal/model/course.go
