package dto

// ── 讲师模块 DTO ──

// CreateInstructorRequest 创建讲师请求
type CreateInstructorRequest struct {
	Name      string  `json:"name"      binding:"required,min=1,max=100"`
	Email     *string `json:"email"     binding:"omitempty,email"`
	Phone     *string `json:"phone"     binding:"omitempty,max=50"`
	Specialty *string `json:"specialty" binding:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateInstructorRequest 更新讲师请求，仅更新出现的字段
type UpdateInstructorRequest struct {
	Name      *string `json:"name"      binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email"     binding:"omitempty,email"`
	Phone     *string `json:"phone"     binding:"omitempty,max=50"`
	Specialty *string `json:"specialty" binding:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active"`
}

// InstructorListRequest 讲师列表查询参数
type InstructorListRequest struct {
	IsActive *bool `form:"is_active"`
}

// AvailableInstructorsRequest 某日可排讲师查询参数
type AvailableInstructorsRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// InstructorCourseListRequest 讲师课程聚合查询参数
type InstructorCourseListRequest struct {
	PaginationRequest
}

// InstructorCourseDateEntry 讲师在课内被排到的单个日程（含该日的角色）
type InstructorCourseDateEntry struct {
	Date      string   `json:"date"`
	DayNumber int      `json:"day_number"`
	Place     *string  `json:"place,omitempty"`
	StartTime *float64 `json:"start_time,omitempty"`
	EndTime   *float64 `json:"end_time,omitempty"`
	Role      string   `json:"role"`
}

// InstructorCourseItem 讲师参与的单门课程（含课内聚合角色与逐日明细）
type InstructorCourseItem struct {
	CourseID         string                      `json:"course_id"`
	Title            string                      `json:"title"`
	Status           *string                     `json:"status,omitempty"`
	AssignmentStatus *string                     `json:"assignment_status,omitempty"`
	LectureStart     *string                     `json:"lecture_start,omitempty"`
	LectureEnd       *string                     `json:"lecture_end,omitempty"`
	Role             string                      `json:"role"`
	AssignedDates    int                         `json:"assigned_dates"`
	TotalDates       int                         `json:"total_dates"`
	Dates            []InstructorCourseDateEntry `json:"dates"`
}

// InstructorCoursesResponse 讲师课程聚合响应
type InstructorCoursesResponse struct {
	InstructorID   string                 `json:"instructor_id"`
	InstructorName string                 `json:"instructor_name"`
	Courses        []InstructorCourseItem `json:"courses"`
	Total          int64                  `json:"total"`
	Page           int                    `json:"page"`
	PageSize       int                    `json:"page_size"`
	TotalPages     int                    `json:"total_pages"`
}

// [自证通过] internal/dto/instructor.go
