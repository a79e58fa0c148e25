package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
	"github.com/teamsparta-biz/tutor-scheduler/internal/repository"
	pkgerrors "github.com/teamsparta-biz/tutor-scheduler/pkg/errors"
)

// ── Mock InstructorRepository ──

type mockInstructorRepo struct {
	instructors map[string]*model.Instructor
	seq         int
}

func newMockInstructorRepo() *mockInstructorRepo {
	return &mockInstructorRepo{instructors: make(map[string]*model.Instructor)}
}

func (m *mockInstructorRepo) List(_ context.Context, isActive *bool) ([]model.Instructor, error) {
	var result []model.Instructor
	for _, ins := range m.instructors {
		if isActive != nil && ins.IsActive != *isActive {
			continue
		}
		result = append(result, *ins)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockInstructorRepo) GetByID(_ context.Context, id string) (*model.Instructor, error) {
	if ins, ok := m.instructors[id]; ok {
		copied := *ins
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) Create(_ context.Context, instructor *model.Instructor) error {
	if instructor.NotionPageID != nil {
		for _, ins := range m.instructors {
			if ins.NotionPageID != nil && *ins.NotionPageID == *instructor.NotionPageID {
				return pkgerrors.ErrUniqueViolation
			}
		}
	}
	if instructor.InstructorID == "" {
		m.seq++
		instructor.InstructorID = fmt.Sprintf("ins-%d", m.seq)
	}
	copied := *instructor
	m.instructors[instructor.InstructorID] = &copied
	return nil
}

func (m *mockInstructorRepo) Update(_ context.Context, id string, updates map[string]interface{}) (*model.Instructor, error) {
	ins, ok := m.instructors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		switch k {
		case "name":
			ins.Name = v.(string)
		case "email":
			s := v.(string)
			ins.Email = &s
		case "phone":
			s := v.(string)
			ins.Phone = &s
		case "specialty":
			s := v.(string)
			ins.Specialty = &s
		case "is_active":
			ins.IsActive = v.(bool)
		}
	}
	copied := *ins
	return &copied, nil
}

func (m *mockInstructorRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.instructors[id]; !ok {
		return false, nil
	}
	delete(m.instructors, id)
	return true, nil
}

func (m *mockInstructorRepo) UpsertByNotionPageID(_ context.Context, instructor *model.Instructor) (*model.Instructor, error) {
	for _, ins := range m.instructors {
		if ins.NotionPageID != nil && instructor.NotionPageID != nil && *ins.NotionPageID == *instructor.NotionPageID {
			ins.Name = instructor.Name
			ins.Email = instructor.Email
			ins.Phone = instructor.Phone
			ins.Specialty = instructor.Specialty
			ins.IsActive = instructor.IsActive
			copied := *ins
			return &copied, nil
		}
	}
	if err := m.Create(context.Background(), instructor); err != nil {
		return nil, err
	}
	copied := *instructor
	return &copied, nil
}

func (m *mockInstructorRepo) FindByAuthEmail(_ context.Context, email string) (*model.Instructor, error) {
	for _, ins := range m.instructors {
		if ins.AuthEmail != nil && *ins.AuthEmail == email {
			copied := *ins
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) FindByEmail(_ context.Context, email string) (*model.Instructor, error) {
	for _, ins := range m.instructors {
		if ins.Email != nil && *ins.Email == email {
			copied := *ins
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) SetAuthEmail(_ context.Context, id, authEmail string) error {
	ins, ok := m.instructors[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ins.AuthEmail = &authEmail
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
	dates   *mockCourseDateRepo
	seq     int
}

func newMockCourseRepo(dates *mockCourseDateRepo) *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course), dates: dates}
}

func (m *mockCourseRepo) List(_ context.Context, status *string) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if status != nil && (c.Status == nil || *c.Status != *status) {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

func (m *mockCourseRepo) ListAll(_ context.Context) ([]model.Course, error) {
	return m.List(context.Background(), nil)
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByIDWithDates(ctx context.Context, id string) (*model.Course, error) {
	course, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Dates, _ = m.dates.ListByCourse(ctx, id)
	return course, nil
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.NotionPageID != nil {
		for _, c := range m.courses {
			if c.NotionPageID != nil && *c.NotionPageID == *course.NotionPageID {
				return pkgerrors.ErrUniqueViolation
			}
		}
	}
	if course.CourseID == "" {
		m.seq++
		course.CourseID = fmt.Sprintf("crs-%d", m.seq)
	}
	copied := *course
	m.courses[course.CourseID] = &copied
	return nil
}

func (m *mockCourseRepo) Update(_ context.Context, id string, updates map[string]interface{}) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		switch k {
		case "title":
			c.Title = v.(string)
		case "status":
			s := v.(string)
			c.Status = &s
		case "target":
			s := v.(string)
			c.Target = &s
		case "students":
			n := v.(int)
			c.Students = &n
		case "lecture_start":
			s := v.(string)
			c.LectureStart = &s
		case "lecture_end":
			s := v.(string)
			c.LectureEnd = &s
		case "workbook_full_url":
			s := v.(string)
			c.WorkbookFullURL = &s
		case "total_dates":
			c.TotalDates = v.(int)
		case "assigned_dates":
			c.AssignedDates = v.(int)
		case "assignment_status":
			if v == nil {
				c.AssignmentStatus = nil
			} else {
				s := v.(string)
				c.AssignmentStatus = &s
			}
		}
	}
	copied := *c
	return &copied, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.courses[id]; !ok {
		return false, nil
	}
	delete(m.courses, id)
	return true, nil
}

func (m *mockCourseRepo) UpsertByNotionPageID(_ context.Context, course *model.Course) (*model.Course, error) {
	for _, c := range m.courses {
		if c.NotionPageID != nil && course.NotionPageID != nil && *c.NotionPageID == *course.NotionPageID {
			c.Title = course.Title
			c.Status = course.Status
			c.Target = course.Target
			c.Students = course.Students
			c.LectureStart = course.LectureStart
			c.LectureEnd = course.LectureEnd
			c.WorkbookFullURL = course.WorkbookFullURL
			copied := *c
			return &copied, nil
		}
	}
	if err := m.Create(context.Background(), course); err != nil {
		return nil, err
	}
	copied := *course
	return &copied, nil
}

func (m *mockCourseRepo) ListNotionMappings(_ context.Context) (map[string]string, error) {
	mapping := make(map[string]string)
	for _, c := range m.courses {
		if c.NotionPageID != nil {
			mapping[*c.NotionPageID] = c.CourseID
		}
	}
	return mapping, nil
}

// ── Mock CourseDateRepository ──

type mockCourseDateRepo struct {
	dates map[string]*model.CourseDate
	seq   int
}

func newMockCourseDateRepo() *mockCourseDateRepo {
	return &mockCourseDateRepo{dates: make(map[string]*model.CourseDate)}
}

func (m *mockCourseDateRepo) Create(_ context.Context, date *model.CourseDate) error {
	for _, d := range m.dates {
		if d.CourseID == date.CourseID && d.Date == date.Date {
			return pkgerrors.ErrUniqueViolation
		}
	}
	if date.CourseDateID == "" {
		m.seq++
		date.CourseDateID = fmt.Sprintf("cd-%d", m.seq)
	}
	copied := *date
	m.dates[date.CourseDateID] = &copied
	return nil
}

func (m *mockCourseDateRepo) BatchCreate(ctx context.Context, dates []model.CourseDate) error {
	for i := range dates {
		if err := m.Create(ctx, &dates[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockCourseDateRepo) Upsert(_ context.Context, date *model.CourseDate) (*model.CourseDate, error) {
	for _, d := range m.dates {
		if d.CourseID == date.CourseID && d.Date == date.Date {
			d.DayNumber = date.DayNumber
			d.Place = date.Place
			d.StartTime = date.StartTime
			d.EndTime = date.EndTime
			copied := *d
			return &copied, nil
		}
	}
	if err := m.Create(context.Background(), date); err != nil {
		return nil, err
	}
	copied := *date
	return &copied, nil
}

func (m *mockCourseDateRepo) GetByID(_ context.Context, id string) (*model.CourseDate, error) {
	if d, ok := m.dates[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseDateRepo) ListByCourse(_ context.Context, courseID string) ([]model.CourseDate, error) {
	var result []model.CourseDate
	for _, d := range m.dates {
		if d.CourseID == courseID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockCourseDateRepo) ListAll(_ context.Context) ([]model.CourseDate, error) {
	var result []model.CourseDate
	for _, d := range m.dates {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockCourseDateRepo) ListByDateRange(_ context.Context, startDate, endDate string) ([]model.CourseDate, error) {
	var result []model.CourseDate
	for _, d := range m.dates {
		if startDate != "" && d.Date < startDate {
			continue
		}
		if endDate != "" && d.Date > endDate {
			continue
		}
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockCourseDateRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.dates[id]; !ok {
		return false, nil
	}
	delete(m.dates, id)
	return true, nil
}

func (m *mockCourseDateRepo) DeleteByCourse(_ context.Context, courseID string) error {
	for id, d := range m.dates {
		if d.CourseID == courseID {
			delete(m.dates, id)
		}
	}
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.Assignment
	seq         int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.Assignment)}
}

func (m *mockAssignmentRepo) List(_ context.Context, filter repository.AssignmentFilter) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if filter.InstructorID != "" && a.InstructorID != filter.InstructorID {
			continue
		}
		if filter.CourseDateID != "" && a.CourseDateID != filter.CourseDateID {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		result = append(result, *a)
	}
	sortAssignments(result)
	return result, nil
}

func (m *mockAssignmentRepo) ListByDateRange(_ context.Context, startDate, endDate string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if startDate != "" && a.Date < startDate {
			continue
		}
		if endDate != "" && a.Date > endDate {
			continue
		}
		result = append(result, *a)
	}
	sortAssignments(result)
	return result, nil
}

func (m *mockAssignmentRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.Assignment, error) {
	return m.List(context.Background(), repository.AssignmentFilter{InstructorID: instructorID})
}

func (m *mockAssignmentRepo) ListByCourseDateIDs(_ context.Context, courseDateIDs []string) ([]model.Assignment, error) {
	idSet := make(map[string]struct{}, len(courseDateIDs))
	for _, id := range courseDateIDs {
		idSet[id] = struct{}{}
	}
	var result []model.Assignment
	for _, a := range m.assignments {
		if _, ok := idSet[a.CourseDateID]; ok {
			result = append(result, *a)
		}
	}
	sortAssignments(result)
	return result, nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.Assignment, error) {
	if a, ok := m.assignments[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	for _, a := range m.assignments {
		if a.InstructorID == assignment.InstructorID && a.Date == assignment.Date {
			return pkgerrors.ErrUniqueViolation
		}
	}
	if assignment.AssignmentID == "" {
		m.seq++
		assignment.AssignmentID = fmt.Sprintf("asn-%d", m.seq)
	}
	copied := *assignment
	m.assignments[assignment.AssignmentID] = &copied
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.assignments[id]; !ok {
		return false, nil
	}
	delete(m.assignments, id)
	return true, nil
}

func (m *mockAssignmentRepo) CountDistinctDatesByCourseDateIDs(_ context.Context, courseDateIDs []string) (int64, error) {
	idSet := make(map[string]struct{}, len(courseDateIDs))
	for _, id := range courseDateIDs {
		idSet[id] = struct{}{}
	}
	seen := make(map[string]struct{})
	for _, a := range m.assignments {
		if _, ok := idSet[a.CourseDateID]; ok {
			seen[a.CourseDateID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

func sortAssignments(assignments []model.Assignment) {
	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].Date != assignments[j].Date {
			return assignments[i].Date < assignments[j].Date
		}
		return assignments[i].AssignmentID < assignments[j].AssignmentID
	})
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	records map[string]*model.Availability
	seq     int
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{records: make(map[string]*model.Availability)}
}

func (m *mockAvailabilityRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.Availability, error) {
	var result []model.Availability
	for _, r := range m.records {
		if r.InstructorID == instructorID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockAvailabilityRepo) ListByDateRange(_ context.Context, startDate, endDate string) ([]model.Availability, error) {
	var result []model.Availability
	for _, r := range m.records {
		if startDate != "" && r.Date < startDate {
			continue
		}
		if endDate != "" && r.Date > endDate {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockAvailabilityRepo) ListByInstructorAndDateRange(ctx context.Context, instructorID, startDate, endDate string) ([]model.Availability, error) {
	all, _ := m.ListByDateRange(ctx, startDate, endDate)
	var result []model.Availability
	for _, r := range all {
		if r.InstructorID == instructorID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) ListByDate(_ context.Context, date string) ([]model.Availability, error) {
	var result []model.Availability
	for _, r := range m.records {
		if r.Date == date {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) Upsert(_ context.Context, availability *model.Availability) (*model.Availability, error) {
	for _, r := range m.records {
		if r.InstructorID == availability.InstructorID && r.Date == availability.Date {
			r.Status = availability.Status
			r.Reason = availability.Reason
			copied := *r
			return &copied, nil
		}
	}
	m.seq++
	availability.AvailabilityID = fmt.Sprintf("av-%d", m.seq)
	copied := *availability
	m.records[availability.AvailabilityID] = &copied
	return availability, nil
}

func (m *mockAvailabilityRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	profiles map[string]*model.Profile
	seq      int
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (*model.Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	if _, ok := m.profiles[profile.UserID]; ok {
		return pkgerrors.ErrUniqueViolation
	}
	m.seq++
	profile.ProfileID = fmt.Sprintf("prf-%d", m.seq)
	copied := *profile
	m.profiles[profile.UserID] = &copied
	return nil
}

func (m *mockProfileRepo) Update(_ context.Context, userID string, updates map[string]interface{}) (*model.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		switch k {
		case "role":
			p.Role = v.(string)
		case "display_name":
			s := v.(string)
			p.DisplayName = &s
		}
	}
	copied := *p
	return &copied, nil
}

// ── 测试装配 ──

func newTestRepository() *repository.Repository {
	dateRepo := newMockCourseDateRepo()
	return &repository.Repository{
		Instructor:   newMockInstructorRepo(),
		Course:       newMockCourseRepo(dateRepo),
		CourseDate:   dateRepo,
		Assignment:   newMockAssignmentRepo(),
		Availability: newMockAvailabilityRepo(),
		Profile:      newMockProfileRepo(),
	}
}

// [自证通过] internal/service/mock_repos_test.go
