package notion

import "testing"

func strPtr(s string) *string       { return &s }
func numPtr(f float64) *float64     { return &f }
func richText(s string) []RichText  { return []RichText{{PlainText: s}} }

// ── ParseTutor ──

func TestParseTutor_RealNamePreferred(t *testing.T) {
	page := Page{
		ID: "page-001",
		Properties: map[string]Property{
			"real_name":    {Type: "rich_text", RichText: richText("김강사")},
			"unique_name":  {Type: "title", Title: richText("kim-tutor")},
			"email":        {Type: "email", Email: strPtr("kim@example.com")},
			"phone_number": {Type: "phone_number", PhoneNumber: strPtr("010-1234-5678")},
			"tutor_level":  {Type: "select", Select: &SelectOption{Name: "senior"}},
		},
	}

	tutor := ParseTutor(page)
	if tutor.NotionPageID != "page-001" {
		t.Errorf("期望 NotionPageID=page-001，实际=%s", tutor.NotionPageID)
	}
	if tutor.Name != "김강사" {
		t.Errorf("期望 real_name 优先，实际=%s", tutor.Name)
	}
	if tutor.Email != "kim@example.com" {
		t.Errorf("期望 email=kim@example.com，实际=%s", tutor.Email)
	}
	if tutor.Phone != "010-1234-5678" {
		t.Errorf("期望 phone=010-1234-5678，实际=%s", tutor.Phone)
	}
	if tutor.Specialty != "senior" {
		t.Errorf("期望 specialty=senior，实际=%s", tutor.Specialty)
	}
}

func TestParseTutor_FallbackToUniqueName(t *testing.T) {
	page := Page{
		ID: "page-002",
		Properties: map[string]Property{
			"unique_name": {Type: "title", Title: richText("kim-tutor")},
		},
	}

	tutor := ParseTutor(page)
	if tutor.Name != "kim-tutor" {
		t.Errorf("real_name 缺失时应回退到 unique_name，实际=%s", tutor.Name)
	}
}

func TestParseTutor_EmptyName(t *testing.T) {
	page := Page{ID: "page-003", Properties: map[string]Property{}}

	tutor := ParseTutor(page)
	if tutor.Name != "" {
		t.Errorf("无名字字段时 Name 应为空，实际=%s", tutor.Name)
	}
}

// ── ParseLecture ──

func TestParseLecture_AllFields(t *testing.T) {
	page := Page{
		ID: "lec-001",
		Properties: map[string]Property{
			"lecture_dashboard": {Type: "title", Title: richText("Go 后端集训")},
			"lecture_state":     {Type: "status", Status: &SelectOption{Name: "in progress"}},
			"students":          {Type: "number", Number: numPtr(28)},
			"lecture_start": {Type: "rollup", Rollup: &RollupValue{
				Type: "date",
				Date: &DateValue{Start: "2026-03-10"},
			}},
			"lecture_end": {Type: "rollup", Rollup: &RollupValue{
				Type: "array",
				Array: []RollupItem{
					{Type: "rich_text", RichText: richText("ignored")},
					{Type: "date", Date: &DateValue{Start: "2026-03-12"}},
				},
			}},
			"target_name": {Type: "rollup", Rollup: &RollupValue{
				Type: "array",
				Array: []RollupItem{
					{Type: "title", Title: richText("新入职员")},
					{Type: "rich_text", RichText: richText("在职转岗")},
				},
			}},
			"workbook_full_URL": {Type: "rollup", Rollup: &RollupValue{
				Type:  "array",
				Array: []RollupItem{{Type: "url", URL: strPtr("https://wb.example.com/1")}},
			}},
			"lecture_schedules": {Type: "relation", Relation: []RelationRef{
				{ID: "sch-1"}, {ID: ""}, {ID: "sch-2"},
			}},
		},
	}

	lec := ParseLecture(page)
	if lec.Title != "Go 后端集训" {
		t.Errorf("期望 title=Go 后端集训，实际=%s", lec.Title)
	}
	if lec.Status != "in progress" {
		t.Errorf("status 类型也应被 select 提取器接受，实际=%s", lec.Status)
	}
	if lec.Students == nil || *lec.Students != 28 {
		t.Errorf("期望 students=28，实际=%v", lec.Students)
	}
	if lec.LectureStart != "2026-03-10" {
		t.Errorf("单值 rollup 日期提取失败，实际=%s", lec.LectureStart)
	}
	if lec.LectureEnd != "2026-03-12" {
		t.Errorf("数组 rollup 日期提取失败，实际=%s", lec.LectureEnd)
	}
	if lec.Target != "新入职员, 在职转岗" {
		t.Errorf("期望 target 逗号拼接，实际=%s", lec.Target)
	}
	if lec.WorkbookFullURL != "https://wb.example.com/1" {
		t.Errorf("rollup URL 提取失败，实际=%s", lec.WorkbookFullURL)
	}
	if len(lec.ScheduleIDs) != 2 || lec.ScheduleIDs[0] != "sch-1" || lec.ScheduleIDs[1] != "sch-2" {
		t.Errorf("关联 ID 应保序并过滤空串，实际=%v", lec.ScheduleIDs)
	}
}

func TestParseLecture_TitleCandidates(t *testing.T) {
	page := Page{
		ID: "lec-002",
		Properties: map[string]Property{
			"이름": {Type: "title", Title: richText("旧命名课程")},
		},
	}

	lec := ParseLecture(page)
	if lec.Title != "旧命名课程" {
		t.Errorf("候选字段名匹配失败，实际=%s", lec.Title)
	}
}

func TestParseLecture_TypeMismatchYieldsEmpty(t *testing.T) {
	page := Page{
		ID: "lec-003",
		Properties: map[string]Property{
			// 字段存在但类型不符 → 取空值，不报错
			"lecture_dashboard": {Type: "rich_text", RichText: richText("不是标题")},
			"students":          {Type: "select", Select: &SelectOption{Name: "28"}},
		},
	}

	lec := ParseLecture(page)
	if lec.Title != "" {
		t.Errorf("类型不符时标题应为空，实际=%s", lec.Title)
	}
	if lec.Students != nil {
		t.Errorf("类型不符时数字应为 nil，实际=%v", lec.Students)
	}
}

// ── ParseSchedule ──

func TestParseSchedule_AllFields(t *testing.T) {
	page := Page{
		ID: "sch-001",
		Properties: map[string]Property{
			"lecture_schedule_name": {Type: "title", Title: richText("第1天")},
			"date":                  {Type: "date", Date: &DateValue{Start: "2026-03-10"}},
			"place":                 {Type: "rich_text", RichText: richText("江南校区 3F")},
			"start_time":            {Type: "number", Number: numPtr(9.5)},
			"end_time":              {Type: "number", Number: numPtr(18)},
			"main_tutor":            {Type: "relation", Relation: []RelationRef{{ID: "tutor-1"}}},
			"tech_tutor":            {Type: "relation", Relation: []RelationRef{{ID: "tutor-2"}, {ID: "tutor-3"}}},
			"lecture_dashboard":     {Type: "relation", Relation: []RelationRef{{ID: "lec-1"}}},
		},
	}

	sch := ParseSchedule(page)
	if sch.Date != "2026-03-10" {
		t.Errorf("期望 date=2026-03-10，实际=%s", sch.Date)
	}
	if sch.Place != "江南校区 3F" {
		t.Errorf("期望 place=江南校区 3F，实际=%s", sch.Place)
	}
	if sch.StartTime == nil || *sch.StartTime != 9.5 {
		t.Errorf("期望 start_time=9.5，实际=%v", sch.StartTime)
	}
	if len(sch.MainTutorIDs) != 1 || sch.MainTutorIDs[0] != "tutor-1" {
		t.Errorf("主讲关联提取失败，实际=%v", sch.MainTutorIDs)
	}
	if len(sch.TechTutorIDs) != 2 {
		t.Errorf("技术支持关联提取失败，实际=%v", sch.TechTutorIDs)
	}
	if len(sch.LectureDashboardIDs) != 1 || sch.LectureDashboardIDs[0] != "lec-1" {
		t.Errorf("课程关联提取失败，实际=%v", sch.LectureDashboardIDs)
	}
	if sch.DayNumber != 1 {
		t.Errorf("DayNumber 占位值应为 1，实际=%d", sch.DayNumber)
	}
}

func TestParseSchedule_MissingDate(t *testing.T) {
	page := Page{
		ID: "sch-002",
		Properties: map[string]Property{
			"lecture_schedule_name": {Type: "title", Title: richText("无日期")},
		},
	}

	sch := ParseSchedule(page)
	if sch.Date != "" {
		t.Errorf("无日期字段时 Date 应为空，实际=%s", sch.Date)
	}
}

func TestPlainText_ConcatenatesRuns(t *testing.T) {
	runs := []RichText{{PlainText: "Go "}, {PlainText: "后端"}, {PlainText: "集训"}}
	if got := plainText(runs); got != "Go 后端集训" {
		t.Errorf("富文本片段应拼接，实际=%s", got)
	}
}
