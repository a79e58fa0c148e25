package notion

import "strings"

// ── 页面解析 ──
//
// 纯函数：一个 Page → 一个扁平实体。字段名候选按顺序匹配，
// 兼容外部库历次改名；必填字段为空的记录由调用方跳过。

// Tutor 讲师记录解析结果
type Tutor struct {
	NotionPageID string
	Name         string
	Email        string
	Phone        string
	Specialty    string
}

// Lecture 课程记录解析结果
// ScheduleIDs 是临时的关联日程外部 ID 列表，入库前剥离
type Lecture struct {
	NotionPageID    string
	Title           string
	Status          string
	Target          string
	Students        *int
	LectureStart    string
	LectureEnd      string
	WorkbookFullURL string
	ScheduleIDs     []string
}

// Schedule 日程记录解析结果
// DayNumber 固定为 1，真实序号由课程内日期排序后修正
type Schedule struct {
	NotionPageID       string
	Name               string
	Date               string
	Place              string
	StartTime          *float64
	EndTime            *float64
	MainTutorIDs       []string
	TechTutorIDs       []string
	LectureDashboardIDs []string
	DayNumber          int
}

// ParseTutor 解析讲师页面，Name 为空表示记录不完整
func ParseTutor(page Page) Tutor {
	props := page.Properties

	name := extractRichText(props, "real_name")
	if name == "" {
		name = extractTitle(props, "unique_name")
	}

	return Tutor{
		NotionPageID: page.ID,
		Name:         name,
		Email:        extractEmail(props, "email"),
		Phone:        extractPhone(props, "phone_number"),
		Specialty:    extractSelect(props, "tutor_level"),
	}
}

// ParseLecture 解析课程页面，Title 为空表示记录不完整
func ParseLecture(page Page) Lecture {
	props := page.Properties

	var students *int
	if n := extractNumber(props, "students"); n != nil {
		v := int(*n)
		students = &v
	}

	target := ""
	if names := extractRollupTexts(props, "target_name"); len(names) > 0 {
		target = strings.Join(names, ", ")
	}

	return Lecture{
		NotionPageID:    page.ID,
		Title:           extractTitle(props, "lecture_dashboard", "이름", "Name", "title"),
		Status:          extractSelect(props, "lecture_state"),
		Target:          target,
		Students:        students,
		LectureStart:    extractRollupDate(props, "lecture_start"),
		LectureEnd:      extractRollupDate(props, "lecture_end"),
		WorkbookFullURL: extractRollupURL(props, "workbook_full_URL"),
		ScheduleIDs:     extractRelationIDs(props, "lecture_schedules"),
	}
}

// ParseSchedule 解析日程页面，Date 为空表示记录不完整
func ParseSchedule(page Page) Schedule {
	props := page.Properties

	place := extractRichText(props, "place")
	if place == "" {
		place = extractText(props, "place")
	}

	return Schedule{
		NotionPageID:        page.ID,
		Name:                extractTitle(props, "lecture_schedule_name"),
		Date:                extractDateStart(props, "date"),
		Place:               place,
		StartTime:           extractNumber(props, "start_time"),
		EndTime:             extractNumber(props, "end_time"),
		MainTutorIDs:        extractRelationIDs(props, "main_tutor"),
		TechTutorIDs:        extractRelationIDs(props, "tech_tutor"),
		LectureDashboardIDs: extractRelationIDs(props, "lecture_dashboard"),
		DayNumber:           1,
	}
}

// ── 属性提取辅助 ──

func plainText(runs []RichText) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.PlainText)
	}
	return b.String()
}

// extractTitle 按候选 key 顺序取第一个非空标题文本
func extractTitle(props map[string]Property, keys ...string) string {
	for _, key := range keys {
		prop, ok := props[key]
		if ok && prop.Type == "title" && len(prop.Title) > 0 {
			if text := plainText(prop.Title); text != "" {
				return text
			}
		}
	}
	return ""
}

// extractRichText 按候选 key 顺序取第一个非空富文本
func extractRichText(props map[string]Property, keys ...string) string {
	for _, key := range keys {
		prop, ok := props[key]
		if ok && prop.Type == "rich_text" && len(prop.RichText) > 0 {
			if text := plainText(prop.RichText); text != "" {
				return text
			}
		}
	}
	return ""
}

// extractText 标题优先，富文本兜底
func extractText(props map[string]Property, keys ...string) string {
	if text := extractTitle(props, keys...); text != "" {
		return text
	}
	return extractRichText(props, keys...)
}

func extractEmail(props map[string]Property, key string) string {
	prop, ok := props[key]
	if ok && prop.Type == "email" && prop.Email != nil {
		return *prop.Email
	}
	return ""
}

func extractPhone(props map[string]Property, key string) string {
	prop, ok := props[key]
	if ok && prop.Type == "phone_number" && prop.PhoneNumber != nil {
		return *prop.PhoneNumber
	}
	return ""
}

// extractSelect 兼容 select 与 status 两种类型
func extractSelect(props map[string]Property, key string) string {
	prop, ok := props[key]
	if !ok {
		return ""
	}
	if prop.Type == "select" && prop.Select != nil {
		return prop.Select.Name
	}
	if prop.Type == "status" && prop.Status != nil {
		return prop.Status.Name
	}
	return ""
}

func extractNumber(props map[string]Property, key string) *float64 {
	prop, ok := props[key]
	if ok && prop.Type == "number" {
		return prop.Number
	}
	return nil
}

// extractDateStart 取日期范围的起始 ISO 字符串
func extractDateStart(props map[string]Property, key string) string {
	prop, ok := props[key]
	if ok && prop.Type == "date" && prop.Date != nil {
		return prop.Date.Start
	}
	return ""
}

// extractRelationIDs 取关联页面 ID 列表（保序、过滤空串）
func extractRelationIDs(props map[string]Property, key string) []string {
	prop, ok := props[key]
	if !ok || prop.Type != "relation" {
		return nil
	}
	ids := make([]string, 0, len(prop.Relation))
	for _, r := range prop.Relation {
		if r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// extractRollupDate 汇总日期：rollup 可能是单个 date，也可能是 array 里混着 date 子项
func extractRollupDate(props map[string]Property, key string) string {
	prop, ok := props[key]
	if !ok || prop.Type != "rollup" || prop.Rollup == nil {
		return ""
	}
	rollup := prop.Rollup

	if rollup.Type == "date" && rollup.Date != nil {
		return rollup.Date.Start
	}

	if rollup.Type == "array" {
		for _, item := range rollup.Array {
			if item.Type == "date" && item.Date != nil && item.Date.Start != "" {
				return item.Date.Start
			}
		}
	}

	return ""
}

// extractRollupURL 汇总数组中的第一个 URL
func extractRollupURL(props map[string]Property, key string) string {
	prop, ok := props[key]
	if !ok || prop.Type != "rollup" || prop.Rollup == nil {
		return ""
	}
	for _, item := range prop.Rollup.Array {
		if item.Type == "url" && item.URL != nil && *item.URL != "" {
			return *item.URL
		}
	}
	return ""
}

// extractRollupTexts 汇总数组中的全部非空文本（title / rich_text 子项）
func extractRollupTexts(props map[string]Property, key string) []string {
	prop, ok := props[key]
	if !ok || prop.Type != "rollup" || prop.Rollup == nil {
		return nil
	}
	var results []string
	for _, item := range prop.Rollup.Array {
		switch item.Type {
		case "title":
			if text := plainText(item.Title); text != "" {
				results = append(results, text)
			}
		case "rich_text":
			if text := plainText(item.RichText); text != "" {
				results = append(results, text)
			}
		}
	}
	return results
}

// [自证通过] internal/notion/parser.go
