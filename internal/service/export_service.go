package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/coursepilot/schedule-optimizer-api/internal/dto"
	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	"github.com/coursepilot/schedule-optimizer-api/internal/optimizer"
	appErrors "github.com/coursepilot/schedule-optimizer-api/pkg/errors"
	"github.com/coursepilot/schedule-optimizer-api/pkg/export"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, subtitle string) ([]byte, error)
}

// ExportResult carries a rendered timetable ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders one chosen schedule combination as a CSV or PDF
// timetable.
type ExportService struct {
	csv      csvRenderer
	pdf      pdfRenderer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		csv:      csv,
		pdf:      pdf,
		validate: validator.New(),
		logger:   logger,
	}
}

var timetableHeaders = []string{"Day", "Start", "End", "Course", "Section", "Instructor"}

var dayRank = map[string]int{"M": 0, "T": 1, "W": 2, "R": 3, "F": 4}

// Export evaluates the submitted sections and renders the timetable in the
// requested format.
func (s *ExportService) Export(ctx context.Context, req dto.ExportScheduleRequest) (*ExportResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}

	prefs := mergePreferences(req.Preferences)
	combo := optimizer.EvaluateCombination(req.Sections, prefs)
	dataset := timetableDataset(combo)

	title := req.Title
	if title == "" {
		title = "Weekly Schedule"
	}

	stamp := time.Now().UTC().Format("20060102-150405")

	switch req.Format {
	case "csv":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, fmt.Errorf("render timetable csv: %w", err)
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("schedule-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case "pdf":
		data, err := s.pdf.Render(dataset, title, timetableSubtitle(combo))
		if err != nil {
			return nil, fmt.Errorf("render timetable pdf: %w", err)
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("schedule-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", req.Format))
	}
}

// timetableDataset flattens a combination into one row per meeting occurrence,
// ordered by weekday then start time. Sections without a parsed time slot get
// a single TBA row so they still show up on the sheet.
func timetableDataset(combo models.ScheduleCombination) export.Dataset {
	type row struct {
		day   string
		start string
		cells map[string]string
	}

	var rows []row
	for _, section := range combo.Sections {
		label := strings.TrimSpace(section.Subject + " " + section.CourseCode)
		if len(section.DayAnalysis.TimeSlots) == 0 {
			rows = append(rows, row{
				day:   "TBA",
				start: "",
				cells: map[string]string{
					"Day":        "TBA",
					"Start":      "",
					"End":        "",
					"Course":     label,
					"Section":    section.Section.Section,
					"Instructor": instructors(section.Schedule),
				},
			})
			continue
		}
		for _, slot := range section.DayAnalysis.TimeSlots {
			rows = append(rows, row{
				day:   slot.Day,
				start: slot.StartTime,
				cells: map[string]string{
					"Day":        slot.Day,
					"Start":      slot.StartTime,
					"End":        slot.EndTime,
					"Course":     label,
					"Section":    section.Section.Section,
					"Instructor": instructors(section.Schedule),
				},
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ri, iOK := dayRank[rows[i].day]
		rj, jOK := dayRank[rows[j].day]
		if iOK != jOK {
			return iOK
		}
		if ri != rj {
			return ri < rj
		}
		return rows[i].start < rows[j].start
	})

	dataset := export.Dataset{Headers: timetableHeaders}
	for _, r := range rows {
		dataset.Rows = append(dataset.Rows, r.cells)
	}
	return dataset
}

func timetableSubtitle(combo models.ScheduleCombination) string {
	return fmt.Sprintf("Score %.1f | %d day(s) | %.1f weekly hours",
		combo.Score, len(combo.DaysUsed), combo.TotalWeeklyHours)
}

func instructors(meetings []models.Meeting) string {
	seen := make(map[string]struct{})
	var names []string
	for _, meeting := range meetings {
		name := strings.TrimSpace(meeting.Instructor)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
