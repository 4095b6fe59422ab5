package export

import (
	"bytes"
	"fmt"
	"time"

	"interview-prep/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	setsSheet     = "Interviews"
	feedbackSheet = "Feedback"
	timeLayout    = "2006-01-02 15:04:05"
)

var setHeaders = []interface{}{
	"Set ID", "Job Type", "Level", "Status", "Created At", "Completed At",
	"Logic", "Evidence", "Job Understanding", "Formality", "Completeness", "Average", "Overall Feedback",
}

var feedbackHeaders = []interface{}{"Set ID", "Question Order", "Feedback", "Improvements"}

// SetRow is one interview set with its evaluation, if any.
type SetRow struct {
	Set        *domain.InterviewSet
	Evaluation *domain.InterviewEvaluation
}

// InterviewSetsWorkbook renders sets and their scores as an xlsx document.
// Per-question feedback goes to a second sheet.
func InterviewSetsWorkbook(rows []SetRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", setsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(feedbackSheet); err != nil {
		return nil, fmt.Errorf("failed to create feedback sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeader(f, setsSheet, setHeaders, headerStyle); err != nil {
		return nil, err
	}
	if err := writeHeader(f, feedbackSheet, feedbackHeaders, headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(setsSheet, "A", "L", 16)
	_ = f.SetColWidth(setsSheet, "M", "M", 60)
	_ = f.SetColWidth(feedbackSheet, "C", "D", 60)

	feedbackRow := 2
	for i, r := range rows {
		if err := f.SetSheetRow(setsSheet, fmt.Sprintf("A%d", i+2), setRowValues(r)); err != nil {
			return nil, fmt.Errorf("failed to write set %d: %w", r.Set.ID, err)
		}
		if r.Evaluation == nil {
			continue
		}
		for _, fb := range r.Evaluation.DetailedFeedback {
			values := []interface{}{r.Set.ID, fb.QuestionOrder, fb.Feedback, fb.Improvements}
			if err := f.SetSheetRow(feedbackSheet, fmt.Sprintf("A%d", feedbackRow), &values); err != nil {
				return nil, fmt.Errorf("failed to write feedback of set %d: %w", r.Set.ID, err)
			}
			feedbackRow++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []interface{}, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func setRowValues(r SetRow) *[]interface{} {
	completedAt := ""
	if r.Set.CompletedAt != nil {
		completedAt = r.Set.CompletedAt.Format(timeLayout)
	}
	values := []interface{}{
		r.Set.ID, string(r.Set.JobType), string(r.Set.Level), string(r.Set.Status),
		r.Set.CreatedAt.Format(timeLayout), completedAt,
	}
	if e := r.Evaluation; e != nil {
		avg := float64(e.Logic+e.Evidence+e.JobUnderstanding+e.Formality+e.Completeness) / 5
		values = append(values, e.Logic, e.Evidence, e.JobUnderstanding, e.Formality, e.Completeness, avg, e.OverallFeedback)
	}
	return &values
}

// FileName is the download name for an export generated at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("interview-sets-%s.xlsx", t.Format("20060102-150405"))
}
