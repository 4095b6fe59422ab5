package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"interview-prep/internal/domain"
)

// FeedbackList is stored as a JSON array in interview_evaluations.detailed_feedback.
type FeedbackList []domain.FeedbackItem

// Value implements the driver.Valuer interface
func (f FeedbackList) Value() (driver.Value, error) {
	if f == nil {
		// nil 슬라이스는 빈 JSON 배열로 저장
		return "[]", nil
	}
	jsonData, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (f *FeedbackList) Scan(value interface{}) error {
	if value == nil {
		*f = FeedbackList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("FeedbackList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*f = FeedbackList{}
		return nil
	}

	return json.Unmarshal(bytesToParse, f)
}
