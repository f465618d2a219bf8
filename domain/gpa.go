package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// CourseEntry is one row of the GPA calculator. Weight and Grade arrive as
// free text; Course is descriptive only.
type CourseEntry struct {
	Course string `json:"course"`
	Weight string `json:"weight"`
	Grade  string `json:"grade"`
}

// UnmarshalJSON accepts the weight as a JSON string or a JSON number and
// keeps it as text. A null or missing weight is empty.
func (c *CourseEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Course string          `json:"course"`
		Weight json.RawMessage `json:"weight"`
		Grade  string          `json:"grade"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	weight := ""
	if len(raw.Weight) > 0 && !bytes.Equal(raw.Weight, []byte("null")) {
		var s string
		var n json.Number
		switch {
		case json.Unmarshal(raw.Weight, &s) == nil:
			weight = s
		case json.Unmarshal(raw.Weight, &n) == nil:
			weight = n.String()
		default:
			return errors.New("course weight must be a string or a number")
		}
	}

	*c = CourseEntry{Course: raw.Course, Weight: weight, Grade: raw.Grade}
	return nil
}

type GPAInput struct {
	Courses []CourseEntry `json:"courses"`
}

// GPAResult holds either a GPA (Valid) or a user-facing Message.
type GPAResult struct {
	Valid          bool    `json:"-"`
	Value          float64 `json:"-"`
	GPA            string  `json:"gpa,omitempty"`
	Message        string  `json:"message,omitempty"`
	CountedEntries int     `json:"counted_entries"`
	SkippedEntries int     `json:"skipped_entries"`
	TotalWeight    float64 `json:"-"`
}
