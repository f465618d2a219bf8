package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourseEntry_UnmarshalJSON(t *testing.T) {
	var input GPAInput
	require.NoError(t, json.Unmarshal([]byte(`{"courses": [
		{"course": "PTE 201", "weight": "3", "grade": "A"},
		{"course": "PTE 203", "weight": 2.5, "grade": "b"},
		{"weight": null, "grade": "C"},
		{"grade": "D"}
	]}`), &input))

	require.Equal(t, []CourseEntry{
		{Course: "PTE 201", Weight: "3", Grade: "A"},
		{Course: "PTE 203", Weight: "2.5", Grade: "b"},
		{Grade: "C"},
		{Grade: "D"},
	}, input.Courses)

	var entry CourseEntry
	require.Error(t, json.Unmarshal([]byte(`{"weight": true}`), &entry))
	require.Error(t, json.Unmarshal([]byte(`{"weight": [3]}`), &entry))
}
