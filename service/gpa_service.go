package service

import (
	"math"
	"strconv"
	"strings"

	"petrocalc/domain"
	"petrocalc/numeric"
)

// gradeScale maps letter grades to grade points on the five-point scale.
var gradeScale = map[string]float64{
	"A": 5,
	"B": 4,
	"C": 3,
	"D": 2,
	"E": 1,
	"F": 0,
}

// GradePoint returns the points for a letter grade, ignoring case.
func GradePoint(grade string) (float64, bool) {
	points, ok := gradeScale[strings.ToUpper(grade)]
	return points, ok
}

type GPAService struct{}

func NewGPAService() *GPAService {
	return &GPAService{}
}

// Aggregate folds course entries into a weighted GPA:
// sum(gradePoint * weight) / sum(weight). Rows with an unknown grade or a
// weight that is not a number are skipped. When the counted weight adds up
// to exactly zero the result carries DegenerateGPAMessage instead of a value.
func (s *GPAService) Aggregate(entries []domain.CourseEntry) domain.GPAResult {
	var totalPoints, totalWeight float64
	counted := 0

	for _, entry := range entries {
		points, ok := GradePoint(entry.Grade)
		if !ok {
			continue
		}
		weight := numeric.ParsePrefix(entry.Weight)
		if math.IsNaN(weight) {
			continue
		}
		totalPoints += float64(points * weight)
		totalWeight += weight
		counted++
	}

	result := domain.GPAResult{
		CountedEntries: counted,
		SkippedEntries: len(entries) - counted,
		TotalWeight:    totalWeight,
	}

	if totalWeight == 0 {
		result.Message = DegenerateGPAMessage
		return result
	}

	result.Valid = true
	result.GPA = numeric.Fixed(totalPoints/totalWeight, GPADecimals)
	// Value is read back from the printed GPA so the two never disagree.
	result.Value, _ = strconv.ParseFloat(result.GPA, 64)
	return result
}
