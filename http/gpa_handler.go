package http

import (
	"fmt"
	"net/http"

	"petrocalc/domain"
	"petrocalc/service"
)

type GPAHandler struct {
	service *service.GPAService
}

func NewGPAHandler(service *service.GPAService) *GPAHandler {
	return &GPAHandler{service: service}
}

// CalculateGPA answers 200 for both outcomes: a degenerate input is reported
// through the message field, not as a request error.
func (h *GPAHandler) CalculateGPA(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var input domain.GPAInput
	if !decodeJSON(w, r, &input, false) {
		return
	}

	if len(input.Courses) > service.MaxCourseEntries {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("too many courses: maximum is %d", service.MaxCourseEntries))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Aggregate(input.Courses))
}
