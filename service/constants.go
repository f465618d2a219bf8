package service

const (
	ResultDecimals = 4 // decimales del resultado de un cálculo
	GPADecimals    = 2

	MaxCourseEntries = 200 // máximo de cursos por request

	DegenerateGPAMessage = "Please enter valid unit loads for at least one course."

	calcCacheKeyPrefix = "petrocalc:calc:"
)
