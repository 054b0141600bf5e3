package enrollment

import "errors"

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseFull       = errors.New("course is fully booked")
	ErrPlanNotAvailable = errors.New("payment plan not available for this course")
	ErrInvalidDetails   = errors.New("invalid student details")
)
