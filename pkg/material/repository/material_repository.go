package repository

import "peerplan/entities"

type MaterialRepository interface {
	Create(m *entities.CourseMaterial) error
	ListByCourse(courseID uint) ([]entities.CourseMaterial, error)
	// FindByIDs returns the given materials, restricted to one course.
	FindByIDs(courseID uint, ids []uint) ([]entities.CourseMaterial, error)
	FindByCourseWeek(courseID uint, week int) ([]entities.CourseMaterial, error)
	Delete(id, uploadedBy uint) error
}
