package repository

import "peerplan/entities"

type CourseRepository interface {
	Create(c *entities.Course) error
	ListByLead(leadID uint) ([]entities.Course, error)
	FindByID(id uint) (*entities.Course, error)
	Update(c *entities.Course) error
	// DeleteCascade removes the course and everything hanging off it:
	// materials, customization settings, planning sheets.
	DeleteCascade(id, leadID uint) error
}
