package repository

import "peerplan/entities"

type CustomizationRepository interface {
	FindByCourse(courseID uint) (*entities.CustomizationSettings, error)
	Create(s *entities.CustomizationSettings) error
	Save(s *entities.CustomizationSettings) error
}
