package repositoryImp

import (
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/customization/repository"
)

type customizationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CustomizationRepository { return &customizationRepo{db} }

func (r *customizationRepo) FindByCourse(courseID uint) (*entities.CustomizationSettings, error) {
	var s entities.CustomizationSettings
	if err := r.db.Where("course_id = ?", courseID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *customizationRepo) Create(s *entities.CustomizationSettings) error {
	return r.db.Create(s).Error
}

func (r *customizationRepo) Save(s *entities.CustomizationSettings) error {
	return r.db.Save(s).Error
}
