package repositoryImp

import (
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/material/repository"
)

type materialRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MaterialRepository { return &materialRepo{db} }

func (r *materialRepo) Create(m *entities.CourseMaterial) error { return r.db.Create(m).Error }

func (r *materialRepo) ListByCourse(courseID uint) ([]entities.CourseMaterial, error) {
	var ms []entities.CourseMaterial
	if err := r.db.Where("course_id = ?", courseID).
		Order("week_number ASC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *materialRepo) FindByIDs(courseID uint, ids []uint) ([]entities.CourseMaterial, error) {
	var ms []entities.CourseMaterial
	if err := r.db.Where("course_id = ? AND material_id IN ?", courseID, ids).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *materialRepo) FindByCourseWeek(courseID uint, week int) ([]entities.CourseMaterial, error) {
	var ms []entities.CourseMaterial
	if err := r.db.Where("course_id = ? AND week_number = ?", courseID, week).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *materialRepo) Delete(id, uploadedBy uint) error {
	res := r.db.Where("material_id = ? AND uploaded_by = ?", id, uploadedBy).
		Delete(&entities.CourseMaterial{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
