package repositoryImp

import (
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/planning/repository"
)

type planningRepo struct {
	db *gorm.DB
}

func NewPlanningRepository(db *gorm.DB) repository.PlanningRepository {
	return &planningRepo{db: db}
}

func (r *planningRepo) Create(p *entities.PlanningSheet) error {
	return r.db.Create(p).Error
}

func (r *planningRepo) FindByID(id uint) (*entities.PlanningSheet, error) {
	var p entities.PlanningSheet
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planningRepo) FindByCourseWeek(courseID uint, week int) (*entities.PlanningSheet, error) {
	var p entities.PlanningSheet
	err := r.db.Where("course_id = ? AND week_number = ?", courseID, week).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planningRepo) ListByCourse(courseID uint) ([]entities.PlanningSheet, error) {
	var out []entities.PlanningSheet
	err := r.db.Where("course_id = ?", courseID).Order("week_number ASC").Find(&out).Error
	return out, err
}

func (r *planningRepo) ListPrevious(courseID uint, beforeWeek, limit int) ([]entities.PlanningSheet, error) {
	var out []entities.PlanningSheet
	err := r.db.Where("course_id = ? AND week_number < ?", courseID, beforeWeek).
		Order("week_number DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *planningRepo) Save(p *entities.PlanningSheet) error {
	return r.db.Save(p).Error
}

func (r *planningRepo) Delete(id uint) error {
	return r.db.Delete(&entities.PlanningSheet{}, id).Error
}
