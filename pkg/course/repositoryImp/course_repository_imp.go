package repositoryImp

import (
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/course/repository"
)

type courseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CourseRepository { return &courseRepo{db} }

func (r *courseRepo) Create(c *entities.Course) error { return r.db.Create(c).Error }

func (r *courseRepo) ListByLead(leadID uint) ([]entities.Course, error) {
	var cs []entities.Course
	if err := r.db.Where("session_lead_id = ?", leadID).
		Order("year DESC, semester DESC").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *courseRepo) FindByID(id uint) (*entities.Course, error) {
	var c entities.Course
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) Update(c *entities.Course) error { return r.db.Save(c).Error }

func (r *courseRepo) DeleteCascade(id, leadID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("course_id = ? AND session_lead_id = ?", id, leadID).
			Delete(&entities.Course{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		for _, m := range []any{
			&entities.CourseMaterial{},
			&entities.CustomizationSettings{},
			&entities.PlanningSheet{},
		} {
			if err := tx.Where("course_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
