package repository

import "peerplan/entities"

type PlanningRepository interface {
	Create(p *entities.PlanningSheet) error
	FindByID(id uint) (*entities.PlanningSheet, error)
	FindByCourseWeek(courseID uint, week int) (*entities.PlanningSheet, error)
	ListByCourse(courseID uint) ([]entities.PlanningSheet, error)
	// ListPrevious returns sheets with week strictly below the given one,
	// most recent week first, at most limit rows.
	ListPrevious(courseID uint, beforeWeek, limit int) ([]entities.PlanningSheet, error)
	Save(p *entities.PlanningSheet) error
	Delete(id uint) error
}
