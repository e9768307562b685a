package repositoryImp

import (
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ExistsByEmailOrStudentID(email, studentID string) (bool, error) {
	var n int64
	if err := r.db.Model(&entities.User{}).
		Where("email = ? OR student_id = ?", email, studentID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
