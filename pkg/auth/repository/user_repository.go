package repository

import "peerplan/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByEmail(email string) (*entities.User, error)
	FindByID(id uint) (*entities.User, error)
	ExistsByEmailOrStudentID(email, studentID string) (bool, error)
}
