package entities

import "time"

type User struct {
	UserID    uint   `gorm:"primaryKey" json:"userId"`
	Email     string `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	StudentID string `gorm:"uniqueIndex;size:64" json:"studentId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicProfile is the user representation returned to clients. The password
// hash is already excluded from JSON, but handlers return this view so the
// shape stays stable even if new internal fields are added.
func (u *User) PublicProfile() map[string]any {
	return map[string]any{
		"userId":    u.UserID,
		"email":     u.Email,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"studentId": u.StudentID,
		"createdAt": u.CreatedAt,
	}
}
