package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	FirstName    string `gorm:"not null" json:"firstname"`
	LastName     string `gorm:"not null" json:"lastname"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:student" json:"role"` // student, teacher, admin
}

// Subscription links a user to a purchased course. The composite primary
// key makes the grant an at-most-once insert.
type Subscription struct {
	UserID   uint `gorm:"primaryKey" json:"user_id"`
	CourseID uint `gorm:"primaryKey" json:"course_id"`

	CreatedAt time.Time `json:"created_at"`
}
