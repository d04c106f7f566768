package models

import (
	"time"
)

type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:20;default:'staff';not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)
