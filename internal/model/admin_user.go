package model

import "time"

// AdminUser is a reviewer/administrator account stored in admin_users.
// Employees are HR records, not logins; only admins authenticate.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"              json:"id"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"            json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"updated_at"`
}

// TableName sets the table name.
func (AdminUser) TableName() string { return "admin_users" }
