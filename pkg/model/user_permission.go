package model

import "time"

// UserPermission is the actual grant: it ties a user to a permission.
// Existence of a row is the sole criterion for "has permission".
type UserPermission struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       int64     `gorm:"column:user_id;not null"`
	PermissionID int64     `gorm:"column:permission_id;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	CreatedBy    *int64    `gorm:"column:created_by"`
}

func (UserPermission) TableName() string {
	return "user_permissions"
}
