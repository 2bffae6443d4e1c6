package model

import "time"

// Permission is the grantable unit: "operation O is grantable on element E".
// Distinct from the grant itself (UserPermission).
type Permission struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ElemID      int64     `gorm:"column:elem_id;not null"`
	OperationID int64     `gorm:"column:operation_id;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	CreatedBy   *int64    `gorm:"column:created_by"`
}

func (Permission) TableName() string {
	return "permissions"
}
