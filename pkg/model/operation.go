package model

import "time"

// Operation is a named action applicable across elements. The vocabulary is
// global, not scoped per component.
type Operation struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RefName     string    `gorm:"column:ref_name;size:20"`
	Name        string    `gorm:"column:name;size:20;unique;not null"`
	Description string    `gorm:"column:description;size:500"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	CreatedBy   *int64    `gorm:"column:created_by"`
	ModifiedAt  time.Time `gorm:"column:modified_at;autoUpdateTime"`
	ModifiedBy  *int64    `gorm:"column:modified_by"`
	Version     int       `gorm:"column:version"`
	AppID       *int64    `gorm:"column:app_id"`
}

func (Operation) TableName() string {
	return "operations"
}

// SeededOperations is the fixed operation vocabulary granted on every new
// element.
var SeededOperations = []string{"view", "edit", "delete", "manage"}
