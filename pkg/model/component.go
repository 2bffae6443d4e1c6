package model

import "time"

// Component is a coarse namespace grouping elements (e.g. "experiment", "model")
type Component struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:20;unique;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Component) TableName() string {
	return "components"
}
