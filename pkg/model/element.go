package model

import "time"

// Element is a protectable resource instance scoped to a component.
// Parent allows a tree of elements; acyclicity is not enforced beyond the
// foreign key.
type Element struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ComponentID int64     `gorm:"column:component_id;not null"`
	RefName     string    `gorm:"column:ref_name;size:100"`
	ElemName    string    `gorm:"column:elem_name;size:100;not null"`
	Description string    `gorm:"column:description;size:500"`
	Parent      *int64    `gorm:"column:parent"`
	Ancestor    string    `gorm:"column:ancestor;size:100"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	CreatedBy   *int64    `gorm:"column:created_by"`
	ModifiedAt  time.Time `gorm:"column:modified_at;autoUpdateTime"`
	ModifiedBy  *int64    `gorm:"column:modified_by"`
	Version     int       `gorm:"column:version"`
}

func (Element) TableName() string {
	return "elements"
}
