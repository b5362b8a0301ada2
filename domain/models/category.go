package models

import "time"

type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(120);not null"`
	Slug      string `gorm:"type:varchar(140);uniqueIndex;not null"`
	CodeRange string `gorm:"type:varchar(50)"` // display label only
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}
