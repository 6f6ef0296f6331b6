package specification

import "gorm.io/gorm"

type ByID struct {
	ID int
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "asc"
	if s.Desc {
		direction = "desc"
	}
	return db.Order(s.Field + " " + direction)
}
