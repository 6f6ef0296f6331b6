package model

import "gorm.io/datatypes"

type DashboardWidget struct {
	Id       int            `gorm:"primaryKey;autoIncrement"`
	Kind     string         `gorm:"type:varchar(50);not null;index"`
	Title    string         `gorm:"type:varchar(255);not null"`
	Payload  datatypes.JSON `gorm:"not null"`
	Position int            `gorm:"not null;default:0"`
}

func (DashboardWidget) TableName() string {
	return "dashboard_widgets"
}
