package model

type Faq struct {
	Id       int    `gorm:"primaryKey;autoIncrement"`
	Question string `gorm:"type:text;not null"`
	Answer   string `gorm:"type:text;not null"`
	Category string `gorm:"type:varchar(100);not null;index"`
}

func (Faq) TableName() string {
	return "faqs"
}
