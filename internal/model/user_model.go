package model

type User struct {
	Id           int    `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

func (User) TableName() string {
	return "users"
}
