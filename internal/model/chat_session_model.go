package model

import "time"

type ChatSession struct {
	Id           int       `gorm:"primaryKey;autoIncrement"`
	UserId       *int      `gorm:"index"`
	SessionToken string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
