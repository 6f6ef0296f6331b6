package model

import "time"

type ChatMessage struct {
	Id        int          `gorm:"primaryKey;autoIncrement"`
	SessionId int          `gorm:"not null;index"`
	Session   *ChatSession `gorm:"foreignKey:SessionId"`
	Message   string       `gorm:"type:text;not null"`
	Role      string       `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time    `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
