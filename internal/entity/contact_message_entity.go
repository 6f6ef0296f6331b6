package entity

import "time"

type ContactMessage struct {
	Id        int
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
