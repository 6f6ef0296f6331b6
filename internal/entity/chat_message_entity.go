package entity

import "time"

// ChatMessage is one immutable turn in a session. Ordering within a session
// is by CreatedAt, ties broken by Id.
type ChatMessage struct {
	Id        int
	SessionId int
	Message   string
	Role      Role
	CreatedAt time.Time
}
