package entity

import "time"

// ChatSession is one chat conversation. Token is capability-bearing:
// knowing it is the only authorization needed to read or extend the session.
type ChatSession struct {
	Id           int
	SessionToken string
	UserId       *int
	CreatedAt    time.Time
}
