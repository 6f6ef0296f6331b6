package specification

import "gorm.io/gorm"

type BySessionToken struct {
	SessionToken string
}

func (s BySessionToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_token = ?", s.SessionToken)
}

type BySessionID struct {
	SessionID int
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}
