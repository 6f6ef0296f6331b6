package entity

type User struct {
	Id           int
	Username     string
	PasswordHash string
}
