package entity

type Faq struct {
	Id       int
	Question string
	Answer   string
	Category string
}
