package entity

// DashboardWidget is a seeded block of display data for the student
// dashboard (courses, deadlines, announcements, schedule, resources).
// Payload is an opaque JSON document rendered by the client.
type DashboardWidget struct {
	Id       int
	Kind     string
	Title    string
	Payload  []byte
	Position int
}
