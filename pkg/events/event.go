package events

import "encoding/json"

// TopicContactSubmitted carries contact form submissions from the HTTP layer
// to the mail consumer.
const TopicContactSubmitted = "contact.submitted"

type ContactSubmittedEvent struct {
	ContactId int    `json:"contact_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (e ContactSubmittedEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalContactSubmitted(data []byte) (ContactSubmittedEvent, error) {
	var e ContactSubmittedEvent
	err := json.Unmarshal(data, &e)
	return e, err
}
