package dto

import "encoding/json"

type DashboardWidgetResponse struct {
	Id       int             `json:"id"`
	Kind     string          `json:"kind"`
	Title    string          `json:"title"`
	Position int             `json:"position"`
	Payload  json.RawMessage `json:"payload"`
}
