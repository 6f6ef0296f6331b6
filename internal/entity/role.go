package entity

import "fmt"

// Role is the closed set of chat turn authors. Free-form role strings from
// clients are rejected at the boundary via ParseRole.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAssistant, RoleSystem:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown chat role %q", s)
}

func (r Role) String() string {
	return string(r)
}
