package validate

import "strings"

// Error is a validation failure whose message is returned to the client
// verbatim, so the texts here are part of the API contract.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// UserName trims and lower-cases a registration name and enforces the
// 3-20 character bounds.
func UserName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return "", &Error{Message: "Username must be at least 3 characters long"}
	}
	if len(name) > 20 {
		return "", &Error{Message: "Username must be less than 20 characters long"}
	}
	return name, nil
}

// Email trims and lower-cases an email and checks for a user@host shape.
func Email(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return "", &Error{Message: "Invalid email"}
	}
	return email, nil
}

func Password(p string) error {
	if len(p) < 6 {
		return &Error{Message: "Password must be at least 6 characters long"}
	}
	return nil
}
