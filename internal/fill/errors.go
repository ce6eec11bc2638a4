package fill

import "errors"

var (
	// ErrUnknownAction is returned when a message carries an action other
	// than fillPassword.
	ErrUnknownAction = errors.New("unknown message action")

	// ErrNoField is returned when the document has no field to fill.
	ErrNoField = errors.New("no fillable field found")

	// ErrEmptyPassword is returned when a message carries no password.
	ErrEmptyPassword = errors.New("message has no password")
)
