package fill

import "fmt"

// ActionFillPassword is the action of a fill message.
const ActionFillPassword = "fillPassword"

// Message asks the receiving page to fill a password.
type Message struct {
	// Action must be ActionFillPassword.
	Action string `json:"action"`

	// Password is the value to fill.
	Password string `json:"password"`
}

// NewMessage creates a fill message for password.
func NewMessage(password string) Message {
	return Message{Action: ActionFillPassword, Password: password}
}

// Validate checks the action and password.
func (m Message) Validate() error {
	if m.Action != ActionFillPassword {
		return fmt.Errorf("%w: %q", ErrUnknownAction, m.Action)
	}
	if m.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// Response is sent back once a message has been handled.
type Response struct {
	Success bool `json:"success"`

	// Target is the filled field. Nil when Success is false.
	Target *Target `json:"target,omitempty"`

	// Error explains a failure.
	Error string `json:"error,omitempty"`
}

// NewResponse builds the response to a handled message.
func NewResponse(target *Target, err error) Response {
	if err != nil {
		return Response{Error: err.Error()}
	}
	return Response{Success: true, Target: target}
}
