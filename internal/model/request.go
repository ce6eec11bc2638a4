package model

import "time"

// Request describes a single generation: what to produce and with which inputs.
type Request struct {
	// Type selects the generator.
	Type EntryType `json:"type"`

	// Options drives random passwords. For PINs only Length and
	// AvoidRepeating are read.
	Options GenerationOptions `json:"options"`

	// Text is the input of the leet-speak transformer.
	Text string `json:"text,omitempty"`
}

// NewPasswordRequest creates a request for a random or pronounceable password.
func NewPasswordRequest(opts GenerationOptions) Request {
	return Request{Type: EntryTypeRandom, Options: opts}
}

// NewPINRequest creates a request for a PIN.
func NewPINRequest(length int, avoidRepeating bool) Request {
	return Request{
		Type: EntryTypePIN,
		Options: GenerationOptions{
			Length:         length,
			AvoidRepeating: avoidRepeating,
		},
	}
}

// NewLeetRequest creates a request for a leet-speak transformation.
func NewLeetRequest(text string) Request {
	return Request{Type: EntryTypeLeet, Text: text}
}

// Result is the outcome of one request as it flows through the pipeline.
// Steps fill it in progressively.
type Result struct {
	// Request is the request that produced this result.
	Request Request `json:"request"`

	// Value is the generated password, PIN or text.
	Value string `json:"value"`

	// Strength is the canonical strength of Value.
	Strength Strength `json:"strength"`

	// GeneratedAt is when Value was produced.
	GeneratedAt time.Time `json:"generatedAt"`

	// Entry is the history entry written for this result, if any.
	Entry *HistoryEntry `json:"entry,omitempty"`

	// Copied is true once Value has been placed on the clipboard.
	Copied bool `json:"copied"`

	// Steps lists the pipeline steps that ran, in order.
	Steps []string `json:"steps,omitempty"`

	// Err is the failure that stopped the pipeline, if any.
	Err error `json:"-"`

	// ErrorMessage is Err as text, for serialized output.
	ErrorMessage string `json:"error,omitempty"`

	// Errors collects non-fatal step failures (e.g. history unavailable).
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates an empty result for the given request.
func NewResult(req Request) *Result {
	return &Result{Request: req}
}

// Failed reports whether the pipeline stopped with an error.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// AddError records a non-fatal failure.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}
