package fill

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTML element name constants for field detection.
const (
	htmlElementInput    = "input"
	htmlElementTextarea = "textarea"
)

// Notification events dispatched after a field is filled.
const (
	EventInput  = "input"
	EventChange = "change"
)

// Reason tells why a field was chosen.
type Reason int

const (
	// ReasonFocused means the field had focus.
	ReasonFocused Reason = iota

	// ReasonPasswordInput means the field was the first password input.
	ReasonPasswordInput

	// ReasonNamedTextInput means the field was a text input that looks like
	// a password field by its name, id or placeholder.
	ReasonNamedTextInput
)

// String returns a readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonFocused:
		return "focused element"
	case ReasonPasswordInput:
		return "first password input"
	case ReasonNamedTextInput:
		return "password-like text input"
	default:
		return "unknown"
	}
}

// MarshalText encodes the reason as its readable name.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a name written by MarshalText.
func (r *Reason) UnmarshalText(text []byte) error {
	for _, candidate := range []Reason{ReasonFocused, ReasonPasswordInput, ReasonNamedTextInput} {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown fill reason %q", text)
}

// Target describes the field that was filled.
type Target struct {
	// Tag is the element name, e.g. "input".
	Tag string `json:"tag"`

	// Type is the input type, empty for other elements.
	Type string `json:"type,omitempty"`

	// Name and ID are the element's name and id attributes.
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`

	// Reason is why this field was chosen.
	Reason Reason `json:"reason"`

	// Events are the notifications dispatched to the page, in order.
	Events []string `json:"events"`

	// Focus is true when the page would move focus to the field.
	Focus bool `json:"focus"`
}

// Handle validates msg and fills its password into doc.
func Handle(doc *html.Node, msg Message) (*Target, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return Fill(doc, msg.Password)
}

// HandleDocument parses an HTML document from r, handles msg and writes the
// filled document to w.
func HandleDocument(r io.Reader, w io.Writer, msg Message) (*Target, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	target, err := Handle(doc, msg)
	if err != nil {
		return nil, err
	}

	if err := html.Render(w, doc); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return target, nil
}

// Fill places password into the best field of doc.
func Fill(doc *html.Node, password string) (*Target, error) {
	if focused := findFirst(doc, func(n *html.Node) bool { return hasAttr(n, "autofocus") }); focused != nil && isEditable(focused) {
		return fillFocused(focused, password)
	}

	if n := findFirst(doc, isPasswordInput); n != nil {
		return fillInput(n, password, ReasonPasswordInput), nil
	}

	if n := findFirst(doc, isNamedTextInput); n != nil {
		return fillInput(n, password, ReasonNamedTextInput), nil
	}

	return nil, ErrNoField
}

// fillFocused fills the focused element. A focused input of another type
// (checkbox, number...) is left alone and nothing else is tried.
func fillFocused(n *html.Node, password string) (*Target, error) {
	switch {
	case n.Data == htmlElementInput:
		if !isTextLikeType(inputType(n)) {
			return nil, fmt.Errorf("%w: focused input has type %q", ErrNoField, inputType(n))
		}
		setAttr(n, "value", password)
		return newTarget(n, ReasonFocused, []string{EventInput, EventChange}, false), nil

	case isContentEditable(n):
		setText(n, password)
		return newTarget(n, ReasonFocused, []string{EventInput}, false), nil

	default: // textarea
		setText(n, password)
		return newTarget(n, ReasonFocused, []string{EventInput, EventChange}, false), nil
	}
}

func fillInput(n *html.Node, password string, reason Reason) *Target {
	setAttr(n, "value", password)
	return newTarget(n, reason, []string{EventInput, EventChange}, true)
}

func newTarget(n *html.Node, reason Reason, events []string, focus bool) *Target {
	t := &Target{
		Tag:    n.Data,
		Name:   getAttr(n, "name"),
		ID:     getAttr(n, "id"),
		Reason: reason,
		Events: events,
		Focus:  focus,
	}
	if n.Data == htmlElementInput {
		t.Type = inputType(n)
	}
	return t
}

// isEditable reports whether a focused element is one the filler handles.
func isEditable(n *html.Node) bool {
	return n.Data == htmlElementInput || n.Data == htmlElementTextarea || isContentEditable(n)
}

func isPasswordInput(n *html.Node) bool {
	return n.Data == htmlElementInput && inputType(n) == "password"
}

func isNamedTextInput(n *html.Node) bool {
	if n.Data != htmlElementInput || getAttr(n, "type") == "" || inputType(n) != "text" {
		return false
	}
	for _, key := range []string{"name", "id", "placeholder"} {
		if strings.Contains(strings.ToLower(getAttr(n, key)), "pass") {
			return true
		}
	}
	return false
}

func isTextLikeType(t string) bool {
	switch t {
	case "password", "text", "email", "":
		return true
	default:
		return false
	}
}

// inputType returns the lowercased type attribute.
func inputType(n *html.Node) string {
	return strings.ToLower(strings.TrimSpace(getAttr(n, "type")))
}

// isContentEditable reports whether n or one of its ancestors is editable.
func isContentEditable(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		v, ok := lookupAttr(n, "contenteditable")
		if !ok {
			continue
		}
		switch strings.ToLower(v) {
		case "", "true", "plaintext-only":
			return true
		default:
			return false
		}
	}
	return false
}

// findFirst returns the first element in document order matching match.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// getAttr returns the value of an attribute, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := lookupAttr(n, key)
	return ok
}

func setAttr(n *html.Node, key, val string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// setText replaces the children of n with a single text node.
func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
