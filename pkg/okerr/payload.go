package okerr

// Fields is a string-keyed error payload of arbitrary shape. A string
// "message" entry becomes the message of the coerced error.
type Fields map[string]any

// List is an ordered error payload, e.g. a list of validation messages.
type List []any

// Flag marks a failure that carries no information.
type Flag bool

// Flagged is the only meaningful Flag value.
const Flagged Flag = true

// ID is the payload produced by ErrID.
type ID struct {
	ID string `json:"id"`
}
