package errors

// ErrorCode represents a unique identifier for error types.
// All codes of this module are runtime codes (E3xxx).
type ErrorCode string

const (
	E3001 ErrorCode = "E3001" // Type error
	E3003 ErrorCode = "E3003" // Index out of bounds
	E3010 ErrorCode = "E3010" // Invalid argument
	E3011 ErrorCode = "E3011" // Invalid shape
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E3001: "type error",
	E3003: "index out of bounds",
	E3010: "invalid argument",
	E3011: "invalid shape",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// CodeOf returns the error code for err, or an empty code when err did not
// originate in this module.
func CodeOf(err error) ErrorCode {
	return KindOf(err).Code()
}
