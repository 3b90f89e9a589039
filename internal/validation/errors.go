package validation

import "fmt"

// Error marks input the caller can correct. Handlers map it to a 400 and
// surface the message; anything else stays a generic failure.
type Error string

func (e Error) Error() string {
	return string(e)
}

func Errorf(format string, args ...any) Error {
	return Error(fmt.Sprintf(format, args...))
}
