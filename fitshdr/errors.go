// Public domain.

package fitshdr

import "fmt"

// MissingFieldError indicates a header lacked a keyword the requested
// edits need.
type MissingFieldError struct {
	Keyword string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("Missing %s", e.Keyword)
}

// FormatError indicates a value that could not be parsed in any accepted
// form.  Keyword names the header keyword or option at fault.
type FormatError struct {
	Keyword string
	Value   string
	Want    string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("Invalid %s (%s), want %s", e.Keyword, e.Value, e.Want)
}

// UnsupportedValueError indicates a well formed value outside a closed
// vocabulary.
type UnsupportedValueError struct {
	Keyword string
	Value   string
	Allowed string
}

func (e UnsupportedValueError) Error() string {
	return fmt.Sprintf("Unsupported %s (%s), allowed: %s", e.Keyword, e.Value, e.Allowed)
}
