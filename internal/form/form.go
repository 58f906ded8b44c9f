package form

import (
	"strings"

	"github.com/nconklindev/rowify/internal/types"
)

// Field names, shared by the terminal and HTTP forms.
const (
	FieldInputString = "inputString"
	FieldFileName    = "fileName"
	FieldHeader      = "header"
)

const (
	MsgInputString = "Please enter a string."
	MsgFileName    = "Please provide a file name."
	MsgHeader      = "Please provide a header name."
)

// Page copy shared by the terminal and HTTP forms.
const (
	Title         = "Convert a sequence of numbers (or any words) to rows in Excel"
	UseCase       = "takes a string input that's separated by spaces and put them in a column in an Excel file."
	ExampleInput  = "123-456-789 098-0765-04321 fee-fi-fo-fum i-like-cheese"
	ExampleHeader = "header"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldFileName, FieldHeader, FieldInputString}

var Placeholders = map[string]string{
	FieldFileName:    "Enter file name",
	FieldHeader:      "Enter your header here",
	FieldInputString: "Enter your string here",
}

// State is the form as the host renders it: current input plus the
// errors from the last validation.
type State struct {
	Input  types.FormInput
	Errors types.FieldErrors
}

// Validate returns a message for every field that is blank after trimming.
// The result is empty when all three fields are set.
func Validate(in types.FormInput) types.FieldErrors {
	errs := types.FieldErrors{}

	if strings.TrimSpace(in.InputString) == "" {
		errs[FieldInputString] = MsgInputString
	}
	if strings.TrimSpace(in.FileName) == "" {
		errs[FieldFileName] = MsgFileName
	}
	if strings.TrimSpace(in.Header) == "" {
		errs[FieldHeader] = MsgHeader
	}

	return errs
}

// Validate replaces the state's errors with a fresh validation of its input
// and reports whether the input is valid.
func (s State) Validate() (State, bool) {
	s.Errors = Validate(s.Input)
	return s, len(s.Errors) == 0
}

// Set returns a copy of the state with the named field changed.
// Unknown field names leave the state untouched.
func (s State) Set(field, value string) State {
	switch field {
	case FieldInputString:
		s.Input.InputString = value
	case FieldFileName:
		s.Input.FileName = value
	case FieldHeader:
		s.Input.Header = value
	}
	return s
}

// Value returns the current value of the named field.
func (s State) Value(field string) string {
	switch field {
	case FieldInputString:
		return s.Input.InputString
	case FieldFileName:
		return s.Input.FileName
	case FieldHeader:
		return s.Input.Header
	}
	return ""
}

// Error returns the message for field, or "" when it has none.
func (s State) Error(field string) string {
	return s.Errors[field]
}

// Reset returns the empty state shown after a successful conversion.
func Reset() State {
	return State{Errors: types.FieldErrors{}}
}
