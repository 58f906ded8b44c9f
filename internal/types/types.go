package types

// FormInput holds the three text fields of the conversion form.
type FormInput struct {
	InputString string
	FileName    string
	Header      string
}

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// OutputTable is the row/column structure handed to a serializer.
// Every row produced by this module has exactly one cell.
type OutputTable [][]string

type ConversionResult struct {
	ID          string
	FileName    string
	Header      string
	Tokens      int
	Bytes       int
	Destination string
}
