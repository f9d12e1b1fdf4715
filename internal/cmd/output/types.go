package output

import "io"

// Handler renders command results in one output format.
type Handler[T any] interface {
	// Writer returns the io.Writer this Handler will write to.
	Writer() io.Writer

	// HandleResults renders a collection of items.
	HandleResults(items ...T) error

	// HandleError renders the error.
	HandleError(err error) error
}

// WriteFunc writes list chrome (a header or footer) for a collection of
// count items. It does not receive or operate on individual items.
type WriteFunc func(w io.Writer, count int)

// ListPrinter renders individual items for the text handler.
type ListPrinter[T any] interface {
	// Header should be called once before the items.
	Header(w io.Writer, count int)

	// Item prints one element.
	Item(w io.Writer, item T) error

	// Footer should be called once after the items.
	Footer(w io.Writer, count int)
}

// ResultsPayload is a generic wrapper for multiple result values,
// serialized with the key "results".
type ResultsPayload[T any] struct {
	Results []T `json:"results" yaml:"results"`
}

// ErrorPayload represents an error message, serialized with the key "error".
type ErrorPayload struct {
	Error string `json:"error" yaml:"error"`
}
