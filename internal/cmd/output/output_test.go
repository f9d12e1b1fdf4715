package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type testSample struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type testListPrinter struct{}

func (testListPrinter) Header(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "-- %d --\n", count)
}

func (testListPrinter) Item(w io.Writer, item testSample) error {
	_, _ = fmt.Fprintf(w, "%d: %s\n", item.ID, item.Name)
	return nil
}

func (testListPrinter) Footer(w io.Writer, count int) {
	_, _ = fmt.Fprintln(w, "--")
}

func TestJSONHandler_HandleResults(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewJSONHandler[testSample](buf, 2)
	require.Equal(t, buf, h.Writer())

	err := h.HandleResults(testSample{ID: 1, Name: "Alice"}, testSample{ID: 2, Name: "Bob"})
	require.NoError(t, err)

	expected := `{
  "results": [
    {
      "id": 1,
      "name": "Alice"
    },
    {
      "id": 2,
      "name": "Bob"
    }
  ]
}` + "\n"
	require.Equal(t, expected, buf.String())
}

func TestJSONHandler_HandleError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewJSONHandler[testSample](buf, 0)

	require.NoError(t, h.HandleError(errors.New("something went wrong")))
	require.Equal(t, `{"error":"something went wrong"}`+"\n", buf.String())
}

func TestYAMLHandler_HandleResults(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewYAMLHandler[testSample](buf, 2)

	err := h.HandleResults(testSample{ID: 1, Name: "Alice"})
	require.NoError(t, err)

	expected := "results:\n  - id: 1\n    name: Alice\n"
	require.Equal(t, expected, buf.String())
}

func TestYAMLHandler_HandleError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewYAMLHandler[testSample](buf, 2)

	require.NoError(t, h.HandleError(errors.New("boom")))
	require.Equal(t, "error: boom\n", buf.String())
}

func TestTextHandler_HandleResults(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewTextHandler[testSample](buf, testListPrinter{})

	err := h.HandleResults(testSample{ID: 1, Name: "Alice"}, testSample{ID: 2, Name: "Bob"})
	require.NoError(t, err)
	require.Equal(t, "-- 2 --\n1: Alice\n2: Bob\n--\n", buf.String())
}

func TestTextHandler_HandleResults_Empty(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewTextHandler[testSample](buf, testListPrinter{})

	require.NoError(t, h.HandleResults())
	require.Equal(t, "No results found\n", buf.String())
}

func TestTextHandler_HandleError_PassesThrough(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := NewTextHandler[testSample](buf, testListPrinter{})

	testErr := errors.New("boom")
	require.Equal(t, testErr, h.HandleError(testErr))
}
