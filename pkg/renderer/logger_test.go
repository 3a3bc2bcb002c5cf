package renderer

import (
	"bytes"
	"testing"
)

func TestWriterLogger_ThousandsSeparators(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)

	logger.Printf("Rays cast: %d\n", 1234567)

	if got, want := buf.String(), "Rays cast: 1,234,567\n"; got != want {
		t.Errorf("Printf() wrote %q, want %q", got, want)
	}
}
