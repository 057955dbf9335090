package output

import (
	"bytes"
	"strings"
)

// CaptureBuffer collects output written by a Printer during tests.
type CaptureBuffer struct {
	buf bytes.Buffer
}

// NewCaptureBuffer creates a new capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer.
func (c *CaptureBuffer) Write(p []byte) (n int, err error) {
	return c.buf.Write(p)
}

// String returns the captured output.
func (c *CaptureBuffer) String() string {
	return c.buf.String()
}

// Lines returns the captured output split into lines, without the final
// trailing newline.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// Reset clears the captured output.
func (c *CaptureBuffer) Reset() {
	c.buf.Reset()
}

// Contains checks whether the captured output contains the given text.
func (c *CaptureBuffer) Contains(text string) bool {
	return strings.Contains(c.String(), text)
}

// CaptureOutput runs fn against a colorless printer whose stdout and
// stderr both land in the returned string.
func CaptureOutput(fn func(*Printer)) string {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithErrorWriter(buffer), PlainText())
	fn(printer)
	return buffer.String()
}
