package decor

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewRenderer(WithWriter(buf)), buf
}

func TestBoxCentersText(t *testing.T) {
	r, buf := newTestRenderer()
	r.Box("hello", 11)

	expected := "┌─────────┐\n" +
		"│  hello  │\n" +
		"└─────────┘\n"
	assert.Equal(t, expected, buf.String())
}

func TestBoxOddRemainderGoesRight(t *testing.T) {
	r, buf := newTestRenderer()
	r.Box("hi", 9)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "│  hi   │", lines[1])
}

func TestHeaderFramedByBlankLines(t *testing.T) {
	r, buf := newTestRenderer()
	r.Header("Section", 20)

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "", lines[0])
	assert.Contains(t, lines[2], "Section")
	assert.Equal(t, "", lines[4])
}

func TestSeparator(t *testing.T) {
	r, buf := newTestRenderer()
	r.Separator("=", 10)
	assert.Equal(t, strings.Repeat("=", 10)+"\n", buf.String())
}

func TestTableLayout(t *testing.T) {
	r, buf := newTestRenderer()
	r.Table([]string{"Name|Age", "Alice|30", "Bob|25"})

	expected := "| Name  | Age |\n" +
		"|-------|-----|\n" +
		"| Alice | 30  |\n" +
		"| Bob   | 25  |\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableColumnWidthSpansAllRows(t *testing.T) {
	r, buf := newTestRenderer()
	r.Table([]string{"H|X", "much-longer-cell|Y"})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	// Header cell padded to the widest cell in its column.
	assert.Equal(t, "| H                | X |", lines[0])
}

func TestTableShortRowRendersEmptyCells(t *testing.T) {
	r, buf := newTestRenderer()
	r.Table([]string{"A|B|C", "1|2"})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| 1 | 2 |   |", lines[2])
}

func TestTableMeasuresVisualWidth(t *testing.T) {
	r, buf := newTestRenderer()
	colored := "\x1b[32mok\x1b[0m"
	r.Table([]string{"Status|Name", colored + "|Alice"})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	// "Status" (6) stays the widest; the colored cell pads to it.
	assert.Equal(t, "| "+colored+"     | Alice |", lines[2])
}

func TestTableEmptyInput(t *testing.T) {
	r, buf := newTestRenderer()
	r.Table(nil)
	assert.Empty(t, buf.String())
}

func TestProgressPartial(t *testing.T) {
	r, buf := newTestRenderer()
	r.Progress("copy", 5, 10, 10)

	assert.Equal(t, "\rcopy: [=====>    ] 50%", buf.String())
}

func TestProgressComplete(t *testing.T) {
	r, buf := newTestRenderer()
	r.Progress("copy", 10, 10, 10)

	assert.Equal(t, "\rcopy: [==========] 100%\n", buf.String())
}

func TestProgressZero(t *testing.T) {
	r, buf := newTestRenderer()
	r.Progress("copy", 0, 10, 10)

	assert.Equal(t, "\rcopy: [>         ] 0%", buf.String())
}

func TestProgressClampsOvershoot(t *testing.T) {
	r, buf := newTestRenderer()
	r.Progress("copy", 15, 10, 10)

	assert.True(t, strings.HasSuffix(buf.String(), "100%\n"))
}

func TestSpinReturnsWhenNotAlive(t *testing.T) {
	r, _ := newTestRenderer()
	done := make(chan struct{})
	go func() {
		r.Spin(context.Background(), "working", func() bool { return false })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("spinner did not stop for a dead task")
	}
}

func TestSpinHonorsContextCancel(t *testing.T) {
	r, _ := newTestRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Spin(ctx, "working", func() bool { return true })
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("spinner ignored context cancellation")
	}
}

func TestConfirm(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		defaultYes bool
		expected   bool
	}{
		{name: "explicit yes", input: "y\n", defaultYes: false, expected: true},
		{name: "full yes any case", input: "YES\n", defaultYes: false, expected: true},
		{name: "explicit no", input: "n\n", defaultYes: true, expected: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, expected: true},
		{name: "empty takes default no", input: "\n", defaultYes: false, expected: false},
		{name: "eof takes default", input: "", defaultYes: true, expected: true},
		{name: "garbage declines", input: "maybe\n", defaultYes: true, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, buf := newTestRenderer()
			got, err := r.Confirm(strings.NewReader(tc.input), "Proceed?", tc.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)

			hint := "[y/N]"
			if tc.defaultYes {
				hint = "[Y/n]"
			}
			assert.Contains(t, buf.String(), "Proceed? "+hint)
		})
	}
}

func TestPIDAliveForOwnProcess(t *testing.T) {
	alive := PIDAlive(os.Getpid())
	assert.True(t, alive())
}

func TestPIDAliveForBogusPID(t *testing.T) {
	// PID values this large are not allocated on any supported platform.
	alive := PIDAlive(1 << 30)
	assert.False(t, alive())
}
