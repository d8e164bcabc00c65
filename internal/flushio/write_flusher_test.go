package flushio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArcE404/siewlang/internal/flushio"
)

// plainWriter deliberately exposes nothing but Write, so it takes the
// bufio path.
type plainWriter struct{ data []byte }

func (pw *plainWriter) Write(p []byte) (int, error) {
	pw.data = append(pw.data, p...)
	return len(p), nil
}

func TestNewWriteFlusher_buffer(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)

	_, err := io.WriteString(wf, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.String(), "in-memory buffers need no flush")
	require.NoError(t, wf.Flush())
}

func TestNewWriteFlusher_buffered(t *testing.T) {
	var pw plainWriter
	wf := flushio.NewWriteFlusher(&pw)

	_, err := io.WriteString(wf, "hi")
	require.NoError(t, err)
	assert.Empty(t, pw.data, "small writes sit in the bufio layer")

	require.NoError(t, wf.Flush())
	assert.Equal(t, "hi", string(pw.data))
}

func TestNewWriteFlusher_passthrough(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)
	assert.Equal(t, wf, flushio.NewWriteFlusher(wf), "a WriteFlusher passes through")
}

func TestNewWriteFlusher_discard(t *testing.T) {
	wf := flushio.NewWriteFlusher(io.Discard)
	n, err := io.WriteString(wf, "gone")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.NoError(t, wf.Flush())
}
