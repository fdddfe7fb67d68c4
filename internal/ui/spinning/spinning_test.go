package spinning

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinning(t *testing.T) {
	var out syncBuffer
	s := NewWithWriter(context.Background(), &out, ThemeAscii, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	s.Done()
	s.Done()
	got := out.String()
	assert.True(t, strings.HasPrefix(got, "\033[?25l  \b\b|"), "got %q", got)
	assert.True(t, strings.HasSuffix(got, "\b\b\033[?25h"), "got %q", got)
	assert.Contains(t, got, "/")
}

func TestSpinningCancelled(t *testing.T) {
	var out syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	s := NewWithWriter(ctx, &out, ThemeMoon, time.Hour)
	cancel()
	s.Done()
	assert.Equal(t, "\033[?25l  \b\b🌑\b\b\033[?25h", out.String())
}
