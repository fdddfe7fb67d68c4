// Package spinning shows a spinning symbol while an AI player is thinking, and handles
// interruptions (Ctrl+C) of the binaries.
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Spinning displays a spinning symbol on a separate goroutine until Done is called.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
	out    io.Writer
	theme  []rune
	period time.Duration
}

var (
	ThemeAscii = []rune("|/-\\")
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeClock = []rune("🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛")

	// Theme used by New. It defaults to ThemeClock.
	Theme = ThemeClock

	// Period between symbol changes used by New.
	Period = 500 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program hasn't exited after gracePeriod, it resets the terminal and exits.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n")
}

// New starts a spinning display on stdout, using Theme and Period.
// It stops when Spinning.Done is called or ctx is cancelled.
func New(ctx context.Context) *Spinning {
	return NewWithWriter(ctx, os.Stdout, Theme, Period)
}

// NewWithWriter starts a spinning display on out, cycling over the symbols of theme every period.
func NewWithWriter(ctx context.Context, out io.Writer, theme []rune, period time.Duration) *Spinning {
	s := &Spinning{out: out, theme: theme, period: period}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(ctx)
	return s
}

func (s *Spinning) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	_, _ = fmt.Fprint(s.out, "\033[?25l") // Hide cursor.
	defer fmt.Fprint(s.out, "\033[?25h") // Restore cursor.

	_, _ = fmt.Fprint(s.out, "  ")
	for idx := 0; ; idx = (idx + 1) % len(s.theme) {
		_, _ = fmt.Fprintf(s.out, "\b\b%c", s.theme[idx])
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprint(s.out, "\b\b")
			return
		case <-ticker.C:
		}
	}
}

// Done stops the spinning display and waits for it to clean up. It can be called more than once.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
