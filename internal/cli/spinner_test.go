package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDraws(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, true, "Rendering rink...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering rink...") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("line not cleared after Stop: %q", out)
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, true, "first")
	s.Start()
	s.SetMessage("second")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "second") {
		t.Errorf("output %q missing updated message", buf.String())
	}
}

func TestSpinnerQuietWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerTo(context.Background(), &buf, false, "Rendering rink...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("non-terminal spinner wrote %q", buf.String())
	}
}

func TestSpinnerCancelled(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx, cancel
		}},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 10*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			var buf bytes.Buffer
			s := newSpinnerTo(ctx, &buf, true, "waiting")
			s.Start()
			time.Sleep(100 * time.Millisecond)
			s.Stop()

			if !s.Cancelled() {
				t.Error("Cancelled() = false after context ended")
			}
		})
	}
}

func TestSpinnerStopNotCancelled(t *testing.T) {
	s := newSpinnerTo(context.Background(), &bytes.Buffer{}, true, "x")
	s.Start()
	s.Stop()
	if s.Cancelled() {
		t.Error("Cancelled() = true after a plain Stop")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerTo(context.Background(), &bytes.Buffer{}, true, "x")
	s.Start()
	s.Stop()
	s.Stop()
	s.StopWithSuccess("done")
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinner("never started")
	s.StopWithError("failed")
}
