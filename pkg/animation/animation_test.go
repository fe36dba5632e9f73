package animation

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"
)

var pets = []string{"🐶", "🐱"}

func TestNew_Defaults(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New returned an error: %v", err)
	}
	if a.MaxIterations() != 1 {
		t.Errorf("expected max iterations 1, got %d", a.MaxIterations())
	}
	expected := []string{"🕐", "🕑", "🕒", "🕓", "🕔", "🕕", "🕖", "🕗", "🕘", "🕙", "🕚", "🕛"}
	if !reflect.DeepEqual(a.Frames(), expected) {
		t.Errorf("expected %v, got %v", expected, a.Frames())
	}
	if a.Delay() != 0 {
		t.Errorf("expected no delay, got %s", a.Delay())
	}
	if a.RaiseOnFinish() {
		t.Error("raise on finish should default to false")
	}
	if a.FrameIndex() != 0 || a.CompletedIterations() != 0 {
		t.Errorf("expected zero state, got index=%d iterations=%d", a.FrameIndex(), a.CompletedIterations())
	}
}

func TestNew_Custom(t *testing.T) {
	a, err := New(WithMaxIterations(3), WithFrames(pets...), WithDelay(500*time.Millisecond))
	if err != nil {
		t.Fatalf("New returned an error: %v", err)
	}
	if a.MaxIterations() != 3 {
		t.Errorf("expected max iterations 3, got %d", a.MaxIterations())
	}
	if !reflect.DeepEqual(a.Frames(), pets) {
		t.Errorf("expected %v, got %v", pets, a.Frames())
	}
	if a.Delay() != 500*time.Millisecond {
		t.Errorf("expected delay 500ms, got %s", a.Delay())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"zero iterations", []Option{WithMaxIterations(0)}},
		{"negative iterations", []Option{WithMaxIterations(-2)}},
		{"empty frames", []Option{WithFrames()}},
		{"empty frame", []Option{WithFrames("a", "")}},
		{"negative delay", []Option{WithDelay(-1)}},
		{"zero delay", []Option{WithDelay(0)}},
		{"nil output", []Option{WithOutput(nil)}},
		{"unknown preset", []Option{WithPreset("nope")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.opts...)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
			if a != nil {
				t.Errorf("expected nil animation on failure, got %v", a)
			}
		})
	}
}

func TestNew_FramesAreCopied(t *testing.T) {
	frames := []string{"a", "b"}
	a, err := New(WithFrames(frames...))
	if err != nil {
		t.Fatalf("New returned an error: %v", err)
	}
	frames[0] = "z"
	a.Frames()[1] = "y"
	if got := a.Frames(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("frames should be immutable, got %v", got)
	}
}

func TestNext_CyclesInOrder(t *testing.T) {
	a, _ := New(WithFrames(pets...))
	expected := []string{"🐶", "🐱", "🐶", "🐱", "🐶", "🐱"}
	for i, want := range expected {
		got, err := a.Next()
		if err != nil {
			t.Fatalf("Next returned an error: %v", err)
		}
		if got != want {
			t.Errorf("call %d: expected %s, got %s", i, want, got)
		}
	}
	if a.CompletedIterations() != 3 {
		t.Errorf("expected 3 completed iterations, got %d", a.CompletedIterations())
	}
}

func TestNext_FinishesAfterMTimesN(t *testing.T) {
	for _, m := range []int{1, 2, 5} {
		for _, frames := range [][]string{{"x"}, pets, DefaultFrames} {
			a, _ := New(WithMaxIterations(m), WithFrames(frames...))
			calls := 0
			for !a.Finished() {
				if _, err := a.Next(); err != nil {
					t.Fatalf("Next returned an error: %v", err)
				}
				calls++
			}
			if calls != m*len(frames) {
				t.Errorf("m=%d n=%d: expected %d calls, got %d", m, len(frames), m*len(frames), calls)
			}
			if a.CompletedIterations() != m {
				t.Errorf("expected %d completed iterations, got %d", m, a.CompletedIterations())
			}
		}
	}
}

func TestNext_RaiseOnFinish(t *testing.T) {
	a, _ := New(WithMaxIterations(2), WithFrames(pets...), WithRaiseOnFinish(true))
	for i := 0; i < 4; i++ {
		if _, err := a.Next(); err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
	}
	if !a.Finished() {
		t.Fatal("animation should be finished")
	}
	if _, err := a.Next(); !errors.Is(err, ErrIterationExhausted) {
		t.Fatalf("expected ErrIterationExhausted, got %v", err)
	}
	if a.FrameIndex() != 0 || a.CompletedIterations() != 2 {
		t.Errorf("exhausted Next must not move the cursor, got index=%d iterations=%d", a.FrameIndex(), a.CompletedIterations())
	}
}

func TestNext_WithoutRaiseKeepsProducing(t *testing.T) {
	a, _ := New(WithFrames(pets...))
	for i := 0; i < 10; i++ {
		if _, err := a.Next(); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}
	if !a.Finished() {
		t.Error("animation should report finished")
	}
}

func TestFinished(t *testing.T) {
	a, _ := New(WithMaxIterations(3))
	if a.Finished() {
		t.Error("fresh animation should not be finished")
	}
	a.completedIterations = 3
	if !a.Finished() {
		t.Error("animation should be finished after 3 iterations")
	}

	a, _ = New(WithMaxIterations(Unbounded), WithFrames(pets...))
	for i := 0; i < 1000; i++ {
		_, _ = a.Next()
	}
	if a.Finished() {
		t.Error("unbounded animation should never finish")
	}
}

func TestReset(t *testing.T) {
	a, _ := New(WithMaxIterations(3), WithFrames(pets...), WithDelay(500*time.Millisecond))
	a.frameIndex = 1
	a.completedIterations = 2
	a.Reset()
	if a.FrameIndex() != 0 || a.CompletedIterations() != 0 {
		t.Errorf("expected zero state, got index=%d iterations=%d", a.FrameIndex(), a.CompletedIterations())
	}
	if a.MaxIterations() != 3 || a.Delay() != 500*time.Millisecond || !reflect.DeepEqual(a.Frames(), pets) {
		t.Errorf("Reset must not change configuration: %s", a)
	}
}

func TestTotalWait(t *testing.T) {
	a, _ := New(WithMaxIterations(3), WithFrames(pets...), WithDelay(time.Second))
	total, ok := a.TotalWait()
	if !ok || total != 6*time.Second {
		t.Errorf("expected 6s, got %s (ok=%v)", total, ok)
	}

	a, _ = New(WithMaxIterations(Unbounded), WithDelay(time.Second))
	if _, ok := a.TotalWait(); ok {
		t.Error("unbounded animation has no total wait")
	}
}

func TestTotalWait_Saturates(t *testing.T) {
	tests := []struct {
		name  string
		iters int
		delay time.Duration
	}{
		{"huge bound", math.MaxInt / 2, time.Second},
		{"huge delay", 3, time.Duration(math.MaxInt64 / 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(WithMaxIterations(tt.iters), WithFrames(pets...), WithDelay(tt.delay))
			if err != nil {
				t.Fatalf("New returned an error: %v", err)
			}
			total, ok := a.TotalWait()
			if !ok || total != time.Duration(math.MaxInt64) {
				t.Errorf("expected saturated total, got %s (ok=%v)", total, ok)
			}
		})
	}

	// 恰好不溢出的边界
	a, _ := New(WithMaxIterations(1), WithFrames(pets...), WithDelay(time.Duration(math.MaxInt64/2)))
	if total, ok := a.TotalWait(); !ok || total != time.Duration(math.MaxInt64/2)*2 {
		t.Errorf("expected exact total, got %s (ok=%v)", total, ok)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "bound and frames",
			opts: []Option{WithMaxIterations(3), WithFrames(pets...)},
			want: `Animation(max_iterations=3, frames=["🐶" "🐱"])`,
		},
		{
			name: "with delay",
			opts: []Option{WithMaxIterations(3), WithFrames(pets...), WithDelay(500 * time.Millisecond)},
			want: `Animation(max_iterations=3, frames=["🐶" "🐱"], delay=500ms)`,
		},
		{
			name: "with delay and raise",
			opts: []Option{WithMaxIterations(Unbounded), WithFrames("a"), WithDelay(time.Second), WithRaiseOnFinish(true)},
			want: `Animation(max_iterations=-1, frames=["a"], delay=1s, raise_on_finish=true)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("New returned an error: %v", err)
			}
			if got := a.String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNew_LogsTotalWait(t *testing.T) {
	var buf strings.Builder
	logger := newTestLogger(&buf)
	if _, err := New(WithFrames(pets...), WithMaxIterations(2), WithDelay(time.Second), WithLogger(logger)); err != nil {
		t.Fatalf("New returned an error: %v", err)
	}
	if !strings.Contains(buf.String(), "total waiting time") {
		t.Errorf("expected total waiting time debug log, got %q", buf.String())
	}
}
