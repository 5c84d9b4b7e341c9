package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xiform/xiform/pkg/input"
)

func TestQueue_PushPoll(t *testing.T) {
	q := NewQueue(2)
	if !q.Push(input.Move(1, 1)) || !q.Push(input.Move(2, 2)) {
		t.Fatal("push into empty queue failed")
	}
	if q.Push(input.Move(3, 3)) {
		t.Error("push into full queue succeeded")
	}
	ev, ok := q.Poll()
	if !ok || ev.Pos.X != 1 {
		t.Errorf("Poll() = %v %v, want move:1,1", ev, ok)
	}
}

func TestQueue_WaitCancelled(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := q.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want deadline exceeded", err)
	}
}

func TestQueue_CloseDrainsFirst(t *testing.T) {
	q := NewQueue(4)
	q.Push(input.Text("a"))
	q.Close()
	if q.Push(input.Text("b")) {
		t.Error("push after close succeeded")
	}

	ev, err := q.Wait(context.Background())
	if err != nil || ev.Text != "a" {
		t.Fatalf("Wait() = %v %v, want queued event", ev, err)
	}
	if _, err := q.Wait(context.Background()); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("Wait() error = %v, want ErrSourceClosed", err)
	}
}

func TestQueue_WaitWakesOnPush(t *testing.T) {
	q := NewQueue(1)
	go func() {
		time.Sleep(5 * time.Millisecond)
		q.Push(input.Press(input.KeyEnter))
	}()
	ev, err := q.Wait(context.Background())
	if err != nil || ev.Key != input.KeyEnter {
		t.Errorf("Wait() = %v %v", ev, err)
	}
}

func TestReplay(t *testing.T) {
	r := NewReplay([]input.Event{input.Move(1, 1), input.Move(2, 2)})
	if _, err := r.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if r.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", r.Remaining())
	}
	r.Poll()
	if _, err := r.Wait(context.Background()); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("exhausted Wait() error = %v", err)
	}
}
