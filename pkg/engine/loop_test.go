package engine

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/xiform/xiform/pkg/errors"
	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
	xitest "github.com/xiform/xiform/pkg/testing"
	"github.com/xiform/xiform/pkg/widgets"
)

type recordingHandler struct {
	errs []*errors.ToolkitError
}

func (h *recordingHandler) HandleError(err *errors.ToolkitError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError)       {}

func TestLoop_FrameUpdatesBeforeRender(t *testing.T) {
	reg := widgets.NewRegistry(0)
	h := reg.Register(widgets.NewButton(10, 10, 70, 30, "Go"))
	rec := &xitest.Recorder{}
	q := NewQueue(0)
	q.Push(input.Move(40, 20))
	q.Push(input.Down(40, 20))

	loop := NewLoop(reg, rec, q)
	if !loop.Frame() {
		t.Fatal("Frame() reported quit")
	}

	if !reg.Button(h).Clicked {
		t.Error("expected both events delivered before render")
	}
	ops := rec.Ops()
	if ops[0].Op != "clear" || ops[0].Params["color"] != "0xFFFFFFFF" {
		t.Errorf("expected white clear first, got %+v", ops[0])
	}
	bg := ops[1].Params["color"]
	if bg != "0xFFFF0000" {
		t.Errorf("button drawn with %v, want click color", bg)
	}
	if rec.Presents != 1 || loop.Frames() != 1 {
		t.Errorf("Presents=%d Frames=%d, want 1 1", rec.Presents, loop.Frames())
	}
}

func TestLoop_FrameDrainLimit(t *testing.T) {
	q := NewQueue(MaxEventsPerFrame + 10)
	for i := 0; i < MaxEventsPerFrame+10; i++ {
		q.Push(input.Move(i, 0))
	}
	loop := NewLoop(widgets.NewRegistry(0), &xitest.Recorder{}, q)

	loop.Frame()
	if loop.Events() != MaxEventsPerFrame {
		t.Errorf("first frame delivered %d events, want %d", loop.Events(), MaxEventsPerFrame)
	}
	loop.Frame()
	if loop.Events() != MaxEventsPerFrame+10 {
		t.Errorf("second frame left events queued: %d", loop.Events())
	}
}

func TestLoop_QuitSkipsRender(t *testing.T) {
	rec := &xitest.Recorder{}
	q := NewQueue(0)
	q.Push(input.Event{Kind: input.Quit})
	loop := NewLoop(widgets.NewRegistry(0), rec, q)

	if loop.Frame() {
		t.Error("Frame() ignored quit")
	}
	if rec.Presents != 0 {
		t.Error("rendered after quit")
	}
}

func TestLoop_RunReplay(t *testing.T) {
	reg := widgets.NewRegistry(0)
	c := reg.Register(widgets.NewContainer(100, 100, 400, 300, graphics.ColorGray, "Drag me", true))
	events, err := input.ParseScript("down:150,110 move:200,200 up:200,200")
	if err != nil {
		t.Fatal(err)
	}

	rec := &xitest.Recorder{}
	loop := NewLoop(reg, rec, NewReplay(events))
	frames := 0
	loop.OnFrame = func(int) { frames++ }
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	if got := reg.Container(c).Origin(); got != (graphics.Point{X: 150, Y: 190}) {
		t.Errorf("container at %v, want (150,190)", got)
	}
	// initial frame plus one batch: Wait takes the first event and the
	// rest are drained without blocking
	if frames != 2 {
		t.Errorf("rendered %d frames, want 2", frames)
	}
	if loop.Timings().Count() != 2 {
		t.Errorf("recorded %d timings", loop.Timings().Count())
	}
	if st := loop.Stats(); st.Frames != 2 || st.Events != 3 {
		t.Errorf("Stats() = %+v, want 2 frames 3 events", st)
	}
}

func TestLoop_RunStopsOnQuit(t *testing.T) {
	events := []input.Event{input.Move(1, 1), {Kind: input.Quit}, input.Move(2, 2)}
	src := NewReplay(events)
	loop := NewLoop(widgets.NewRegistry(0), &xitest.Recorder{}, src)
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if src.Remaining() != 1 {
		t.Errorf("expected event after quit to stay queued, %d remain", src.Remaining())
	}
}

func TestLoop_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(widgets.NewRegistry(0), &xitest.Recorder{}, NewQueue(1))
	loop.OnFrame = func(int) { cancel() }
	if err := loop.Run(ctx); !stderrors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestLoop_PresentErrorReported(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	rec := &xitest.Recorder{PresentErr: stderrors.New("window closed")}
	loop := NewLoop(widgets.NewRegistry(0), rec, NewQueue(1))
	loop.Render()
	loop.Render()

	if len(h.errs) != 2 || h.errs[0].Kind != errors.KindSurface {
		t.Errorf("expected 2 surface errors, got %+v", h.errs)
	}
	if loop.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", loop.Frames())
	}
}
