package generate

import (
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"deepnotes/internal/app/event"
)

// progressSink renders a run's status events as a single progress bar.
// Warnings and errors still pass through to the wrapped sink so they
// are not swallowed by the bar.
type progressSink struct {
	mu        sync.Mutex
	container *mpb.Progress
	bar       *mpb.Bar
	fallback  event.Sink
	total     int64
	current   int64
}

func newProgress(total int64, fallback event.Sink) *progressSink {
	container := mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	bar := container.AddBar(total,
		mpb.PrependDecorators(
			decor.Name("generating notes ", decor.WC{C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
	)

	return &progressSink{
		container: container,
		bar:       bar,
		fallback:  fallback,
		total:     total,
	}
}

func (p *progressSink) Emit(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Kind {
	case event.KindStatus:
		p.current++
		if p.current >= p.total {
			p.total = p.current + 1
			p.bar.SetTotal(p.total, false)
		}
		p.bar.Increment()
	case event.KindDebug:
		// not rendered in progress mode
	case event.KindFinish:
		p.bar.SetTotal(p.current, true)
	default:
		p.fallback.Emit(e)
	}
}

// Wait blocks until the bar has rendered its final state.
func (p *progressSink) Wait() {
	p.mu.Lock()
	if p.bar != nil && !p.bar.Completed() {
		p.bar.Abort(true)
	}
	p.mu.Unlock()

	p.container.Wait()
}
