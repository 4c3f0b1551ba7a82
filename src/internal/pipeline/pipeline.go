package pipeline

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"lograt/src/internal/presenter"
	"lograt/src/internal/session"
	"lograt/src/internal/source"

	"github.com/lixenwraith/log"
)

// Pipeline drives lines from one source through the session filter into a
// presenter. Lines are handled strictly in arrival order by a single
// consumer goroutine, so the session state never needs locking.
type Pipeline struct {
	source source.Source
	filter *session.Filter
	pres   presenter.Presenter
	logger *log.Logger

	lines    <-chan source.Line
	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once

	// Statistics
	totalLines   atomic.Uint64
	totalActions atomic.Uint64
	startTime    time.Time
}

// New wires a source to a presenter through the session filter.
func New(src source.Source, filter *session.Filter, pres presenter.Presenter, logger *log.Logger) *Pipeline {
	return &Pipeline{
		source:    src,
		filter:    filter,
		pres:      pres,
		logger:    logger,
		done:      make(chan struct{}),
		finished:  make(chan struct{}),
		startTime: time.Now(),
	}
}

// Start subscribes to the source and begins processing. The subscription
// is taken before the source starts so no line can slip past.
func (p *Pipeline) Start() error {
	p.lines = p.source.Subscribe()
	if err := p.source.Start(); err != nil {
		return fmt.Errorf("failed to start source: %w", err)
	}

	go p.run()
	p.logger.Info("msg", "Pipeline started", "component", "pipeline")
	return nil
}

// Done is closed once the input is exhausted or the pipeline is shut down.
func (p *Pipeline) Done() <-chan struct{} {
	return p.finished
}

// Shutdown stops the source and waits for the processing loop to drain.
func (p *Pipeline) Shutdown() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.source.Stop()
	})
	<-p.finished
	p.logger.Info("msg", "Pipeline shutdown complete", "component", "pipeline")
}

// GetStats returns pipeline statistics with nested source and filter
// breakdowns.
func (p *Pipeline) GetStats() map[string]any {
	srcStats := p.source.GetStats()
	return map[string]any{
		"uptime_seconds": int(time.Since(p.startTime).Seconds()),
		"total_lines":    p.totalLines.Load(),
		"total_actions":  p.totalActions.Load(),
		"source": map[string]any{
			"type":           srcStats.Type,
			"total_lines":    srcStats.TotalLines,
			"dropped_lines":  srcStats.DroppedLines,
			"last_line_time": srcStats.LastLineTime,
			"details":        srcStats.Details,
		},
		"filter": p.filter.GetStats(),
	}
}

func (p *Pipeline) run() {
	defer close(p.finished)

	for {
		select {
		case <-p.done:
			return
		case line, ok := <-p.lines:
			if !ok {
				p.logger.Info("msg", "Input exhausted",
					"component", "pipeline",
					"total_lines", p.totalLines.Load())
				return
			}
			p.handle(line.Text)
		}
	}
}

// handle runs one line through the filter and dispatches its actions in
// order.
func (p *Pipeline) handle(text string) {
	p.totalLines.Add(1)

	for _, action := range p.filter.Handle(text) {
		p.totalActions.Add(1)
		switch action.Kind {
		case session.ActionProcessStart:
			p.pres.ProcessStart(action.Event)
		case session.ActionProcessEnd:
			p.pres.ProcessEnd(action.Event)
		case session.ActionLogLine:
			p.pres.LogLine(action.Record, action.NewTag)
		}
	}
}
