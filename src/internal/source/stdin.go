package source

import (
	"bufio"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/log"
)

// StdinSource reads raw lines from standard input. Empty lines are
// dropped before they reach any subscriber.
type StdinSource struct {
	in          io.Reader
	bufferSize  int64
	subscribers []chan Line
	done        chan struct{}
	closeOnce   sync.Once
	logger      *log.Logger

	// Statistics
	totalLines   atomic.Uint64
	droppedLines atomic.Uint64
	startTime    time.Time
	lastLineTime atomic.Value // time.Time
}

// NewStdinSource creates a stdin source. A non-positive bufferSize selects
// the default subscriber buffer.
func NewStdinSource(bufferSize int64, logger *log.Logger) *StdinSource {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	s := &StdinSource{
		in:         os.Stdin,
		bufferSize: bufferSize,
		done:       make(chan struct{}),
		logger:     logger,
		startTime:  time.Now(),
	}
	s.lastLineTime.Store(time.Time{})
	return s
}

func (s *StdinSource) Subscribe() <-chan Line {
	ch := make(chan Line, s.bufferSize)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *StdinSource) Start() error {
	go s.readLoop()
	s.logger.Info("msg", "Stdin source started", "component", "stdin_source")
	return nil
}

func (s *StdinSource) Stop() {
	close(s.done)
	s.closeSubscribers()
	s.logger.Info("msg", "Stdin source stopped", "component", "stdin_source")
}

// closeSubscribers is shared by Stop and end-of-input; whichever comes
// first wins.
func (s *StdinSource) closeSubscribers() {
	s.closeOnce.Do(func() {
		for _, ch := range s.subscribers {
			close(ch)
		}
	})
}

func (s *StdinSource) GetStats() SourceStats {
	lastLine, _ := s.lastLineTime.Load().(time.Time)

	return SourceStats{
		Type:         "stdin",
		TotalLines:   s.totalLines.Load(),
		DroppedLines: s.droppedLines.Load(),
		StartTime:    s.startTime,
		LastLineTime: lastLine,
		Details:      map[string]any{},
	}
}

func (s *StdinSource) readLoop() {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case <-s.done:
			return
		default:
			text := scanner.Text()
			if text == "" {
				continue
			}
			s.publish(Line{Time: time.Now(), Text: text})
		}
	}

	if err := scanner.Err(); err != nil {
		s.logger.Error("msg", "Scanner error reading stdin",
			"component", "stdin_source",
			"error", err)
	}

	// End of input: unblock the pipeline's consumer.
	s.closeSubscribers()
}

func (s *StdinSource) publish(line Line) {
	s.totalLines.Add(1)
	s.lastLineTime.Store(line.Time)

	for _, ch := range s.subscribers {
		select {
		case ch <- line:
		default:
			s.droppedLines.Add(1)
			s.logger.Debug("msg", "Dropped line - subscriber buffer full",
				"component", "stdin_source")
		}
	}
}
