package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/log"
)

// FileConfig configures a FileSource.
type FileConfig struct {
	// Path of the log file to read.
	Path string

	// PollInterval is how often appended data is checked for after EOF.
	PollInterval time.Duration

	// Follow keeps the source alive at EOF, waiting for appended lines.
	// When false the source closes its subscribers once the file is
	// exhausted.
	Follow bool

	// BufferSize is the subscriber channel capacity.
	BufferSize int64
}

// FileSource reads one log file line by line and optionally follows it,
// emitting appended lines as they arrive. Truncation (in-place rotation)
// restarts reading from the beginning of the file.
type FileSource struct {
	config      FileConfig
	subscribers []chan Line
	done        chan struct{}
	closeOnce   sync.Once
	wg          sync.WaitGroup
	logger      *log.Logger

	// Statistics
	totalLines   atomic.Uint64
	droppedLines atomic.Uint64
	rotations    atomic.Uint64
	startTime    time.Time
	lastLineTime atomic.Value // time.Time
}

// NewFileSource creates a file source. The file must exist by the time
// Start is called.
func NewFileSource(cfg FileConfig, logger *log.Logger) (*FileSource, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file source: path cannot be empty")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 100 * time.Millisecond
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}

	s := &FileSource{
		config:    cfg,
		done:      make(chan struct{}),
		logger:    logger,
		startTime: time.Now(),
	}
	s.lastLineTime.Store(time.Time{})
	return s, nil
}

func (s *FileSource) Subscribe() <-chan Line {
	ch := make(chan Line, s.config.BufferSize)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *FileSource) Start() error {
	f, err := os.Open(s.config.Path)
	if err != nil {
		return fmt.Errorf("file source: %w", err)
	}

	s.wg.Add(1)
	go s.readLoop(f)

	s.logger.Info("msg", "File source started",
		"component", "file_source",
		"path", s.config.Path,
		"follow", s.config.Follow)
	return nil
}

func (s *FileSource) Stop() {
	close(s.done)
	s.wg.Wait()
	s.closeSubscribers()
	s.logger.Info("msg", "File source stopped",
		"component", "file_source",
		"path", s.config.Path)
}

func (s *FileSource) GetStats() SourceStats {
	lastLine, _ := s.lastLineTime.Load().(time.Time)

	return SourceStats{
		Type:         "file",
		TotalLines:   s.totalLines.Load(),
		DroppedLines: s.droppedLines.Load(),
		StartTime:    s.startTime,
		LastLineTime: lastLine,
		Details: map[string]any{
			"path":      s.config.Path,
			"rotations": s.rotations.Load(),
		},
	}
}

func (s *FileSource) closeSubscribers() {
	s.closeOnce.Do(func() {
		for _, ch := range s.subscribers {
			close(ch)
		}
	})
}

// readLoop drains the file to EOF, then either finishes or polls for
// appended data. A partial trailing line is held back until its newline
// arrives or the source shuts down.
func (s *FileSource) readLoop(f *os.File) {
	defer s.wg.Done()
	defer f.Close()

	reader := bufio.NewReader(f)
	offset := int64(0)
	partial := ""

	for {
		chunk, err := reader.ReadString('\n')
		if chunk != "" {
			offset += int64(len(chunk))
		}

		switch {
		case err == nil:
			s.emit(partial + chunk)
			partial = ""

		case err == io.EOF:
			partial += chunk
			if !s.config.Follow {
				if partial != "" {
					s.emit(partial)
				}
				s.closeSubscribers()
				return
			}
			select {
			case <-s.done:
				return
			case <-time.After(s.config.PollInterval):
			}
			var reset bool
			offset, reset = s.checkTruncation(f, offset)
			if reset {
				reader.Reset(f)
				partial = ""
			}

		default:
			s.logger.Error("msg", "File read error",
				"component", "file_source",
				"path", s.config.Path,
				"error", err)
			s.closeSubscribers()
			return
		}

		select {
		case <-s.done:
			return
		default:
		}
	}
}

// checkTruncation rewinds to the start when the file shrank below the
// read offset, which is how in-place rotation presents itself.
func (s *FileSource) checkTruncation(f *os.File, offset int64) (int64, bool) {
	info, err := f.Stat()
	if err != nil {
		return offset, false
	}
	if info.Size() >= offset {
		return offset, false
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		s.logger.Warn("msg", "Failed to rewind truncated file",
			"component", "file_source",
			"path", s.config.Path,
			"error", err)
		return offset, false
	}

	s.rotations.Add(1)
	s.logger.Info("msg", "File truncated - restarting from beginning",
		"component", "file_source",
		"path", s.config.Path)
	return 0, true
}

func (s *FileSource) emit(text string) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return
	}

	line := Line{Time: time.Now(), Text: text}
	s.totalLines.Add(1)
	s.lastLineTime.Store(line.Time)

	for _, ch := range s.subscribers {
		select {
		case ch <- line:
		default:
			s.droppedLines.Add(1)
			s.logger.Debug("msg", "Dropped line - subscriber buffer full",
				"component", "file_source")
		}
	}
}
