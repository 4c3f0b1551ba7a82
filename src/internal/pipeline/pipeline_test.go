package pipeline

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"lograt/src/internal/presenter"
	"lograt/src/internal/session"
	"lograt/src/internal/source"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

// stubSource replays a fixed set of lines and closes its channel.
type stubSource struct {
	lines []string
	ch    chan source.Line
}

func newStubSource(lines ...string) *stubSource {
	return &stubSource{lines: lines, ch: make(chan source.Line, len(lines)+1)}
}

func (s *stubSource) Subscribe() <-chan source.Line { return s.ch }

func (s *stubSource) Start() error {
	go func() {
		for _, l := range s.lines {
			s.ch <- source.Line{Time: time.Now(), Text: l}
		}
		close(s.ch)
	}()
	return nil
}

func (s *stubSource) Stop() {}

func (s *stubSource) GetStats() source.SourceStats {
	return source.SourceStats{Type: "stub"}
}

func runPipeline(t *testing.T, filter *session.Filter, lines ...string) string {
	t.Helper()

	var buf bytes.Buffer
	pres := presenter.NewPrinter(&buf, presenter.PlainStyler{}, func() (int, bool) { return 0, false }, 0)

	p := New(newStubSource(lines...), filter, pres, newTestLogger())
	require.NoError(t, p.Start())

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("pipeline did not finish")
	}
	p.Shutdown()

	return buf.String()
}

func TestPipelineTracksProcessLifecycle(t *testing.T) {
	filter := session.New(session.Options{Packages: []string{"com.x"}}, newTestLogger())

	out := runPipeline(t, filter,
		"I/ActivityManager( 1): Start proc 5:com.x/u0a1 for service {c}",
		"05-19 00:00:00.000  5  5 I com.x  : hello",
	)

	assert.Contains(t, out, "Process com.x (5) created for service {c}")
	assert.Contains(t, out, "hello")

	startIdx := strings.Index(out, "Process com.x")
	logIdx := strings.Index(out, "hello")
	assert.Less(t, startIdx, logIdx, "start announcement precedes the log line")
}

func TestPipelineStopsDisplayingAfterDeath(t *testing.T) {
	filter := session.New(session.Options{Packages: []string{"com.x"}}, newTestLogger())

	out := runPipeline(t, filter,
		"I/ActivityManager( 1): Start proc 5:com.x/u0a1 for service {c}",
		"05-19 00:00:00.000  5  5 I com.x  : hello",
		"05-19 00:00:01.000  1  1 I ActivityManager: Process com.x (pid 5) has died",
		"05-19 00:00:02.000  5  5 I com.x  : hello again",
	)

	assert.Contains(t, out, "Process 5 ended for com.x")
	assert.Equal(t, 1, strings.Count(out, "hello"), "untracked owner must not display")
	assert.NotContains(t, out, "hello again")
}

func TestPipelineSkipsNoise(t *testing.T) {
	filter := session.New(session.Options{}, newTestLogger())

	out := runPipeline(t, filter,
		"--------- beginning of main",
		"I/Tag( 10): kept",
	)

	assert.NotContains(t, out, "beginning of main")
	assert.Contains(t, out, "kept")
}

func TestPipelineStats(t *testing.T) {
	filter := session.New(session.Options{}, newTestLogger())

	var buf bytes.Buffer
	pres := presenter.NewPrinter(&buf, presenter.PlainStyler{}, func() (int, bool) { return 0, false }, 0)
	p := New(newStubSource("I/Tag( 10): one", "garbage"), filter, pres, newTestLogger())
	require.NoError(t, p.Start())
	<-p.Done()
	p.Shutdown()

	stats := p.GetStats()
	assert.Equal(t, uint64(2), stats["total_lines"])
	assert.Equal(t, uint64(1), stats["total_actions"])
}
