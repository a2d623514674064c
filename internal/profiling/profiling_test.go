package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		stop := Track("stage")
		time.Sleep(time.Millisecond)
		stop()
	}
	got := Snapshot()["stage"]
	if got < 3*time.Millisecond {
		t.Fatalf("got %v, want at least 3ms", got)
	}
}

func TestTopNOrdersSlowestFirst(t *testing.T) {
	Reset()
	mu.Lock()
	totals["fast"] = time.Millisecond
	totals["slow"] = 5 * time.Millisecond
	totals["mid"] = 2 * time.Millisecond
	mu.Unlock()

	got := TopN(2)
	if !strings.HasPrefix(got, "slow:5.0ms") || !strings.Contains(got, "mid:2.0ms") || strings.Contains(got, "fast") {
		t.Fatalf("unexpected summary %q", got)
	}
	if TopN(10) == "" {
		t.Fatal("TopN larger than the set should still list every stage")
	}
	Reset()
	if len(Snapshot()) != 0 {
		t.Fatal("Reset left entries behind")
	}
}
