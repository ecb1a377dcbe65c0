package tui

import (
	"strings"
	"sync"
	"testing"

	"orbrun/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hello")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "hello") {
		t.Errorf("First line should start with drawn text, got %q", lines[0])
	}
}

func TestRenderScreenConcurrent(t *testing.T) {
	// Each SSH session renders from its own goroutine; the shared style
	// cache must tolerate that. Distinct colors per goroutine force
	// cache writes on every worker.
	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			s := core.NewScreen(40, 10)
			for i := 0; i < 50; i++ {
				color := core.NewRGB(uint32(worker*1000 + i))
				for x := 0; x < s.Width(); x++ {
					s.SetCell(x, i%s.Height(), '▓', color)
				}
				if RenderScreen(s) == "" {
					t.Error("Render produced empty output")
					return
				}
			}
		}(worker)
	}
	wg.Wait()
}
