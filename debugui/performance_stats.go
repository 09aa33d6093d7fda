package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/tetris"
)

// PerformanceWindow shows host frame times next to the driver's update
// timings.
type PerformanceWindow struct {
	Stats func() tetris.DriverStats

	frames  *history
	updates *history
	timer   *FrameTimer
}

func NewPerformanceWindow(stats func() tetris.DriverStats, historyFrames int) *PerformanceWindow {
	return &PerformanceWindow{
		Stats:   stats,
		frames:  newHistory(historyFrames),
		updates: newHistory(historyFrames),
		timer:   NewFrameTimer(),
	}
}

func (w *PerformanceWindow) Item() Item {
	return Item{Render: w.Render}
}

func (w *PerformanceWindow) Render() {
	w.frames.push(milliseconds(w.timer.Delta()))
	stats := w.Stats()
	w.updates.push(milliseconds(stats.LastDuration))

	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := w.frames.average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.Text(fmt.Sprintf("Updates: %d  Intents: %d  Dropped: %d", stats.UpdateCount, stats.IntentCount, stats.DroppedCount))
	imgui.Text(fmt.Sprintf("Update min/avg/max: %s / %s / %s", stats.MinDuration, stats.AvgDuration, stats.MaxDuration))
	imgui.Text(fmt.Sprintf("Update total: %s", stats.TotalDuration))

	imgui.Separator()
	if imgui.BeginTabBar("PerfTabs") {
		if imgui.BeginTabItem("Frames") {
			imgui.PlotLinesFloatPtr("##frametime", &w.frames.samples[0], int32(len(w.frames.samples)))
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Updates") {
			samples := w.updates.ordered()
			if implot.BeginPlotV("Update Time", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("update", &samples[0], int32(len(samples)))
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	imgui.End()
}

func milliseconds(d time.Duration) float32 {
	return float32(d.Seconds() * 1000)
}

// history is a fixed-size ring of samples.
type history struct {
	samples []float32
	next    int
	filled  bool
}

func newHistory(size int) *history {
	if size < 1 {
		size = 1
	}
	return &history{samples: make([]float32, size)}
}

func (h *history) push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

func (h *history) len() int {
	if h.filled {
		return len(h.samples)
	}
	return h.next
}

func (h *history) average() float32 {
	n := h.len()
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.ordered() {
		sum += v
	}
	return sum / float32(n)
}

// ordered returns the recorded samples oldest first. It always returns at
// least one element so callers can take the address of the first.
func (h *history) ordered() []float32 {
	if !h.filled {
		if h.next == 0 {
			return []float32{0}
		}
		return append([]float32(nil), h.samples[:h.next]...)
	}
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

// FrameTimer measures the time between successive Delta calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
