// Package debugui provides Dear ImGui inspector windows for a running game.
// Windows only read engine state; anything they change goes through intents.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function drawn every frame the overlay is
// visible.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts skip their own key handling while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is an ordered set of items that can be shown and hidden together.
type Overlay struct {
	items   []Item
	input   InputState
	visible bool
}

func NewOverlay(items ...Item) *Overlay {
	return &Overlay{items: items}
}

// Add appends items drawn after the existing ones.
func (o *Overlay) Add(items ...Item) {
	o.items = append(o.items, items...)
}

func (o *Overlay) Toggle()       { o.visible = !o.visible }
func (o *Overlay) Visible() bool { return o.visible }

// Input returns the capture state sampled by the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}

// Render samples the input capture state and draws every item. It must be
// called between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	if !o.visible {
		o.input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}
