// Package debugui provides Dear ImGui panels for inspecting a running console.
// Panels are collected in a Layer that the host renders once per frame,
// between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Panel renders one ImGui window.
type Panel interface {
	Render()
}

// PanelFunc adapts a function to the Panel interface.
type PanelFunc func()

func (f PanelFunc) Render() {
	f()
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Layer is an ordered set of panels.
type Layer struct {
	panels []Panel
	input  InputState
	hidden bool
}

// NewLayer returns a layer rendering panels in order.
func NewLayer(panels ...Panel) *Layer {
	return &Layer{panels: panels}
}

// Add appends p to the layer.
func (l *Layer) Add(p Panel) {
	l.panels = append(l.panels, p)
}

// Len returns the number of panels.
func (l *Layer) Len() int {
	return len(l.panels)
}

// SetHidden hides or shows every panel.
func (l *Layer) SetHidden(hidden bool) {
	l.hidden = hidden
}

// Hidden reports whether the layer is hidden.
func (l *Layer) Hidden() bool {
	return l.hidden
}

// Input returns the capture state recorded by the last Render.
func (l *Layer) Input() InputState {
	return l.input
}

// Render updates the input state and renders every panel.
func (l *Layer) Render() {
	io := imgui.CurrentIO()
	l.input.WantCaptureMouse = io.WantCaptureMouse()
	l.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if l.hidden {
		return
	}
	for _, p := range l.panels {
		p.Render()
	}
}
