package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/console"
)

// ControlState is shared between the controls panel and the host loop.
type ControlState struct {
	Paused bool
	// StepRequested asks the host to run one scheduler period while paused.
	StepRequested bool
	// TicksPerUpdate is the number of scheduler periods per host update.
	TicksPerUpdate int32
}

// TakeStep reports and clears a pending single-step request.
func (cs *ControlState) TakeStep() bool {
	step := cs.StepRequested
	cs.StepRequested = false
	return step
}

// Controls pauses and steps the machine and presses its buttons.
type Controls struct {
	machine *console.Machine
	state   *ControlState
}

func NewControls(machine *console.Machine, state *ControlState) *Controls {
	return &Controls{machine: machine, state: state}
}

func (c *Controls) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 200), imgui.CondOnce)

	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if c.state.Paused {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		if imgui.Button("Resume") {
			c.state.Paused = false
		}
		imgui.PopStyleColor()
		imgui.SameLine()
		if imgui.Button("Step") {
			c.state.StepRequested = true
		}
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		if imgui.Button("Pause") {
			c.state.Paused = true
		}
		imgui.PopStyleColor()
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.SetNextItemWidth(100)
	if imgui.InputInt("Ticks/update", &c.state.TicksPerUpdate) && c.state.TicksPerUpdate < 1 {
		c.state.TicksPerUpdate = 1
	}

	imgui.Separator()
	for i, b := range []blockgame.Button{blockgame.ButtonLeft, blockgame.ButtonRight, blockgame.ButtonUp, blockgame.ButtonDown} {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.Button(b.String()) {
			c.machine.Press(b)
		}
	}

	imgui.End()
}
