package debugui

import "github.com/plus3/ledblocks/console"

// NewConsoleLayer builds the standard panels for machine.
func NewConsoleLayer(machine *console.Machine, state *ControlState) *Layer {
	return NewLayer(
		NewSessionInspector(machine, 240),
		NewSchedulerStats(machine.Scheduler(), 120),
		NewControls(machine, state),
	)
}
