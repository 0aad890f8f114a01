package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ledblocks/console"
)

// SessionInspector shows the console mode, the session snapshot and the
// landed field of a machine.
type SessionInspector struct {
	machine *console.Machine
	score   *History
	speed   *History
	plot    []float32
}

// NewSessionInspector samples score and speed over the last historyFrames
// renders.
func NewSessionInspector(machine *console.Machine, historyFrames int) *SessionInspector {
	return &SessionInspector{
		machine: machine,
		score:   NewHistory(historyFrames),
		speed:   NewHistory(historyFrames),
	}
}

func (si *SessionInspector) Render() {
	session := si.machine.Session()
	snapshot := session.Snapshot()

	si.score.Push(float32(snapshot.Score))
	si.speed.Push(float32(snapshot.Speed))

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Mode: %s", si.machine.Mode()))
	imgui.Text(fmt.Sprintf("Games played: %d", si.machine.Games()))
	if last, ok := si.machine.LastSummary(); ok {
		imgui.Text(fmt.Sprintf("Last game: score %d, lines %d, speed %d", last.Score, last.Lines, last.Speed))
	}
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SnapshotTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, row := range globalReflectionCache.Rows(snapshot) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.Name)
			imgui.TableNextColumn()
			imgui.Text(row.Value)
		}

		imgui.EndTable()
	}

	imgui.Separator()
	imgui.Text("Score")
	si.plotHistory("##score", si.score)
	imgui.Text("Speed (frames per step)")
	si.plotHistory("##speed", si.speed)

	if imgui.TreeNodeStr("Landed Field") {
		for _, line := range strings.Split(strings.TrimSuffix(session.Landed().String(), "\n"), "\n") {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Config") {
		for _, row := range globalReflectionCache.Rows(session.Config()) {
			imgui.BulletText(fmt.Sprintf("%s: %s", row.Name, row.Value))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (si *SessionInspector) plotHistory(label string, h *History) {
	si.plot = append(si.plot[:0], h.Values()...)
	if len(si.plot) == 0 {
		return
	}
	imgui.PlotLinesFloatPtr(label, &si.plot[0], int32(len(si.plot)))
}
