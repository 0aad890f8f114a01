package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ledblocks/scheduler"
)

// Columns of the task table.
const (
	ColumnName = iota
	ColumnRuns
	ColumnAvg
	ColumnMin
	ColumnMax
)

// SchedulerStats shows per-task execution statistics and the tick rate.
type SchedulerStats struct {
	sched     *scheduler.Scheduler
	timer     *FrameTimer
	rate      *History
	lastTicks uint64
}

func NewSchedulerStats(sched *scheduler.Scheduler, historyFrames int) *SchedulerStats {
	return &SchedulerStats{
		sched: sched,
		timer: NewFrameTimer(),
		rate:  NewHistory(historyFrames),
	}
}

func (ss *SchedulerStats) Render() {
	stats := ss.sched.GetStats()

	delta := ss.timer.GetDeltaTime()
	if delta > 0 {
		ss.rate.Push(float32(stats.Triggers-ss.lastTicks) / delta)
	}
	ss.lastTicks = stats.Triggers

	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Tasks: %d", stats.TaskCount))
	imgui.Text(fmt.Sprintf("Triggers: %d", stats.Triggers))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))
	imgui.Text(fmt.Sprintf("Pending: 0x%02x", uint32(ss.sched.Pending())))
	imgui.Text(fmt.Sprintf("Tick rate: %.0f/s", ss.rate.Average()))

	if values := ss.rate.Values(); len(values) > 0 {
		imgui.PlotLinesFloatPtr("##tickrate", &values[0], int32(len(values)))
	}
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Tasks", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		tasks := stats.Tasks
		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			SortTaskStats(tasks, int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionDescending)
		}

		for _, task := range tasks {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%s (0x%02x)", task.Name, uint32(task.Bit)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", task.ExecutionCount))

			imgui.TableNextColumn()
			imgui.Text(millis(task.AvgDuration))

			imgui.TableNextColumn()
			imgui.Text(millis(task.MinDuration))

			imgui.TableNextColumn()
			imgui.Text(millis(task.MaxDuration))
		}
		imgui.EndTable()
	}

	imgui.End()
}

// SortTaskStats orders tasks by one of the table columns.
func SortTaskStats(tasks []scheduler.TaskStats, column int, descending bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left, right := tasks[i], tasks[j]
		if descending {
			left, right = right, left
		}

		switch column {
		case ColumnRuns:
			return left.ExecutionCount < right.ExecutionCount
		case ColumnAvg:
			return left.AvgDuration < right.AvgDuration
		case ColumnMin:
			return left.MinDuration < right.MinDuration
		case ColumnMax:
			return left.MaxDuration < right.MaxDuration
		default:
			return left.Name < right.Name
		}
	})
}

func millis(d time.Duration) string {
	if d == time.Duration(1<<63-1) {
		return "-"
	}
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
