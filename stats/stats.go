// Package stats records statistics about pipeline runs
package stats

import (
	"time"
)

// RunStatistics contains statistics about one run of a pipeline. It is not safe for concurrent use;
// every run records into its own RunStatistics.
type RunStatistics struct {
	started          bool
	finished         bool
	startTime        time.Time
	totalRuntime     time.Duration
	stepNames        []string
	stepRuntimes     []time.Duration
	rowsIn           []int
	rowsOut          []int
	currentStepStart time.Time
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start(numSteps int) {
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.stepNames = make([]string, 0, numSteps)
		rs.stepRuntimes = make([]time.Duration, 0, numSteps)
		rs.rowsIn = make([]int, 0, numSteps)
		rs.rowsOut = make([]int, 0, numSteps)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.totalRuntime = time.Since(rs.startTime)
	rs.finished = true
}

// StartStep tracks the beginning of a step
func (rs *RunStatistics) StartStep(name string, numRows int) {
	rs.currentStepStart = time.Now()
	rs.stepNames = append(rs.stepNames, name)
	rs.rowsIn = append(rs.rowsIn, numRows)
}

// EndStep tracks the end of the most recently started step
func (rs *RunStatistics) EndStep(numRows int) {
	rs.stepRuntimes = append(rs.stepRuntimes, time.Since(rs.currentStepStart))
	rs.rowsOut = append(rs.rowsOut, numRows)
}

// GetStartTime returns the start time of the run
func (rs *RunStatistics) GetStartTime() time.Time {
	return rs.startTime
}

// GetRuntime returns the running time of the run
func (rs *RunStatistics) GetRuntime() time.Duration {
	if rs.finished {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime)
}

// GetNumStepsCompleted returns the number of steps which ran to completion
func (rs *RunStatistics) GetNumStepsCompleted() int {
	return len(rs.stepRuntimes)
}

// GetStepNames returns the names of the steps started so far
func (rs *RunStatistics) GetStepNames() []string {
	return rs.stepNames
}

// GetStepRuntimes returns the runtime of every completed step
func (rs *RunStatistics) GetStepRuntimes() []time.Duration {
	return rs.stepRuntimes
}

// GetRowsIn returns the number of input rows of every started step
func (rs *RunStatistics) GetRowsIn() []int {
	return rs.rowsIn
}

// GetRowsOut returns the number of output rows of every completed step
func (rs *RunStatistics) GetRowsOut() []int {
	return rs.rowsOut
}
