package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TaskStatus represents the status of a task
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskRunning
	TaskDone
	TaskFailed
	TaskSkipped
)

// Task represents a single step of a run
type Task struct {
	Name    string
	Status  TaskStatus
	Message string
	Details string // shown once the task is done
}

// Workflow renders a list of tasks with a spinner on the running one. When
// the writer is not a terminal nothing is animated and only the final state
// is printed.
type Workflow struct {
	writer     io.Writer
	animate    bool
	tasks      []*Task
	mu         sync.Mutex
	spinnerIdx int
	stopChan   chan struct{}
	doneChan   chan struct{}
	running    bool
	lastRender string
	startTime  time.Time
}

// NewWorkflow creates a new workflow tracker writing to w.
func NewWorkflow(w io.Writer) *Workflow {
	return &Workflow{
		writer:   w,
		animate:  isTerminal(w),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// AddTask adds a new pending task and returns its index.
func (wf *Workflow) AddTask(name string) int {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	wf.tasks = append(wf.tasks, &Task{Name: name, Status: TaskPending})
	return len(wf.tasks) - 1
}

func (wf *Workflow) set(idx int, fn func(t *Task)) {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	if idx >= 0 && idx < len(wf.tasks) {
		fn(wf.tasks[idx])
	}
}

// StartTask marks a task as running
func (wf *Workflow) StartTask(idx int, message string) {
	wf.set(idx, func(t *Task) {
		t.Status = TaskRunning
		t.Message = message
	})
}

// CompleteTask marks a task as done
func (wf *Workflow) CompleteTask(idx int, details string) {
	wf.set(idx, func(t *Task) {
		t.Status = TaskDone
		t.Details = details
	})
}

// FailTask marks a task as failed
func (wf *Workflow) FailTask(idx int, errMsg string) {
	wf.set(idx, func(t *Task) {
		t.Status = TaskFailed
		t.Message = errMsg
	})
}

// SkipTask marks a task as skipped
func (wf *Workflow) SkipTask(idx int, reason string) {
	wf.set(idx, func(t *Task) {
		t.Status = TaskSkipped
		t.Message = reason
	})
}

// Status returns the current status of a task.
func (wf *Workflow) Status(idx int) TaskStatus {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	if idx < 0 || idx >= len(wf.tasks) {
		return TaskPending
	}
	return wf.tasks[idx].Status
}

// Elapsed is the time since Start.
func (wf *Workflow) Elapsed() time.Duration {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	if wf.startTime.IsZero() {
		return 0
	}
	return time.Since(wf.startTime)
}

// Start begins the workflow display
func (wf *Workflow) Start() {
	wf.mu.Lock()
	if wf.running {
		wf.mu.Unlock()
		return
	}
	wf.running = true
	wf.startTime = time.Now()
	animate := wf.animate
	wf.mu.Unlock()

	if !animate {
		close(wf.doneChan)
		return
	}

	go func() {
		defer close(wf.doneChan)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-wf.stopChan:
				return
			case <-ticker.C:
				wf.render()
			}
		}
	}()
}

// Stop ends the animation and prints the final state of every task.
func (wf *Workflow) Stop() {
	wf.mu.Lock()
	if !wf.running {
		wf.mu.Unlock()
		return
	}
	wf.running = false
	wf.mu.Unlock()

	close(wf.stopChan)
	<-wf.doneChan
	wf.renderFinal()
}

// clearLast moves the cursor back over the previous frame.
func (wf *Workflow) clearLast(b *strings.Builder) {
	if wf.lastRender == "" {
		return
	}
	lineCount := strings.Count(wf.lastRender, "\n") + 1
	for i := 0; i < lineCount; i++ {
		b.WriteString("\033[A\033[K")
	}
}

func (wf *Workflow) render() {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	wf.spinnerIdx = (wf.spinnerIdx + 1) % len(spinnerFrames)

	var b strings.Builder
	wf.clearLast(&b)
	for _, task := range wf.tasks {
		b.WriteString(wf.renderTask(task))
		b.WriteString("\n")
	}

	output := b.String()
	wf.lastRender = strings.TrimSuffix(output, "\n")
	fmt.Fprint(wf.writer, output)
}

func (wf *Workflow) renderFinal() {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	var b strings.Builder
	wf.clearLast(&b)
	for _, task := range wf.tasks {
		b.WriteString(renderTaskFinal(task))
		b.WriteString("\n")
	}
	wf.lastRender = ""
	fmt.Fprint(wf.writer, b.String())
}

func (wf *Workflow) renderTask(task *Task) string {
	icon, nameStyle, msgStyle := statusStyle(task.Status)
	if task.Status == TaskRunning {
		icon = Secondary.Render(spinnerFrames[wf.spinnerIdx])
		msgStyle = Secondary
	}

	line := fmt.Sprintf("%s %s", icon, nameStyle.Render(task.Name))
	if task.Message != "" {
		line += " " + msgStyle.Render(task.Message)
	}
	return line
}

func renderTaskFinal(task *Task) string {
	status := task.Status
	if status == TaskRunning {
		// interrupted before completion
		status = TaskPending
	}
	icon, nameStyle, msgStyle := statusStyle(status)

	line := fmt.Sprintf("%s %s", icon, nameStyle.Render(task.Name))
	switch {
	case status == TaskDone && task.Details != "":
		line += " " + Dim.Render("→ "+task.Details)
	case (status == TaskFailed || status == TaskSkipped) && task.Message != "":
		line += " " + msgStyle.Render("→ "+task.Message)
	}
	return line
}

func statusStyle(s TaskStatus) (icon string, name, msg styleWrapper) {
	switch s {
	case TaskRunning:
		return Secondary.Render(spinnerFrames[0]), StepRunning, Secondary
	case TaskDone:
		return GetCheckMark(), StepComplete, Dim
	case TaskFailed:
		return GetCrossMark(), StepFailed, Error
	case TaskSkipped:
		return Warning.Render("⊘"), StepSkipped, Warning
	default:
		return Muted.Render("○"), StepPending, Dim
	}
}
