package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Task slots of a render run.
const (
	taskRead = iota
	taskRender
	taskSummary
)

// RenderUI tracks the forward and compare commands: read samples, draw the
// figure and optionally export the summaries.
type RenderUI struct {
	writer    io.Writer
	quiet     bool
	workflow  *Workflow
	startTime time.Time
}

// NewRenderUI creates a new UI handler for a render run
func NewRenderUI(w io.Writer, quiet bool) *RenderUI {
	return &RenderUI{
		writer:    w,
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (r *RenderUI) active() bool { return !r.quiet && r.workflow != nil }

// StartWorkflow initializes and displays the task list.
func (r *RenderUI) StartWorkflow(mode string) {
	if r.quiet {
		return
	}
	r.startTime = time.Now()

	r.workflow = NewWorkflow(r.writer)
	r.workflow.AddTask("Reading samples")
	r.workflow.AddTask("Rendering " + mode + " figure")
	r.workflow.AddTask("Writing summary")
	r.workflow.Start()
}

// StartReading marks the read step as running
func (r *RenderUI) StartReading(path string) {
	if !r.active() {
		return
	}
	r.workflow.StartTask(taskRead, Dim.Render(path))
}

// CompleteReading marks reading as complete
func (r *RenderUI) CompleteReading(samples, datasets int) {
	if !r.active() {
		return
	}
	r.workflow.CompleteTask(taskRead, fmt.Sprintf("%d sample(s) in %d dataset(s)", samples, datasets))
}

// StartRendering marks the render step as running
func (r *RenderUI) StartRendering(output string) {
	if !r.active() {
		return
	}
	r.workflow.StartTask(taskRender, Dim.Render(output))
}

// CompleteRendering marks rendering as complete
func (r *RenderUI) CompleteRendering(output string, panels int) {
	if !r.active() {
		return
	}
	r.workflow.CompleteTask(taskRender, fmt.Sprintf("%d panel(s) → %s", panels, output))
}

// StartWriting marks the summary export as running
func (r *RenderUI) StartWriting(path string) {
	if !r.active() {
		return
	}
	r.workflow.StartTask(taskSummary, Dim.Render(path))
}

// CompleteWriting marks the summary export as complete
func (r *RenderUI) CompleteWriting(path string, count int) {
	if !r.active() {
		return
	}
	r.workflow.CompleteTask(taskSummary, fmt.Sprintf("%d summary(ies) → %s", count, path))
}

// SkipWriting marks the summary export as skipped
func (r *RenderUI) SkipWriting(reason string) {
	if !r.active() {
		return
	}
	r.workflow.SkipTask(taskSummary, reason)
}

// Fail marks the running task, or the first pending one, as failed.
func (r *RenderUI) Fail(err error) {
	if !r.active() || err == nil {
		return
	}
	for _, idx := range []int{taskRead, taskRender, taskSummary} {
		if st := r.workflow.Status(idx); st == TaskRunning || st == TaskPending {
			r.workflow.FailTask(idx, err.Error())
			return
		}
	}
}

// FinishWorkflow completes the workflow display
func (r *RenderUI) FinishWorkflow() {
	if !r.active() {
		return
	}
	r.workflow.Stop()
}

// PrintSummary prints a final summary box
func (r *RenderUI) PrintSummary(output string, dpi int, mode string) {
	if r.quiet {
		return
	}

	elapsed := time.Since(r.startTime)

	fmt.Fprintln(r.writer)

	var summary strings.Builder
	summary.WriteString(Success.Bold(true).Render("Figure Complete"))
	summary.WriteString("\n\n")
	summary.WriteString(FormatKeyValue("Mode", mode))
	summary.WriteString("\n")
	summary.WriteString(FormatKeyValue("Output", output))
	summary.WriteString("\n")
	summary.WriteString(FormatKeyValue("DPI", fmt.Sprintf("%d", dpi)))
	summary.WriteString("\n")
	summary.WriteString(FormatKeyValue("Duration", elapsed.Round(time.Millisecond).String()))

	fmt.Fprintln(r.writer, SuccessBox.Render(summary.String()))
}

// LogStep prints a simple log message (non-workflow mode)
func (r *RenderUI) LogStep(icon, message string) {
	if r.quiet {
		return
	}

	var iconStyled string
	switch icon {
	case "success":
		iconStyled = CheckMark
	case "error":
		iconStyled = CrossMark
	case "warning":
		iconStyled = WarnMark
	case "info":
		iconStyled = InfoMark
	default:
		iconStyled = Secondary.Render("→")
	}

	fmt.Fprintf(r.writer, "%s %s\n", iconStyled, message)
}

// PrintBanner prints the application banner
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, RenderGradientBanner(BannerASCII))
}
