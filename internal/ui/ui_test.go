package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestColorAppliesANSICodes(t *testing.T) {
	got := Color("hello", FgGreen)
	want := FgGreen + "hello" + Reset
	if got != want {
		t.Fatalf("Color() = %q, want %q", got, want)
	}
}

func TestColorDisabled(t *testing.T) {
	Init(true)
	defer Init(false)
	if got := Color("hello", FgRed); got != "hello" {
		t.Fatalf("Color() with color disabled = %q", got)
	}
}

func TestSummaryUI_PrintReport(t *testing.T) {
	tests := []struct {
		name   string
		report ChiSquareReport
		quiet  bool
		want   []string
	}{
		{
			name: "two datasets",
			report: ChiSquareReport{
				Mode:  "comparison/phase",
				Input: "model.dat",
				Rows: []ChiSquareRow{
					{Dataset: 1, Name: "LC blue", Chi2: 0.75, Points: 2},
					{Dataset: 2, Name: "LC red", Chi2: 0.25, Points: 2},
				},
			},
			want: []string{"Chi-square Summary", "comparison/phase", "model.dat", "LC blue", "0.7500000000", "75.0%", "25.0%", "(2 points)", "1.0000000000"},
		},
		{
			name:   "no rows",
			report: ChiSquareReport{Mode: "comparison/time"},
			want:   []string{"Chi-square Summary", "no datasets to summarize"},
		},
		{
			name:   "quiet",
			report: ChiSquareReport{Rows: []ChiSquareRow{{Dataset: 1}}},
			quiet:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewSummaryUI(&buf, tt.quiet).PrintReport(tt.report)
			out := buf.String()
			if tt.quiet {
				if out != "" {
					t.Fatalf("quiet mode printed %q", out)
				}
				return
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestSummaryUI_ZeroTotalHasNoShare(t *testing.T) {
	var buf bytes.Buffer
	NewSummaryUI(&buf, false).PrintReport(ChiSquareReport{
		Rows: []ChiSquareRow{{Dataset: 3, Chi2: 0}},
	})
	if !strings.Contains(buf.String(), "0.0%") {
		t.Fatalf("expected 0.0%% share:\n%s", buf.String())
	}
}

func TestSummaryUI_PrintSimpleReport(t *testing.T) {
	var buf bytes.Buffer
	// simple reports print even when quiet
	NewSummaryUI(&buf, true).PrintSimpleReport(ChiSquareReport{
		Rows: []ChiSquareRow{{Dataset: 1, Chi2: 0.5}, {Dataset: 2, Chi2: 1.2345678902}},
	})
	want := "chi2 from dataset 1 = 0.5000000000\nchi2 from dataset 2 = 1.2345678902\ntotal chi2 = 1.7345678902\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderShareBarWidth(t *testing.T) {
	for _, share := range []float64{-1, 0, 0.33, 1, 2} {
		bar := renderShareBar(share, 10)
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Fatalf("share %v: bar has %d cells", share, n)
		}
	}
}

func TestWorkflow_NonTerminalPrintsFinalStateOnly(t *testing.T) {
	var buf bytes.Buffer
	wf := NewWorkflow(&buf)
	read := wf.AddTask("Reading samples")
	draw := wf.AddTask("Rendering")
	export := wf.AddTask("Writing summary")

	wf.Start()
	wf.StartTask(read, "model.dat")
	wf.CompleteTask(read, "6 sample(s)")
	wf.StartTask(draw, "")
	wf.FailTask(draw, "boom")
	wf.SkipTask(export, "no path")
	wf.Stop()
	wf.Stop()

	out := buf.String()
	if strings.Contains(out, "\033[A") {
		t.Fatalf("non-terminal output must not move the cursor: %q", out)
	}
	for _, w := range []string{"Reading samples", "→ 6 sample(s)", "→ boom", "→ no path"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", got, out)
	}
	if wf.Status(draw) != TaskFailed || wf.Status(99) != TaskPending {
		t.Fatalf("unexpected task status")
	}
}

func TestRenderUI_Workflow(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderUI(&buf, false)
	r.StartWorkflow("comparison/phase")
	r.StartReading("model.dat")
	r.CompleteReading(6, 4)
	r.StartRendering("out.png")
	r.Fail(errors.New("draw failed"))
	r.FinishWorkflow()

	out := buf.String()
	for _, w := range []string{"6 sample(s) in 4 dataset(s)", "Rendering comparison/phase figure", "draw failed", "Writing summary"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestRenderUI_Quiet(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderUI(&buf, true)
	r.StartWorkflow("forward/time")
	r.StartReading("model.dat")
	r.CompleteReading(1, 1)
	r.SkipWriting("none")
	r.FinishWorkflow()
	r.PrintSummary("out.png", 600, "forward/time")
	r.LogStep("info", "hello")
	if buf.Len() != 0 {
		t.Fatalf("quiet UI printed %q", buf.String())
	}
}

func TestRenderUI_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewRenderUI(&buf, false).PrintSummary("forward_phase.png", 300, "forward/phase")
	for _, w := range []string{"Figure Complete", "forward_phase.png", "300", "forward/phase", "Duration"} {
		if !strings.Contains(buf.String(), w) {
			t.Errorf("output missing %q:\n%s", w, buf.String())
		}
	}
}
