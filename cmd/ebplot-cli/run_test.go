package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/chi2"
	"github.com/idlab-discover/EBPlot-cli/internal/compose"
	"github.com/idlab-discover/EBPlot-cli/internal/config"
)

const scenarioTable = `# time observed synthetic uncertainty dataset residual
0 1.00 1.10 0.10 1 0.5
1 1.20 1.10 0.10 1 0.25
2 0.90 1.00 0.10 2 1.2345678901
3 1.10 1.00 0.10 2 0.0000000001
4 50 40 nan 3 4
5 -50 -40 - 4 4
`

// setViper overrides keys for one test.
func setViper(t *testing.T, kv map[string]any) {
	t.Helper()
	for k, v := range kv {
		prev := viper.Get(k)
		viper.Set(k, v)
		t.Cleanup(func() { viper.Set(k, prev) })
	}
}

func writeTable(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "model.dat")
	if err := os.WriteFile(p, []byte(scenarioTable), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestResolveLogLevel(t *testing.T) {
	setViper(t, map[string]any{"lvl.log-level": " DEBUG "})
	if got, err := resolveLogLevel("lvl"); err != nil || got != "debug" {
		t.Fatalf("resolveLogLevel = %q, %v", got, err)
	}
	if got, err := resolveLogLevel("unset"); err != nil || got != "standard" {
		t.Fatalf("default level = %q, %v", got, err)
	}
	setViper(t, map[string]any{"bad.log-level": "verbose"})
	if _, err := resolveLogLevel("bad"); !apperr.IsUser(err) {
		t.Fatalf("expected user error, got %v", err)
	}
}

func TestResolveRun(t *testing.T) {
	setViper(t, map[string]any{
		"rr.input": "model.dat",
		"rr.phase": true,
		"rr.dpi":   300,
	})
	run, err := resolveRun("rr", compose.Comparison)
	if err != nil {
		t.Fatalf("resolveRun: %v", err)
	}
	if run.mode.String() != "comparison/phase" || run.output != "comparison_phase.png" || run.dpi != 300 {
		t.Fatalf("unexpected run %+v", run)
	}

	setViper(t, map[string]any{"noinput.dpi": 300})
	if _, err := resolveRun("noinput", compose.Forward); !apperr.IsUser(err) {
		t.Fatalf("missing input: expected user error, got %v", err)
	}
	setViper(t, map[string]any{"nodpi.input": "x"})
	if _, err := resolveRun("nodpi", compose.Forward); !apperr.IsUser(err) {
		t.Fatalf("missing dpi: expected user error, got %v", err)
	}
}

func TestExecuteRender_Compare(t *testing.T) {
	setViper(t, map[string]any{
		string(config.EphemerisPeriod): 2.0,
		string(config.EphemerisEpoch):  0.0,
		string(config.LimitsRVFixed):   false,
	})
	dir := t.TempDir()
	run := renderRun{
		mode:       compose.Mode{Kind: compose.Comparison, Layout: compose.PhaseFolded},
		input:      writeTable(t),
		output:     filepath.Join(dir, "cmp.png"),
		summaryOut: filepath.Join(dir, "cmp.yaml"),
		dpi:        40,
		level:      "quiet",
	}

	var stdout, stderr bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	if err := executeRender(c, run); err != nil {
		t.Fatalf("executeRender: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 4 || lines[1] != "chi2 from dataset 2 = 1.2345678902" {
		t.Fatalf("unexpected summary lines %q", lines)
	}
	if stderr.Len() != 0 {
		t.Fatalf("quiet run wrote to stderr: %q", stderr.String())
	}
	for _, p := range []string{run.output, run.summaryOut} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %s: %v", p, err)
		}
	}
}

func TestExecuteRender_MissingInput(t *testing.T) {
	run := renderRun{
		mode:   compose.Mode{Kind: compose.Forward},
		input:  filepath.Join(t.TempDir(), "missing.dat"),
		output: filepath.Join(t.TempDir(), "fw.png"),
		dpi:    40,
		level:  "quiet",
	}
	c := &cobra.Command{}
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	if err := executeRender(c, run); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := os.Stat(run.output); !os.IsNotExist(err) {
		t.Fatalf("no figure may be written")
	}
}

func TestWriteSummaryReport(t *testing.T) {
	p := filepath.Join(t.TempDir(), "summary.yaml")
	sums := []chi2.Summary{{Dataset: 2, Chi2: 1.5, Points: 2}}
	if err := writeSummaryReport(p, "model.dat", sums); err != nil {
		t.Fatalf("writeSummaryReport: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "mode: summary\n") || strings.Contains(string(data), "output:") {
		t.Fatalf("unexpected report:\n%s", data)
	}
	if err := writeSummaryReport(filepath.Join(t.TempDir(), "summary.txt"), "model.dat", sums); err == nil {
		t.Fatalf("expected extension error")
	}
}

func TestChiSquareReportUsesDatasetNames(t *testing.T) {
	st := config.Default()
	r := chiSquareReport(st, "comparison/time", "in", "out", []chi2.Summary{{Dataset: 3, Chi2: 2, Points: 1}})
	if len(r.Rows) != 1 || r.Rows[0].Name != st.Labels.RVPrimary || r.Rows[0].Dataset != 3 {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestInteractiveAnswers(t *testing.T) {
	a := interactiveAnswers{kind: "forward", layout: "phase", input: " model.dat ", dpi: "120", summaryOut: "s.yaml"}
	run, err := a.toRun()
	if err != nil {
		t.Fatalf("toRun: %v", err)
	}
	if run.output != "forward_phase.png" || run.input != "model.dat" || run.dpi != 120 || run.summaryOut != "" {
		t.Fatalf("unexpected run %+v", run)
	}

	a.dpi = "0"
	if _, err := a.toRun(); err == nil {
		t.Fatalf("expected error for dpi 0")
	}
	if validateDPI("abc") == nil || validateDPI("72") != nil {
		t.Fatalf("validateDPI mismatch")
	}
	if validateInputFile("") == nil || validateInputFile(t.TempDir()) == nil {
		t.Fatalf("empty path and directories must be rejected")
	}
	if err := validateInputFile(writeTable(t)); err != nil {
		t.Fatalf("validateInputFile: %v", err)
	}
}
