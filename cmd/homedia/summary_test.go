package main

import (
	"strings"
	"testing"

	"github.com/vpraion/homedia/internal/policy"
	"github.com/vpraion/homedia/internal/workflow"
)

func TestRenderSummaryQuality(t *testing.T) {
	summary := workflow.Summary{
		Analyzed:      5,
		MetadataSkips: 1,
		AlreadyTarget: 2,
		Candidates:    3,
		ReEncoded:     2,
		Failed:        1,
	}

	got := renderSummary(modeQuality, policy.GenreMovie, summary, false)
	if !strings.HasPrefix(got, "Constant Quality Run (Movie)\n") {
		t.Fatalf("unexpected heading: %q", got)
	}
	for _, want := range []string{"Analyzed", "Metadata skips", "Already AV1", "Re-encode candidates", "Re-encoded", "Failed"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Avg observed") {
		t.Fatalf("quality summary should not carry audit rows:\n%s", got)
	}
	if strings.Contains(got, "dry run") {
		t.Fatalf("unexpected dry run marker:\n%s", got)
	}
}

func TestRenderSummaryAuditDryRun(t *testing.T) {
	summary := workflow.Summary{
		Analyzed:           4,
		Candidates:         1,
		ObservedKbpsSum:    8000,
		RecommendedKbpsSum: 6000,
	}

	got := renderSummary(modeAudit, policy.GenreAnime, summary, true)
	if !strings.HasPrefix(got, "Bitrate Audit Run (Anime) [dry run]\n") {
		t.Fatalf("unexpected heading: %q", got)
	}
	for _, want := range []string{"Within budget", "Avg observed kb/s", "Avg recommended kb/s"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Already AV1") {
		t.Fatalf("audit summary should not carry the quality-only row:\n%s", got)
	}
}

func TestRenderPlainFormatting(t *testing.T) {
	got := renderPlain(
		[]string{"Metric", "Value"},
		[][]string{{"Analyzed", "5"}, {"Already AV1", "2"}},
	)
	want := "metric=Analyzed  value=5\nmetric=Already AV1  value=2"
	if got != want {
		t.Fatalf("renderPlain mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestPipelineModeString(t *testing.T) {
	if got := modeQuality.String(); got != "constant quality" {
		t.Fatalf("modeQuality = %q", got)
	}
	if got := modeAudit.String(); got != "bitrate audit" {
		t.Fatalf("modeAudit = %q", got)
	}
}
