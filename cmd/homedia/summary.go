package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vpraion/homedia/internal/policy"
	"github.com/vpraion/homedia/internal/workflow"
)

var titleCaser = cases.Title(language.English)

// renderSummary formats the closing counters for one pipeline run.
func renderSummary(mode pipelineMode, genre policy.Genre, summary workflow.Summary, dryRun bool) string {
	var sb strings.Builder

	heading := fmt.Sprintf("%s run (%s)", titleCaser.String(mode.String()), titleCaser.String(genre.String()))
	if dryRun {
		heading += " [dry run]"
	}
	sb.WriteString(heading)
	sb.WriteByte('\n')

	rows := [][]string{
		{"Analyzed", strconv.Itoa(summary.Analyzed)},
		{"Metadata skips", strconv.Itoa(summary.MetadataSkips)},
	}
	if mode == modeQuality {
		rows = append(rows, []string{"Already AV1", strconv.Itoa(summary.AlreadyTarget)})
	} else {
		withinBudget := summary.Analyzed - summary.Candidates
		rows = append(rows,
			[]string{"Within budget", strconv.Itoa(withinBudget)},
			[]string{"Avg observed kb/s", strconv.FormatInt(summary.AverageObservedKbps(), 10)},
			[]string{"Avg recommended kb/s", strconv.FormatInt(summary.AverageRecommendedKbps(), 10)},
		)
	}
	rows = append(rows,
		[]string{"Re-encode candidates", strconv.Itoa(summary.Candidates)},
		[]string{"Re-encoded", strconv.Itoa(summary.ReEncoded)},
		[]string{"Failed", strconv.Itoa(summary.Failed)},
	)

	sb.WriteString(renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	return sb.String()
}
