package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mnb-0/cvscan/internal/app"
	"github.com/Mnb-0/cvscan/internal/domain/batch"
	"github.com/Mnb-0/cvscan/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// scoreColor picks a color band for a weighted score.
func scoreColor(score float64) string {
	switch {
	case score >= 75:
		return colorGreen
	case score >= 50:
		return colorYellow
	default:
		return colorRed
	}
}

// formatAnalysis renders a single-document result:
//
//	alice_cv — Data Scientist
//	  score 52.0 (mandatory 50%, preferred 100%, penalty applied)
//	  matched:  python, sql
//	  missing:  tensorflow
//	  Naive               1234 comparisons  0.82ms
func formatAnalysis(position string, a *app.Analysis) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s%s%s — %s\n", colorBold, a.Name, colorReset, position))

	penalty := ""
	if a.Score.PenaltyApplied {
		penalty = ", penalty applied"
	}
	sb.WriteString(fmt.Sprintf("  score %s%.1f%s (mandatory %.0f%%, preferred %.0f%%%s)\n",
		scoreColor(a.Score.Weighted), a.Score.Weighted, colorReset,
		a.Score.MandatoryRatio, a.Score.PreferredRatio, penalty))

	if len(a.Matched) > 0 {
		sb.WriteString(fmt.Sprintf("  matched:  %s%s%s\n", colorGreen, strings.Join(a.Matched, ", "), colorReset))
	}
	if len(a.Missing) > 0 {
		sb.WriteString(fmt.Sprintf("  missing:  %s%s%s\n", colorRed, strings.Join(a.Missing, ", "), colorReset))
	}

	for _, run := range a.Runs {
		sb.WriteString(fmt.Sprintf("  %-20s %10d comparisons  %s\n",
			run.Algorithm, run.TotalComparisons, formatElapsed(run.Elapsed)))
	}
	return sb.String()
}

// formatBatch renders the ranked batch table plus per-algorithm totals.
func formatBatch(position string, res *batch.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s%s%s │ %d processed, %d skipped │ %s\n",
		colorBold, position, colorReset, res.Processed, res.Skipped, formatElapsed(res.Elapsed)))

	for i, dr := range res.Ranking {
		penalty := ""
		if dr.Score.PenaltyApplied {
			penalty = fmt.Sprintf("  %spenalty%s", colorYellow, colorReset)
		}
		sb.WriteString(fmt.Sprintf("  %2d. %s%-30s%s %s%6.1f%s%s\n",
			i+1, colorCyan, dr.ID, colorReset,
			scoreColor(dr.Score.Weighted), dr.Score.Weighted, colorReset, penalty))
		if len(dr.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("      %smissing: %s%s\n",
				colorGray, strings.Join(dr.Missing, ", "), colorReset))
		}
	}

	sb.WriteString(fmt.Sprintf("%stotals%s\n", colorBold, colorReset))
	for _, tot := range res.Totals {
		sb.WriteString(fmt.Sprintf("  %-20s %12d comparisons  %s\n",
			tot.Algorithm, tot.Comparisons, formatElapsed(tot.Elapsed)))
	}
	return sb.String()
}

// formatRunRecord renders a stored run the way formatBatch renders a
// fresh one.
func formatRunRecord(rec *ports.RunRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s%s%s │ %s │ %d processed, %d skipped │ %.1fms\n",
		colorBold, rec.Position, colorReset,
		rec.StartedAt.Format("2006-01-02 15:04:05"),
		rec.Processed, rec.Skipped, rec.TotalTimeMs))

	for i, doc := range rec.Documents {
		penalty := ""
		if doc.PenaltyApplied {
			penalty = fmt.Sprintf("  %spenalty%s", colorYellow, colorReset)
		}
		sb.WriteString(fmt.Sprintf("  %2d. %s%-30s%s %s%6.1f%s%s\n",
			i+1, colorCyan, doc.Name, colorReset,
			scoreColor(doc.Score), doc.Score, colorReset, penalty))
		if len(doc.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("      %smissing: %s%s\n",
				colorGray, strings.Join(doc.Missing, ", "), colorReset))
		}
	}

	sb.WriteString(fmt.Sprintf("%stotals%s\n", colorBold, colorReset))
	for _, agg := range rec.Aggregate {
		sb.WriteString(fmt.Sprintf("  %-20s %12d comparisons  %.2fms\n",
			agg.Algorithm, agg.Comparisons, agg.TimeMs))
	}
	return sb.String()
}

// formatElapsed renders a duration in milliseconds with two decimals.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}
