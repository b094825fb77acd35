package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/service/riskscore"
	"github.com/secmon-lab/cmseval/pkg/usecase"
)

var (
	headerColor = color.New(color.Bold, color.Underline)
	topColor    = color.New(color.FgGreen, color.Bold)
	tierColors  = map[types.Level]*color.Color{
		types.LevelHigh:   color.New(color.FgRed, color.Bold),
		types.LevelMedium: color.New(color.FgYellow),
		types.LevelLow:    color.New(color.FgGreen),
	}
)

// pad fills s with spaces up to width runes. Pad before coloring: escape
// codes would otherwise count toward the width.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func tierColor(tier types.Level) *color.Color {
	if c, ok := tierColors[tier]; ok {
		return c
	}
	return color.New(color.Reset)
}

// renderRanking prints vendors in the given order. The top choices by
// priority are highlighted.
func renderRanking(w io.Writer, vendors []*model.Vendor) {
	fmt.Fprintln(w, headerColor.Sprintf("%s %s %s %s %s %s",
		pad("#", 3), pad("VENDOR", 16), pad("TYPE", 22), pad("HOSTING", 20), pad("SCORE", 6), "MIGRATION"))

	for _, v := range vendors {
		name := pad(v.Name, 16)
		if v.Priority >= 1 && v.Priority <= usecase.TopChoiceCount {
			name = topColor.Sprint(name)
		}
		fmt.Fprintf(w, "%s %s %s %s %s %s\n",
			pad(fmt.Sprint(v.Priority), 3),
			name,
			pad(v.Type, 22),
			pad(v.Hosting, 20),
			pad(fmt.Sprintf("%d", v.TotalScore), 6),
			fmt.Sprintf("%s, %d weeks", v.Migration.Effort, v.Migration.TimeWeeks),
		)
	}
}

// renderRisks prints the register followed by the per-tier summary
func renderRisks(w io.Writer, view *usecase.RiskView) {
	fmt.Fprintln(w, headerColor.Sprintf("%s %s %s %s",
		pad("TIER", 7), pad("LEVEL", 6), pad("VENDOR", 16), "RISK"))

	for _, e := range view.Entries {
		fmt.Fprintf(w, "%s %s %s %s\n",
			tierColor(e.Tier).Sprint(pad(e.Tier.String(), 7)),
			pad(fmt.Sprint(e.Level), 6),
			pad(e.VendorLabel, 16),
			e.Risk,
		)
		if e.Mitigation != "" {
			fmt.Fprintf(w, "%s mitigation: %s\n", strings.Repeat(" ", 7+1+6+1+16), e.Mitigation)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total %d: %s %s %s\n",
		view.Summary.Total,
		summaryCell(view.Summary, types.LevelHigh),
		summaryCell(view.Summary, types.LevelMedium),
		summaryCell(view.Summary, types.LevelLow),
	)
}

func summaryCell(s riskscore.Summary, tier types.Level) string {
	return tierColor(tier).Sprintf("%s=%d", tier, s.Count(tier))
}
