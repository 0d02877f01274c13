package ui

import (
	"fmt"
	"strconv"
	"strings"

	"drugdiscovery/internal/analysis"

	"github.com/charmbracelet/lipgloss"
)

const minCardWidth = 40

// RenderResult draws the protein analysis, one card per candidate and the
// recommendations. Empty sections are skipped.
func RenderResult(res *analysis.Result, width int) string {
	if res == nil {
		return ""
	}
	if width < minCardWidth {
		width = minCardWidth
	}

	var sections []string
	if pa := res.ProteinAnalysis; pa != (analysis.ProteinAnalysis{}) {
		sections = append(sections, renderProteinAnalysis(pa, width))
	}
	if len(res.DrugCandidates) > 0 {
		sections = append(sections, titleStyle.Render("Potential Drug Candidates"))
		for i, c := range res.DrugCandidates {
			sections = append(sections, renderCandidate(i, c, width))
		}
	}
	if res.Recommendations != "" {
		body := titleStyle.Render("Development Recommendations") + "\n" +
			mutedStyle.Render(res.Recommendations)
		sections = append(sections, card(width).Render(body))
	}
	return strings.Join(sections, "\n")
}

func renderProteinAnalysis(pa analysis.ProteinAnalysis, width int) string {
	lines := []string{
		titleStyle.Render("Protein Analysis"),
		field("Family", pa.Family),
		field("Function", pa.Function),
		field("Target Site", pa.TargetSite),
	}
	return card(width).Render(strings.Join(lines, "\n"))
}

func renderCandidate(i int, c analysis.DrugCandidate, width int) string {
	confidence := lipgloss.NewStyle().
		Foreground(tierColor(analysis.ConfidenceTier(float64(c.Confidence)))).
		Render(fmt.Sprintf("%.1f%% Confidence", float64(c.Confidence)*100))
	affinity := lipgloss.NewStyle().Bold(true).
		Foreground(tierColor(analysis.AffinityTier(float64(c.BindingAffinity)))).
		Render(fmt.Sprintf("%.1f", float64(c.BindingAffinity)))

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Candidate %d: %s", i+1, c.Name)),
		confidence + "  " + mutedStyle.Render("Binding Affinity") + " " + affinity,
		mutedStyle.Render("SMILES: ") + codeStyle.Render(c.Smiles),
		field("Mechanism", c.Mechanism),
		"",
		field("Molecular Weight", fmt.Sprintf("%.2f Da", float64(c.Properties.MolecularWeight))) +
			"   " + field("LogP", fmt.Sprintf("%.2f", float64(c.Properties.LogP))),
		field("H-Bond Donors", strconv.Itoa(c.Properties.HBD.Int())) +
			"   " + field("H-Bond Acceptors", strconv.Itoa(c.Properties.HBA.Int())),
	}
	return card(width).Render(strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return labelStyle.Render(label+": ") + value
}

func card(width int) lipgloss.Style {
	// Width includes padding but not the border.
	return cardStyle.Width(width - 2)
}
