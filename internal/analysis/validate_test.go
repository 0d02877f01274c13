package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fullResult = `{
	"proteinAnalysis": {"family": "Tyrosine kinase", "function": "signal transduction", "targetSite": "ATP-binding cleft"},
	"drugCandidates": [
		{
			"name": "Erlotinib analog",
			"smiles": "COCCOc1cc2ncnc(Nc3cccc(C#C)c3)c2cc1OCCOC",
			"bindingAffinity": 8.4,
			"confidence": 0.93,
			"properties": {"molecularWeight": 393.44, "logP": 3.3, "hbd": 1, "hba": 7},
			"mechanism": "ATP-competitive inhibition"
		}
	],
	"recommendations": "Prioritise candidate 1."
}`

func TestValidateAcceptsFullResult(t *testing.T) {
	res := Validate([]byte(fullResult))
	assert.True(t, res.IsValid, "unexpected errors: %v", res.Errors)
	assert.Equal(t, 1, res.Candidates)
}

func TestValidateReportsProblems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		problem string
	}{
		{
			name:    "affinity above range",
			mutate:  func(s string) string { return strings.Replace(s, `"bindingAffinity": 8.4`, `"bindingAffinity": 9.9`, 1) },
			problem: "drugCandidates[0].bindingAffinity out of range",
		},
		{
			name:    "confidence below range",
			mutate:  func(s string) string { return strings.Replace(s, `"confidence": 0.93`, `"confidence": 0.5`, 1) },
			problem: "drugCandidates[0].confidence out of range",
		},
		{
			name:    "fractional hbd",
			mutate:  func(s string) string { return strings.Replace(s, `"hbd": 1`, `"hbd": 1.5`, 1) },
			problem: "drugCandidates[0].properties.hbd must be a non-negative integer",
		},
		{
			name:    "missing recommendations",
			mutate:  func(s string) string { return strings.Replace(s, `"recommendations": "Prioritise candidate 1."`, `"other": 1`, 1) },
			problem: "recommendations must be a non-empty string",
		},
		{
			name:    "empty family",
			mutate:  func(s string) string { return strings.Replace(s, `"Tyrosine kinase"`, `""`, 1) },
			problem: "proteinAnalysis.family must be a non-empty string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate([]byte(tt.mutate(fullResult)))
			assert.False(t, res.IsValid)
			assert.Condition(t, func() bool {
				for _, e := range res.Errors {
					if strings.Contains(e, tt.problem) {
						return true
					}
				}
				return false
			}, "expected %q in %v", tt.problem, res.Errors)
		})
	}
}

func TestValidateRejectsNonObject(t *testing.T) {
	res := Validate([]byte(`["not","an","object"]`))
	assert.False(t, res.IsValid)
	assert.NotEmpty(t, res.Errors)
}

func TestValidateMissingSections(t *testing.T) {
	res := Validate([]byte(`{}`))
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "proteinAnalysis is missing")
	assert.Contains(t, res.Errors, "drugCandidates is missing")
}

func TestTiers(t *testing.T) {
	assert.Equal(t, TierHigh, AffinityTier(8.0))
	assert.Equal(t, TierMedium, AffinityTier(6.5))
	assert.Equal(t, TierLow, AffinityTier(6.49))

	assert.Equal(t, TierHigh, ConfidenceTier(0.9))
	assert.Equal(t, TierMedium, ConfidenceTier(0.85))
	assert.Equal(t, TierLow, ConfidenceTier(0.7))
	assert.Equal(t, "medium", TierMedium.String())
}
