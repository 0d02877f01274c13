package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ValidationResult carries schema check details for a model reply.
type ValidationResult struct {
	IsValid    bool
	Errors     []string
	Candidates int
}

type looseResult struct {
	ProteinAnalysis *struct {
		Family     *string `json:"family"`
		Function   *string `json:"function"`
		TargetSite *string `json:"targetSite"`
	} `json:"proteinAnalysis"`
	DrugCandidates  *[]looseCandidate `json:"drugCandidates"`
	Recommendations *string           `json:"recommendations"`
}

type looseCandidate struct {
	Name            *string  `json:"name"`
	Smiles          *string  `json:"smiles"`
	BindingAffinity *float64 `json:"bindingAffinity"`
	Confidence      *float64 `json:"confidence"`
	Properties      *struct {
		MolecularWeight *float64 `json:"molecularWeight"`
		LogP            *float64 `json:"logP"`
		HBD             *float64 `json:"hbd"`
		HBA             *float64 `json:"hba"`
	} `json:"properties"`
	Mechanism *string `json:"mechanism"`
}

// Validate checks raw against the Result shape and the ranges declared in the prompt.
// It never modifies raw.
func Validate(raw []byte) ValidationResult {
	var res ValidationResult

	var parsed looseResult
	if err := json.Unmarshal(raw, &parsed); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decode: %v", err))
		return res
	}

	if pa := parsed.ProteinAnalysis; pa == nil {
		res.Errors = append(res.Errors, "proteinAnalysis is missing")
	} else {
		requireString(&res, "proteinAnalysis.family", pa.Family)
		requireString(&res, "proteinAnalysis.function", pa.Function)
		requireString(&res, "proteinAnalysis.targetSite", pa.TargetSite)
	}

	requireString(&res, "recommendations", parsed.Recommendations)

	if parsed.DrugCandidates == nil {
		res.Errors = append(res.Errors, "drugCandidates is missing")
	} else {
		res.Candidates = len(*parsed.DrugCandidates)
		for i, c := range *parsed.DrugCandidates {
			validateCandidate(&res, fmt.Sprintf("drugCandidates[%d]", i), c)
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

func validateCandidate(res *ValidationResult, path string, c looseCandidate) {
	requireString(res, path+".name", c.Name)
	requireString(res, path+".smiles", c.Smiles)
	requireString(res, path+".mechanism", c.Mechanism)
	requireRange(res, path+".bindingAffinity", c.BindingAffinity, MinBindingAffinity, MaxBindingAffinity)
	requireRange(res, path+".confidence", c.Confidence, MinConfidence, MaxConfidence)

	p := c.Properties
	if p == nil {
		res.Errors = append(res.Errors, path+".properties is missing")
		return
	}
	requireRange(res, path+".properties.molecularWeight", p.MolecularWeight, 0, math.Inf(1))
	requireRange(res, path+".properties.logP", p.LogP, math.Inf(-1), math.Inf(1))
	requireCount(res, path+".properties.hbd", p.HBD)
	requireCount(res, path+".properties.hba", p.HBA)
}

func requireString(res *ValidationResult, path string, v *string) {
	if v == nil || strings.TrimSpace(*v) == "" {
		res.Errors = append(res.Errors, path+" must be a non-empty string")
	}
}

func requireRange(res *ValidationResult, path string, v *float64, min, max float64) {
	switch {
	case v == nil:
		res.Errors = append(res.Errors, path+" is missing")
	case *v < min || *v > max:
		res.Errors = append(res.Errors, fmt.Sprintf("%s out of range [%g, %g]: %g", path, min, max, *v))
	}
}

func requireCount(res *ValidationResult, path string, v *float64) {
	switch {
	case v == nil:
		res.Errors = append(res.Errors, path+" is missing")
	case *v < 0 || *v != math.Trunc(*v):
		res.Errors = append(res.Errors, fmt.Sprintf("%s must be a non-negative integer: %g", path, *v))
	}
}
