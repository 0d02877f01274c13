package analysis

// Request is the inbound body of the analysis endpoint.
type Request struct {
	ProteinSequence string `json:"proteinSequence"`
}

// Result is the shape the model is instructed to produce. The gateway
// returns the model's object verbatim; this type is what clients decode into.
type Result struct {
	ProteinAnalysis ProteinAnalysis `json:"proteinAnalysis"`
	DrugCandidates  []DrugCandidate `json:"drugCandidates"`
	Recommendations string          `json:"recommendations"`
}

type ProteinAnalysis struct {
	Family     string `json:"family"`
	Function   string `json:"function"`
	TargetSite string `json:"targetSite"`
}

type DrugCandidate struct {
	Name            string     `json:"name"`
	Smiles          string     `json:"smiles"`
	BindingAffinity Number     `json:"bindingAffinity"`
	Confidence      Number     `json:"confidence"`
	Properties      Properties `json:"properties"`
	Mechanism       string     `json:"mechanism"`
}

type Properties struct {
	MolecularWeight Number `json:"molecularWeight"`
	LogP            Number `json:"logP"`
	HBD             Number `json:"hbd"`
	HBA             Number `json:"hba"`
}

// ErrorResult is the body of every failed response.
type ErrorResult struct {
	Error string `json:"error"`
}

// Declared ranges from the prompt. Nothing enforces them unless strict schema is on.
const (
	MinBindingAffinity = 5.0
	MaxBindingAffinity = 9.5
	MinConfidence      = 0.70
	MaxConfidence      = 0.98
)
