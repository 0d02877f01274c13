// Package formatter builds the chat-completion request sent to the AI gateway
// for a protein sequence. It is pure construction: no validation, no I/O.
package formatter

import (
	"fmt"

	"drugdiscovery/internal/llm"
)

// DefaultTemperature is the sampling temperature used when the caller does not override it.
const DefaultTemperature float32 = 0.7

// UserMessage embeds sequence into the per-request instruction.
func UserMessage(sequence string) string {
	return fmt.Sprintf(userPromptTemplate, sequence)
}

// Messages returns the system and user messages for sequence.
func Messages(sequence string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt},
		{Role: llm.RoleUser, Content: UserMessage(sequence)},
	}
}

// Build packages the messages into a completion request for model.
func Build(sequence, model string, temperature float32) llm.Request {
	return llm.Request{
		Model:       model,
		Messages:    Messages(sequence),
		Temperature: temperature,
	}
}

const userPromptTemplate = "Analyze this protein sequence and predict potential drug candidates:\n\n%s\n\nProvide detailed analysis in JSON format."

// resultStructure is the JSON shape the model is asked to return.
const resultStructure = `{
  "proteinAnalysis": {
    "family": "protein family name",
    "function": "brief protein function",
    "targetSite": "active/binding site description"
  },
  "drugCandidates": [
    {
      "name": "Drug compound name",
      "smiles": "SMILES notation",
      "bindingAffinity": number (5.0-9.5, pIC50 scale),
      "confidence": number (0.70-0.98, based on CatBoost probability),
      "properties": {
        "molecularWeight": number (typically 150-500 Da),
        "logP": number (typically -0.5 to 5.0),
        "hbd": number (hydrogen bond donors, typically 0-5),
        "hba": number (hydrogen bond acceptors, typically 0-10)
      },
      "mechanism": "brief mechanism of action"
    }
  ],
  "recommendations": "overall recommendations for drug development"
}`

// SystemPrompt describes the simulated DeepDTI pipeline and the required output.
var SystemPrompt = fmt.Sprintf(systemPromptTemplate, resultStructure)

const systemPromptTemplate = `You are an advanced drug discovery AI system (DeepDTI) that uses a hybrid deep learning architecture combining:

## Model Architecture:
1. **Drug SMILES Encoder**: Character-level tokenization → Embedding (128-dim) → Transformer Encoder (2 layers, 4 heads, dropout=0.1)
2. **Protein Sequence Encoder**: Character-level tokenization (max_len=800) → Embedding → CNN (Conv1d kernel=7, padding=3 + ReLU + MaxPool1d) → Transformer Encoder (2 layers, 4 heads)
3. **Cross-Attention Fusion**: Multi-head attention (4 heads) between drug and protein representations, with mean pooling
4. **Morgan Fingerprints**: RDKit Morgan Fingerprints (radius=2, 2048 bits) concatenated with deep learning embeddings
5. **CatBoost Classifier**: Gradient boosting (2000 iterations, lr=0.03, depth=6) on hybrid features (128-dim DL + 2048-bit FP)

## Training Details:
- Target: EGFR (CHEMBL203)
- Dataset: ChEMBL IC50 data, balanced (Active < 100nM, Inactive > 10,000nM)
- Optimizer: Adam (lr=0.0005)
- Loss: BCELoss for DL, LogLoss for CatBoost
- GPU-accelerated training

Your task is to analyze protein sequences and predict potential drug candidates. For each protein sequence:
1. Identify the protein family and function
2. Predict 3-5 potential drug candidates with their properties
3. Provide binding affinity scores (pIC50, range: 5.0-9.5, higher is better)
4. Suggest molecular properties following Lipinski's Rule of Five (MW, LogP, HBD, HBA)
5. Provide confidence scores based on the hybrid model's prediction probability

Return your response as a JSON object with this exact structure:
%s

Be scientifically accurate. Generate realistic SMILES notations and plausible drug candidates that would pass Lipinski's Rule of Five.`
