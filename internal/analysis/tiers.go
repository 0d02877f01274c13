package analysis

// Tier buckets a score for display.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// AffinityTier buckets a pIC50 binding affinity.
func AffinityTier(affinity float64) Tier {
	switch {
	case affinity >= 8:
		return TierHigh
	case affinity >= 6.5:
		return TierMedium
	default:
		return TierLow
	}
}

// ConfidenceTier buckets a model confidence in [0, 1].
func ConfidenceTier(confidence float64) Tier {
	switch {
	case confidence >= 0.9:
		return TierHigh
	case confidence >= 0.8:
		return TierMedium
	default:
		return TierLow
	}
}
