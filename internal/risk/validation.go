package risk

// ModelValidation is the fixed, simulated validation block reported
// with every result. No clinical dataset exists to validate against,
// so the figures are illustrative and say so.
type ModelValidation struct {
	Sensitivity float64 `json:"sensitivity"`
	Specificity float64 `json:"specificity"`
	AUC         float64 `json:"auc"`
	Note        string  `json:"note"`
}

func SimulatedValidation() ModelValidation {
	return ModelValidation{
		Sensitivity: 0.82,
		Specificity: 0.78,
		AUC:         0.85,
		Note:        "Simulated validation due to absence of clinical dataset.",
	}
}
