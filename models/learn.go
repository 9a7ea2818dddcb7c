package models

// Static educational content served by the learn endpoints.

type FactorInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Factors     map[string]float64 `json:"factors,omitempty"`
	Factor      float64            `json:"factor,omitempty"`
	Unit        string             `json:"unit"`
}

type ReductionTip struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
