package entity

// PolicyChunk is one paragraph of the policy text. Embedding stays empty
// until a real vectorization step lands.
type PolicyChunk struct {
	Id        string    `json:"id"`
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
}

// PolicyIndex is the chunked form of policy.txt, a placeholder for a
// future embedding-based retrieval step.
type PolicyIndex struct {
	Model     string        `json:"model"`
	Dim       int           `json:"dim"`
	Chunks    []PolicyChunk `json:"chunks"`
	UpdatedAt string        `json:"updatedAt"`
}
