package seedmodels

// SeedQuestion defines a question item in the JSON seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// SeedCategory groups questions under a category type, e.g. "Science".
type SeedCategory struct {
	Type      string         `json:"category"`
	Questions []SeedQuestion `json:"questions"`
}
