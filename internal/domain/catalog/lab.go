package catalog

type CodeLab struct {
	ID            string
	Title         string
	Description   string
	Difficulty    string
	Category      string
	Instructions  string
	StarterCode   string
	Solution      string
	Hints         []string
	EstimatedTime int // minutes
}
