package catalog

type Project struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Difficulty   string
	Technologies []string
	Features     []string
	DownloadURL  string
	ImageURL     string
	GithubURL    string
}
