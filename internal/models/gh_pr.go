package models

// GhPr represents GitHub PR info returned from gh CLI
type GhPr struct {
	Number      uint64 `json:"number"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	State       string `json:"state"`
	BaseRefName string `json:"baseRefName"`
	HeadRefName string `json:"headRefName"`
}
