package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenCommitList
	ScreenCommitDetail
	ScreenError
)

func (s Screen) String() string {
	names := []string{
		"Loading",
		"CommitList",
		"CommitDetail",
		"Error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
