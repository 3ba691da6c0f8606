package domain

// ConfigLoader loads user configuration. An empty path means the default
// location.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// GitInfo reads repository state used by git rules.
type GitInfo interface {
	CurrentBranch(dir string) (string, error)
}
