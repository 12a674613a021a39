package types

// EntryResult reports what happened to one source entry during link, unlink or status
type EntryResult struct {
	Name   string    `json:"name" yaml:"name"`
	Source string    `json:"source" yaml:"source"`
	Target string    `json:"target" yaml:"target"`
	State  LinkState `json:"state" yaml:"state"`
	Action Action    `json:"action,omitempty" yaml:"action,omitempty"`
	Error  string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// LinkReport is the result of the link, unlink and status commands
type LinkReport struct {
	Command string        `json:"command" yaml:"command"`
	Pretend bool          `json:"pretend" yaml:"pretend"`
	Entries []EntryResult `json:"entries" yaml:"entries"`
}

// Count returns how many entries ended with the given action
func (r *LinkReport) Count(action Action) int {
	n := 0
	for _, e := range r.Entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

// SyncStep is one git invocation (or skipped subtree) performed by update
type SyncStep struct {
	// Name is "repository" for the main rebase or the subtree prefix
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Action Action `json:"action" yaml:"action"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// UpdateReport is the result of the update command
type UpdateReport struct {
	Repository string     `json:"repository" yaml:"repository"`
	Subtrees   bool       `json:"subtrees" yaml:"subtrees"`
	Steps      []SyncStep `json:"steps" yaml:"steps"`
}

// ImportResult is the result of the import command
type ImportResult struct {
	Name     string `json:"name" yaml:"name"`
	HomePath string `json:"homePath" yaml:"homePath"`
	RepoPath string `json:"repoPath" yaml:"repoPath"`
}

// CloneResult is the result of the clone command
type CloneResult struct {
	URL        string `json:"url" yaml:"url"`
	Repository string `json:"repository" yaml:"repository"`
	Output     string `json:"output,omitempty" yaml:"output,omitempty"`
}
