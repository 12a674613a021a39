package types

// LinkState is the relationship between a home entry and its source entry
type LinkState string

const (
	// StateAbsent means nothing exists at the home entry path
	StateAbsent LinkState = "absent"
	// StateLinked means the home entry is a symlink whose target equals the source path
	StateLinked LinkState = "linked"
	// StateOccupied means something else exists at the home entry path, including
	// dangling symlinks and symlinks pointing elsewhere
	StateOccupied LinkState = "occupied"
)

// String returns the state name
func (s LinkState) String() string {
	return string(s)
}

// Action is the outcome reported for a single entry or sync step
type Action string

const (
	ActionLinked  Action = "linked"
	ActionExists  Action = "exists"
	ActionForced  Action = "forced"
	ActionRemoved Action = "removed"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"

	ActionUpdated Action = "updated"
	ActionPulled  Action = "pulled"
	ActionAdded   Action = "added"
)

// String returns the action label used in reports
func (a Action) String() string {
	return string(a)
}
