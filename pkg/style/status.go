package style

import (
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/pterm/pterm"
)

// ActionStyle returns the pterm label style for a report action
func ActionStyle(action types.Action) *pterm.Style {
	switch action {
	case types.ActionLinked, types.ActionRemoved, types.ActionUpdated, types.ActionPulled, types.ActionAdded:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case types.ActionForced:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	case types.ActionFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StateStyle returns the pterm label style for a link state
func StateStyle(state types.LinkState) *pterm.Style {
	switch state {
	case types.StateLinked:
		return pterm.NewStyle(pterm.FgGreen)
	case types.StateOccupied:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
