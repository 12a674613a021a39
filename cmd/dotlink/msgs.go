package dotlink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep dotfiles in git and link them into $HOME"
	MsgCloneShort      = "Clone a dotfiles repository"
	MsgUpdateShort     = "Pull the repository and, optionally, its subtrees"
	MsgLinkShort       = "Link repository entries into $HOME"
	MsgUnlinkShort     = "Remove links created by link"
	MsgImportShort     = "Move a file from $HOME into the repository"
	MsgStatusShort     = "Show how each repository entry relates to $HOME"
	MsgConfigShort     = "Print the effective configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgPretendNotice = "pretend mode: no changes were made"
	MsgNoEntries     = "No entries in %s\n"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrInitPaths   = "failed to resolve paths: %w"
	MsgErrOutput      = "invalid --output value: %w"
	MsgErrConfigPrint = "failed to render configuration: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (--verbose INFO, twice DEBUG, three times TRACE)"
	MsgFlagOutput    = "Output format: auto, term, text, json or yaml"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/dotlink/config.toml)"
	MsgFlagRepo      = "Managed repository path (overrides repository.path)"
	MsgFlagForce     = "Replace whatever occupies a home entry"
	MsgFlagPretend   = "Report what would happen without changing anything"
	MsgFlagSubtrees  = "Also sync every subtree listed in the manifest"
	MsgFlagDefaults  = "Print the built-in defaults instead of the effective configuration"
	MsgVersionFormat = "dotlink {{.Version}}\n"
)

// Examples
const (
	MsgCloneExample  = "  dotlink clone https://github.com/me/dotfiles.git"
	MsgUpdateExample = "  dotlink update\n  dotlink update --subtrees"
	MsgLinkExample   = "  dotlink link --pretend\n  dotlink link --force"
	MsgUnlinkExample = "  dotlink unlink -p"
	MsgImportExample = "  dotlink import .vimrc\n  dotlink import .config/starship.toml"
)

// Long messages loaded from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/clone-long.txt
	msgCloneLongRaw string
	MsgCloneLong    = strings.TrimSpace(msgCloneLongRaw)

	//go:embed msgs/update-long.txt
	msgUpdateLongRaw string
	MsgUpdateLong    = strings.TrimSpace(msgUpdateLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/unlink-long.txt
	msgUnlinkLongRaw string
	MsgUnlinkLong    = strings.TrimSpace(msgUnlinkLongRaw)

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
