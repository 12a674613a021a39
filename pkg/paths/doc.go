// Package paths resolves dotlink's configuration into absolute locations.
//
// A Paths value is built once at startup from the loaded config.Config and
// the user's home directory, then passed explicitly to every command. No
// command looks up $HOME or the repository location on its own.
//
// # Layout
//
//	$HOME                         home root, where links are created
//	<repository.path>             managed repository (default ~/.dotfiles)
//	<repository.path>/<source>    source directory (default home/)
//	<repository.path>/<manifest>  subtree manifest (default .subtrees)
//
// # Environment Variables
//
//   - HOME: home root; falls back to os.UserHomeDir
//   - DOTLINK_REPOSITORY_PATH and friends: see pkg/config
package paths
