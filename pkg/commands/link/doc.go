// Package link implements the link command: every top-level entry of the
// repository source directory gets a same-named symlink in the home root.
//
// Each entry is classified by pkg/linkstate first:
//
//	absent              -> symlink created           (linked)
//	occupied or linked  -> left alone                (exists)
//	    with Force      -> removed, then symlinked   (forced)
//
// Forcing removes directories recursively. A mutation that fails marks the
// entry failed and the run moves on to the next entry.
package link
