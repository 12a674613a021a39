// Package linkstate classifies the relationship between a source entry in the
// repository and the corresponding entry in the home directory.
//
// The classification is recomputed from the filesystem on every call. There
// is no cache and no recorded state: the filesystem is the only truth.
package linkstate

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Resolution is the classified state of one source entry
type Resolution struct {
	Source string
	Target string
	State  types.LinkState
	// LinkTarget is the raw symlink target when Target is a symlink
	LinkTarget string
}

// HomeEntry returns the path in homeRoot that corresponds to source
func HomeEntry(homeRoot, source string) string {
	return filepath.Join(homeRoot, filepath.Base(source))
}

// Resolve classifies source against its home entry. A home entry is linked
// only when it is a symlink whose target equals source exactly, byte for
// byte. Relative or otherwise equivalent targets count as occupied.
func Resolve(fs types.FS, source, homeRoot string) (Resolution, error) {
	logger := logging.GetLogger("linkstate")

	res := Resolution{
		Source: source,
		Target: HomeEntry(homeRoot, source),
		State:  types.StateOccupied,
	}

	info, err := fs.Lstat(res.Target)
	if err != nil {
		if os.IsNotExist(err) {
			res.State = types.StateAbsent
			return res, nil
		}
		return res, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", res.Target).
			WithDetail("path", res.Target)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return res, nil
	}

	linkTarget, err := fs.Readlink(res.Target)
	if err != nil {
		return res, errors.Wrapf(err, errors.ErrFileAccess, "failed to read symlink %s", res.Target).
			WithDetail("path", res.Target)
	}
	res.LinkTarget = linkTarget

	if linkTarget == source {
		res.State = types.StateLinked
	}

	logger.Trace().
		Str("source", source).
		Str("target", res.Target).
		Str("linkTarget", linkTarget).
		Str("state", res.State.String()).
		Msg("Resolved symlink")

	return res, nil
}
