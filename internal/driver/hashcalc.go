package driver

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/qtyi/luna-sub005/internal/version"
)

// combineDigest: H(content || part1 || part2 ...). parts уже в детерминированном порядке.
func combineDigest(content Digest, parts ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey identifies a cached parse: the same bytes parsed with the same
// kind, diagnostic cap and tool version give the same diagnostics.
func cacheKey(content Digest, opts Options) Digest {
	var params [11]byte
	binary.LittleEndian.PutUint16(params[0:2], diskCacheSchemaVersion)
	params[2] = byte(opts.Kind)
	binary.LittleEndian.PutUint64(params[3:], uint64(max(opts.MaxDiagnostics, 0))) // #nosec G115 -- non-negative
	return combineDigest(content, params[:], []byte(version.Version))
}
