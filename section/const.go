package section

import "math"

// Composite key header.
const (
	MagicComposite0  = 'C' // MagicComposite0 is the first byte of every composite key.
	MagicComposite1  = 'M' // MagicComposite1 is the second byte of every composite key.
	MagicComposite2  = 'P' // MagicComposite2 is the third byte of every composite key.
	CompositeVersion = 1   // CompositeVersion is the only version this package reads and writes.

	CompositeHeaderSize = 4                       // magic (3 bytes) + version (1 byte)
	MinCompositeSize    = CompositeHeaderSize + 1 // header + stop marker
	LengthPrefixSize    = 2                       // big-endian uint16 before variable-length payloads
	MaxVariableLength   = math.MaxUint16          // largest variable-length payload
)

// Key set snapshot header.
const (
	MagicSnapshot0  = 'C'
	MagicSnapshot1  = 'K'
	MagicSnapshot2  = 'S'
	SnapshotVersion = 1

	SnapshotHeaderSize = 24
)
