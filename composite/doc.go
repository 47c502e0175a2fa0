// Package composite implements an order-preserving binary encoding for multi-part
// keys and the comparator that orders them.
//
// A composite key is a short header followed by tagged components and a stop marker:
//
//	+-----+-----+-----+---------+--------------------+-----+--------------------+------+
//	| 'C' | 'M' | 'P' | version | tag | payload      | ... | tag | payload      | 0x00 |
//	+-----+-----+-----+---------+--------------------+-----+--------------------+------+
//
// Fixed-size payloads (Bool, Long, Double, TimeUUID, LexicalUUID) are written without a
// length. Variable-length payloads (ASCII, UTF8, Bytes) carry a 2-byte big-endian
// length, so a single component holds at most 65535 bytes. The MatchMinimum and
// MatchMaximum placeholders carry no payload.
//
// # Ordering
//
// Compare walks two keys in lockstep. Components with the same tag are ordered by
// their type:
//
//   - Bool: false < true
//   - Long: signed integer order
//   - Double: numeric order with -0 < +0 and NaN above +Inf
//   - TimeUUID: embedded timestamp, then raw bytes
//   - LexicalUUID: signed most significant half, then signed least significant half
//   - ASCII, Bytes: unsigned byte order
//   - UTF8: UTF-16 code unit order of the decoded text
//
// When the tags differ the lower tag sorts first. The end of a key sorts above
// MatchMinimum and below everything else, so a shorter key sorts before any longer key
// it is a prefix of. The empty key (zero bytes) sorts below every non-empty key.
//
// # Building keys
//
//	key, err := composite.Encode("smith", "bob", int64(1000))
//
//	b, _ := composite.NewBuilder()
//	key, err = b.AppendUTF8("smith").AppendLong(1000).Freeze()
//
// # Range scans
//
// A placeholder is the last component of a key. LowerBound and UpperBound bracket every
// key that starts with a given prefix:
//
//	lo, _ := composite.LowerBound("smith") // "smith" + MatchMinimum
//	hi, _ := composite.UpperBound("smith") // "smith" + MatchMaximum
//
// # Thread Safety
//
// Composite values and the package-level functions are safe for concurrent use.
// Builder and Decoder are not.
package composite
