// Package keyset keeps composite keys in an ordered in-memory set and serializes
// it to compressed snapshots.
//
// The set is a github.com/google/btree ordered by composite.Compare, so range and
// prefix scans visit keys in the same order a store using the composite comparator
// would:
//
//	set, _ := keyset.New()
//	set.Add("smith", "bob", int64(1000))
//	set.Add("smith", "alice", int64(7))
//	set.Add("hello", int64(256))
//
//	keys, _ := set.ScanPrefix("smith")
//	for key := range keys {
//	    fmt.Println(key) // smith,alice,7 then smith,bob,1000
//	}
//
// # Snapshots
//
// MarshalBinary writes a 24-byte header (see section.SnapshotHeader) followed by the
// payload compressed with the configured codec (see package compress). The header
// records the key count, the raw payload size and an xxHash64 checksum of the raw
// payload, all verified by Unmarshal.
package keyset
