package keyset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/btree"

	"github.com/arloliu/compkey/composite"
	"github.com/arloliu/compkey/compress"
	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
	"github.com/arloliu/compkey/internal/hash"
	"github.com/arloliu/compkey/internal/pool"
	"github.com/arloliu/compkey/section"
)

// MarshalBinary serializes the set into a snapshot.
//
// Layout: a 24-byte section.SnapshotHeader followed by the compressed payload. The
// raw payload is every key in ascending order, each preceded by its length as an
// unsigned varint. When the configured codec does not shrink the payload it is
// stored uncompressed and the header records CompressionNone.
//
// Returns:
//   - []byte: the snapshot
//   - error: errs.ErrOversizeValue if the payload exceeds 4GiB, or a codec error
func (s *Set) MarshalBinary() ([]byte, error) {
	tree := s.snapshot()

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	tree.Ascend(func(k composite.Composite) bool {
		buf.B = binary.AppendUvarint(buf.B, uint64(len(k.Bytes())))
		buf.MustWrite(k.Bytes())

		return true
	})

	if uint64(buf.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: snapshot payload of %d bytes", errs.ErrOversizeValue, buf.Len())
	}

	codec, err := compress.GetCodec(s.cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	header := section.NewSnapshotHeader(codec.Type())
	if len(compressed) >= buf.Len() {
		header.Compression = format.CompressionNone
		compressed = buf.Bytes()
	}
	header.KeyCount = uint32(tree.Len()) //nolint:gosec
	header.RawSize = uint32(buf.Len())   //nolint:gosec
	header.Checksum = hash.Sum(buf.Bytes())

	out := make([]byte, 0, section.SnapshotHeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// UnmarshalBinary replaces the contents of the set with the keys in a snapshot.
// On error the set is left unchanged.
func (s *Set) UnmarshalBinary(data []byte) error {
	tree, err := readSnapshot(data, s.cfg.degree)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()

	return nil
}

// Unmarshal creates a set from a snapshot produced by MarshalBinary.
//
// Parameters:
//   - data: the snapshot
//   - opts: configuration for the new set; the snapshot's own compression does not
//     change the codec used by later MarshalBinary calls
//
// Returns:
//   - *Set: the restored set
//   - error: errs.ErrValidation for a bad header or checksum, errs.ErrDecode for a
//     payload that cannot be decompressed or parsed
func Unmarshal(data []byte, opts ...Option) (*Set, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, err
	}

	return s, nil
}

func readSnapshot(data []byte, degree int) (*btree.BTreeG[composite.Composite], error) {
	header, err := section.ParseSnapshotHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := compress.DecompressSize(codec, data[section.SnapshotHeaderSize:], int(header.RawSize))
	if err != nil {
		return nil, errs.Dataf(errs.ErrDecode, data, section.SnapshotHeaderSize, "%s payload: %v", header.Compression, err)
	}
	if sum := hash.Sum(payload); sum != header.Checksum {
		return nil, errs.Dataf(errs.ErrValidation, data, 16, "checksum mismatch: header %016x, payload %016x", header.Checksum, sum)
	}
	if header.Compression == format.CompressionNone {
		// keys must not alias the caller's buffer
		payload = bytes.Clone(payload)
	}

	tree := btree.NewG(degree, less)
	off := 0
	for off < len(payload) {
		n, w := binary.Uvarint(payload[off:])
		if w <= 0 || n > uint64(len(payload)-off-w) {
			return nil, errs.Dataf(errs.ErrDecode, payload, off, "bad key length")
		}
		off += w

		key, err := composite.FromBytes(payload[off : off+int(n) : off+int(n)]) //nolint:gosec
		if err != nil {
			return nil, err
		}
		tree.ReplaceOrInsert(key)
		off += int(n) //nolint:gosec
	}

	if tree.Len() != int(header.KeyCount) {
		return nil, errs.Dataf(errs.ErrValidation, data, 8, "snapshot holds %d keys, header says %d", tree.Len(), header.KeyCount)
	}

	return tree, nil
}
