package errs

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataError_Unwrap(t *testing.T) {
	err := Dataf(ErrDecode, []byte{0x43, 0x4d, 0x50, 0x01, 0x42}, 4, "unknown tag 0x%02x", 0x42)

	require.ErrorIs(t, err, ErrDecode)
	require.NotErrorIs(t, err, ErrValidation)

	var de *DataError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 4, de.Off)
	require.Equal(t, "compkey: decode failed: unknown tag 0x42 at offset 4: (5) 434d500142", err.Error())
}

func TestDataError_LongDataIsElided(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 200)
	err := Dataf(ErrValidation, data, 0, "bad magic")

	msg := err.Error()
	require.Contains(t, msg, "(200)")
	require.Contains(t, msg, "...")
	require.Less(t, len(msg), 2*200)
}

func TestDataError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("loading key: %w", Dataf(ErrValidation, nil, 0, "empty"))
	require.ErrorIs(t, err, ErrValidation)
}
