package keyset

import (
	"fmt"

	"github.com/arloliu/compkey/compress"
	"github.com/arloliu/compkey/format"
	"github.com/arloliu/compkey/internal/options"
)

const (
	// DefaultDegree is the btree degree used when WithDegree is not given.
	DefaultDegree = 32
	// DefaultCompression is the snapshot codec used when WithCompression is not given.
	DefaultCompression = format.CompressionZstd
)

type config struct {
	degree      int
	compression format.CompressionType
}

func defaultConfig() config {
	return config{
		degree:      DefaultDegree,
		compression: DefaultCompression,
	}
}

// Option configures a Set.
type Option = options.Option[*config]

// WithDegree sets the btree node degree. Larger degrees use fewer, wider nodes.
func WithDegree(degree int) Option {
	return options.New(func(c *config) error {
		if degree < 2 {
			return fmt.Errorf("invalid btree degree %d, must be at least 2", degree)
		}
		c.degree = degree

		return nil
	})
}

// WithCompression selects the codec MarshalBinary uses for the snapshot payload.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		c.compression = compression

		return nil
	})
}
