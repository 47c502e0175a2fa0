package composite

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
	"github.com/arloliu/compkey/internal/options"
	"github.com/arloliu/compkey/internal/pool"
	"github.com/arloliu/compkey/section"
)

// builderConfig holds the settings applied by BuilderOption.
type builderConfig struct {
	capacity    int
	strictASCII bool
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*builderConfig]

// WithCapacity reserves room for n encoded bytes up front.
func WithCapacity(n int) BuilderOption {
	return options.New(func(c *builderConfig) error {
		if n < 0 {
			return fmt.Errorf("invalid builder capacity %d", n)
		}
		c.capacity = n

		return nil
	})
}

// WithStrictASCII makes AppendASCII reject text containing non-ASCII characters
// instead of replacing each of them with '?'.
func WithStrictASCII(strict bool) BuilderOption {
	return options.NoError(func(c *builderConfig) {
		c.strictASCII = strict
	})
}

// Builder accumulates components and freezes them into a Composite.
//
// Append methods return the builder for chaining. The first failure is latched:
// later appends are ignored and Freeze returns that error.
//
// Note: Builder is NOT thread-safe. Concurrent appends must be serialized by the caller.
type Builder struct {
	cfg    builderConfig
	buf    *pool.ByteBuffer
	count  int
	err    error
	frozen bool
	result Composite
}

// NewBuilder creates an empty builder.
//
// Parameters:
//   - opts: optional configuration (WithCapacity, WithStrictASCII)
//
// Returns:
//   - *Builder: a builder ready for appends
//   - error: invalid option value
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{}
	if err := options.Apply(&b.cfg, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Append converts v with ValueOf and appends it.
func (b *Builder) Append(v any) *Builder {
	if !b.ready() {
		return b
	}

	val, err := ValueOf(v)
	if err != nil {
		b.err = err
		return b
	}

	return b.AppendValue(val)
}

// AppendAll appends each value in order.
func (b *Builder) AppendAll(values ...any) *Builder {
	for _, v := range values {
		b.Append(v)
	}

	return b
}

// AppendValue appends an already typed component.
func (b *Builder) AppendValue(v Value) *Builder {
	if !b.ready() {
		return b
	}

	switch x := v.(type) {
	case nil:
		b.err = fmt.Errorf("%w: nil value", errs.ErrUnsupportedValue)
		return b
	case ASCII:
		s, err := b.asciiPayload(string(x))
		if err != nil {
			b.err = err
			return b
		}
		v = ASCII(s)
	case UTF8:
		if !utf8.ValidString(string(x)) {
			b.err = fmt.Errorf("%w: invalid UTF-8 text, use Bytes for arbitrary data", errs.ErrUnsupportedValue)
			return b
		}
	case Placeholder:
		if !format.Tag(x).IsPlaceholder() {
			b.err = fmt.Errorf("%w: placeholder with tag %s", errs.ErrUnsupportedValue, format.Tag(x))
			return b
		}
	}

	b.init(encodedSize(v))

	out, err := appendValue(b.buf.B, v)
	if err != nil {
		b.err = fmt.Errorf("%w: %s component of %d bytes, limit %d", err, v.Tag(), encodedSize(v)-1-section.LengthPrefixSize, section.MaxVariableLength)
		return b
	}
	b.buf.B = out
	b.count++

	return b
}

func (b *Builder) AppendBool(v bool) *Builder      { return b.AppendValue(Bool(v)) }
func (b *Builder) AppendLong(v int64) *Builder     { return b.AppendValue(Long(v)) }
func (b *Builder) AppendDouble(v float64) *Builder { return b.AppendValue(Double(v)) }
func (b *Builder) AppendASCII(v string) *Builder   { return b.AppendValue(ASCII(v)) }
func (b *Builder) AppendUTF8(v string) *Builder    { return b.AppendValue(UTF8(v)) }
func (b *Builder) AppendBytes(v []byte) *Builder   { return b.AppendValue(Bytes(v)) }

// AppendUUID appends u as a TimeUUID when it is version 1 and as a LexicalUUID otherwise.
func (b *Builder) AppendUUID(u uuid.UUID) *Builder { return b.AppendValue(UUIDValue(u)) }

// AppendTimeUUID appends u with timestamp ordering regardless of its version field.
func (b *Builder) AppendTimeUUID(u uuid.UUID) *Builder { return b.AppendValue(TimeUUID(u)) }

// AppendLexicalUUID appends u with 128-bit value ordering.
func (b *Builder) AppendLexicalUUID(u uuid.UUID) *Builder { return b.AppendValue(LexicalUUID(u)) }

// AppendMatchMinimum appends the MatchMinimum sentinel. It must be the last append.
func (b *Builder) AppendMatchMinimum() *Builder { return b.AppendValue(MatchMinimum) }

// AppendMatchMaximum appends the MatchMaximum sentinel. It must be the last append.
func (b *Builder) AppendMatchMaximum() *Builder { return b.AppendValue(MatchMaximum) }

// Len returns the number of components appended so far.
func (b *Builder) Len() int {
	return b.count
}

// Err returns the first error latched by an append, if any.
func (b *Builder) Err() error {
	return b.err
}

// Freeze writes the stop marker and returns the immutable composite.
//
// Freeze is idempotent: later calls return the same Composite without re-encoding.
// A builder with no components freezes to the empty composite, which carries no
// header and sorts below every other key.
//
// Appending to a frozen builder latches errs.ErrFrozen, reported by Err; the frozen
// result itself is unaffected.
//
// Returns:
//   - Composite: the frozen key
//   - error: the first error latched by an append before freezing
func (b *Builder) Freeze() (Composite, error) {
	if b.frozen {
		return b.result, nil
	}
	if b.err != nil {
		return Composite{}, b.err
	}

	b.frozen = true
	if b.buf == nil {
		return b.result, nil
	}

	b.buf.B = append(b.buf.B, byte(format.TagStop))
	b.result = Composite{data: b.buf.Clone()}
	pool.PutKeyBuffer(b.buf)
	b.buf = nil

	return b.result, nil
}

// Reset discards all components and errors so the builder can be reused.
func (b *Builder) Reset() {
	if b.buf != nil {
		pool.PutKeyBuffer(b.buf)
	}
	*b = Builder{cfg: b.cfg}
}

func (b *Builder) ready() bool {
	if b.err != nil {
		return false
	}
	if b.frozen {
		b.err = fmt.Errorf("%w: append after freeze", errs.ErrFrozen)
		return false
	}

	return true
}

// init takes a pooled buffer and writes the header on first use, then reserves n bytes.
func (b *Builder) init(n int) {
	if b.buf == nil {
		b.buf = pool.GetKeyBuffer()
		b.buf.Grow(max(b.cfg.capacity, section.MinCompositeSize+n))
		b.buf.B = section.NewCompositeHeader().AppendTo(b.buf.B)
	}
	b.buf.Grow(n + 1)
}

// asciiPayload applies the builder's ASCII policy to s.
func (b *Builder) asciiPayload(s string) (string, error) {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return s, nil
	}
	if b.cfg.strictASCII {
		return "", fmt.Errorf("%w: non-ASCII text %q", errs.ErrUnsupportedValue, s)
	}

	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= utf8.RuneSelf {
			r = '?'
		}
		out = append(out, byte(r))
	}

	return string(out), nil
}
