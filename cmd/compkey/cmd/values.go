package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/arloliu/compkey/composite"
)

// parseValue parses a type:value command line argument.
func parseValue(arg string) (composite.Value, error) {
	switch arg {
	case "min":
		return composite.MatchMinimum, nil
	case "max":
		return composite.MatchMaximum, nil
	}

	kind, text, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("value %q: expected type:value", arg)
	}

	switch kind {
	case "b":
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", arg, err)
		}

		return composite.Bool(v), nil
	case "l":
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", arg, err)
		}

		return composite.Long(v), nil
	case "d":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", arg, err)
		}

		return composite.Double(v), nil
	case "s":
		return composite.UTF8(text), nil
	case "a":
		return composite.ASCII(text), nil
	case "x":
		v, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", arg, err)
		}

		return composite.Bytes(v), nil
	case "u":
		v, err := uuid.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", arg, err)
		}

		return composite.UUIDValue(v), nil
	default:
		return nil, fmt.Errorf("value %q: unknown type %q", arg, kind)
	}
}

func parseValues(args []string) ([]any, error) {
	values := make([]any, 0, len(args))
	for _, arg := range args {
		v, err := parseValue(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// parseHex decodes an encoded key, accepting an optional 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", s, err)
	}

	return b, nil
}

// readHexKeys returns args decoded as keys, or one key per non-blank line of r
// when args is empty.
func readHexKeys(args []string, r io.Reader) ([][]byte, error) {
	if len(args) == 0 {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				args = append(args, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	keys := make([][]byte, 0, len(args))
	for _, arg := range args {
		b, err := parseHex(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, b)
	}

	return keys, nil
}
