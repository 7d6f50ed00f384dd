package shamir

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/izouxv/goShamir/utils"
)

// NewShareFromBytes decodes a byte slice produced by Share.Encode.
func NewShareFromBytes(data []byte) (*Share, error) {
	s := &Share{}
	if err := s.Decode(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode serializes the share as two signed, length-prefixed integers.
func (s *Share) Encode() ([]byte, error) {
	if s.X == nil || s.Y == nil {
		return nil, fmt.Errorf("%w: share has a nil coordinate", ErrInvalidParameters)
	}
	buf := bytes.NewBuffer(nil)
	if err := utils.WriteBigInt(buf, s.X); err != nil {
		return nil, err
	}
	if err := utils.WriteBigInt(buf, s.Y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes a byte slice into the share.
func (s *Share) Decode(data []byte) error {
	buf := bytes.NewBuffer(data)

	x, err := utils.ReadBigInt(buf)
	if err != nil {
		return fmt.Errorf("failed to read X value: %w", err)
	}
	y, err := utils.ReadBigInt(buf)
	if err != nil {
		return fmt.Errorf("failed to read Y value: %w", err)
	}
	if buf.Len() != 0 {
		return fmt.Errorf("%d trailing bytes after share", buf.Len())
	}
	s.X, s.Y = x, y
	return nil
}

// Equal reports whether both shares hold the same point.
func (s *Share) Equal(o *Share) bool {
	return s.X.Cmp(o.X) == 0 && s.Y.Cmp(o.Y) == 0
}

// String formats the share as "x:y" in decimal.
func (s *Share) String() string {
	return s.X.String() + ":" + s.Y.String()
}

// ParseShare parses the "x:y" form produced by String.
func ParseShare(text string) (*Share, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return nil, fmt.Errorf("share %q: missing ':' separator", text)
	}
	x, ok := new(big.Int).SetString(xs, 10)
	if !ok {
		return nil, fmt.Errorf("share %q: invalid x %q", text, xs)
	}
	y, ok := new(big.Int).SetString(ys, 10)
	if !ok {
		return nil, fmt.Errorf("share %q: invalid y %q", text, ys)
	}
	return &Share{X: x, Y: y}, nil
}
