package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// MaxVarBytes caps a single length-prefixed field when decoding.
var MaxVarBytes int64 = 1 << 20

var ErrFieldTooLarge = errors.New("length-prefixed field exceeds limit")

type readByte struct {
	in   io.Reader
	read int
}

func (s *readByte) ReadByte() (byte, error) {
	var data [1]byte
	_, err := io.ReadFull(s.in, data[:])
	if err != nil {
		return 0, err
	}
	s.read++
	return data[0], nil
}

func ReadVarInt(r io.Reader) (num int64, n int64, err error) {
	rb := &readByte{in: r}
	num, err = binary.ReadVarint(rb)
	return num, int64(rb.read), err
}

func WriteVarInt(w io.Writer, num int64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], num)
	_, err := w.Write(buf[:n])
	return err
}

func ReadVarBytes(r io.Reader) (data []byte, varIntLen int, err error) {
	num, n, err := ReadVarInt(r)
	if err != nil {
		return nil, 0, err
	}
	if num < 0 || num > MaxVarBytes {
		return nil, int(n), fmt.Errorf("%w: %d bytes", ErrFieldTooLarge, num)
	}
	data = make([]byte, num)
	_, err = io.ReadFull(r, data)
	return data, int(n), err
}

func WriteVarBytes(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, int64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// WriteBigInt writes a sign byte followed by the length-prefixed magnitude of v.
func WriteBigInt(w io.Writer, v *big.Int) error {
	sign := byte(0)
	if v.Sign() < 0 {
		sign = 1
	}
	if _, err := w.Write([]byte{sign}); err != nil {
		return err
	}
	return WriteVarBytes(w, v.Bytes())
}

// ReadBigInt reads a value written by WriteBigInt.
func ReadBigInt(r io.Reader) (*big.Int, error) {
	var sign [1]byte
	if _, err := io.ReadFull(r, sign[:]); err != nil {
		return nil, err
	}
	if sign[0] > 1 {
		return nil, fmt.Errorf("invalid sign byte %#x", sign[0])
	}
	mag, _, err := ReadVarBytes(r)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(mag)
	if sign[0] == 1 {
		v.Neg(v)
	}
	return v, nil
}
