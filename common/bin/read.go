package bin

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MaxBytesLength bounds a single length-prefixed field
const MaxBytesLength = 64 << 20

// ReadUint64 reads a uint64 number from the reader
func ReadUint64(r io.Reader) (uint64, int64, error) {
	BNum := make([]byte, 8)
	n, err := FillBytes(r, BNum)
	if err != nil {
		return 0, n, err
	}
	return binary.LittleEndian.Uint64(BNum), n, nil
}

// ReadUint32 reads a uint32 number from the reader
func ReadUint32(r io.Reader) (uint32, int64, error) {
	BNum := make([]byte, 4)
	n, err := FillBytes(r, BNum)
	if err != nil {
		return 0, n, err
	}
	return binary.LittleEndian.Uint32(BNum), n, nil
}

// ReadUint8 reads a uint8 number from the reader
func ReadUint8(r io.Reader) (uint8, int64, error) {
	BNum := make([]byte, 1)
	n, err := FillBytes(r, BNum)
	if err != nil {
		return 0, n, err
	}
	return BNum[0], n, nil
}

// ReadBytes reads a length-prefixed byte array from the reader
func ReadBytes(r io.Reader) ([]byte, int64, error) {
	Len, read, err := ReadUint32(r)
	if err != nil {
		return nil, read, err
	}
	if Len > MaxBytesLength {
		return nil, read, errors.WithStack(ErrInvalidLength)
	}
	bs := make([]byte, Len)
	if Len == 0 {
		return bs, read, nil
	}
	n, err := FillBytes(r, bs)
	read += n
	if err != nil {
		return nil, read, err
	}
	return bs, read, nil
}

// ReadString reads a string array from the reader
func ReadString(r io.Reader) (string, int64, error) {
	bs, n, err := ReadBytes(r)
	if err != nil {
		return "", n, err
	}
	return string(bs), n, nil
}

// ReadBool reads a bool using a uint8 from the reader
func ReadBool(r io.Reader) (bool, int64, error) {
	v, n, err := ReadUint8(r)
	if err != nil {
		return false, n, err
	}
	return v == 1, n, nil
}

// FillBytes reads bytes from the reader until the given bytes array is filled
func FillBytes(r io.Reader, bs []byte) (int64, error) {
	n, err := io.ReadFull(r, bs)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return int64(n), errors.WithStack(ErrInvalidLength)
		}
		return int64(n), errors.WithStack(err)
	}
	return int64(n), nil
}

// ReadFromBytes fills the ReaderFrom with the bytes
func ReadFromBytes(r io.ReaderFrom, bs []byte) (int64, error) {
	n, err := r.ReadFrom(bytes.NewReader(bs))
	if err != nil {
		return n, err
	}
	return n, nil
}
