package bin

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
)

// SumWriter accumulates the number of written bytes across calls
type SumWriter struct {
	sum int64
}

func NewSumWriter() *SumWriter {
	return &SumWriter{
		sum: 0,
	}
}

func (sw *SumWriter) Uint8(w io.Writer, v uint8) (int64, error) {
	n, err := WriteUint8(w, v)
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) Uint32(w io.Writer, v uint32) (int64, error) {
	n, err := WriteUint32(w, v)
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) Uint64(w io.Writer, v uint64) (int64, error) {
	n, err := WriteUint64(w, v)
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) Bytes(w io.Writer, v []byte) (int64, error) {
	n, err := WriteBytes(w, v)
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) String(w io.Writer, v string) (int64, error) {
	n, err := WriteString(w, v)
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) Bool(w io.Writer, v bool) (int64, error) {
	n, err := WriteBool(w, v)
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) Address(w io.Writer, v common.Address) (int64, error) {
	n, err := WriteBytes(w, v[:])
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) Amount(w io.Writer, v *amount.Amount) (int64, error) {
	var bs []byte
	if v != nil && v.Int != nil {
		bs = v.Bytes()
	}
	n, err := WriteBytes(w, bs)
	sw.sum += n
	return sw.sum, err
}

func (sw *SumWriter) Sum() int64 {
	return sw.sum
}
