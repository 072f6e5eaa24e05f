package bin

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
)

// SumReader accumulates the number of read bytes across calls
type SumReader struct {
	sum int64
}

func NewSumReader() *SumReader {
	return &SumReader{
		sum: 0,
	}
}

func (sr *SumReader) Uint8(r io.Reader, p *uint8) (int64, error) {
	v, n, err := ReadUint8(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) Uint32(r io.Reader, p *uint32) (int64, error) {
	v, n, err := ReadUint32(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) GetUint32(r io.Reader) (uint32, int64, error) {
	v, n, err := ReadUint32(r)
	sr.sum += n
	return v, sr.sum, err
}

func (sr *SumReader) Uint64(r io.Reader, p *uint64) (int64, error) {
	v, n, err := ReadUint64(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) Bytes(r io.Reader, p *[]byte) (int64, error) {
	v, n, err := ReadBytes(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) String(r io.Reader, p *string) (int64, error) {
	v, n, err := ReadString(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) Bool(r io.Reader, p *bool) (int64, error) {
	v, n, err := ReadBool(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = v
	return sr.sum, nil
}

func (sr *SumReader) Address(r io.Reader, p *common.Address) (int64, error) {
	v, n, err := ReadBytes(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	copy((*p)[:], v)
	return sr.sum, nil
}

func (sr *SumReader) Amount(r io.Reader, p **amount.Amount) (int64, error) {
	v, n, err := ReadBytes(r)
	sr.sum += n
	if err != nil {
		return sr.sum, err
	}
	*p = amount.NewAmountFromBytes(v)
	return sr.sum, nil
}

func (sr *SumReader) Sum() int64 {
	return sr.sum
}
