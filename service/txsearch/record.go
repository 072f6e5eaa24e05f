package txsearch

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/common/hash"
	"github.com/meverselabs/defizap/node"
)

// Call is a single contract call of a recorded transaction
type Call struct {
	To     common.Address `json:"to"`
	Method string         `json:"method"`
}

// Record is the indexed form of an executed or failed transaction
type Record struct {
	Height    uint32         `json:"height"`
	Hash      hash.Hash256   `json:"hash"`
	Timestamp uint64         `json:"timestamp"`
	From      common.Address `json:"from"`
	Calls     []Call         `json:"calls"`
	Events    uint32         `json:"events"`
	Err       string         `json:"error,omitempty"`
}

func newRecord(height uint32, from common.Address, txs []*node.Tx) *Record {
	r := &Record{
		Height: height,
		From:   from,
		Calls:  make([]Call, 0, len(txs)),
	}
	for _, tx := range txs {
		r.Calls = append(r.Calls, Call{To: tx.To, Method: tx.Method})
	}
	return r
}

// Addresses returns the sender and the called contracts without duplicates
func (r *Record) Addresses() []common.Address {
	list := []common.Address{r.From}
	has := map[common.Address]bool{r.From: true}
	for _, c := range r.Calls {
		if !has[c.To] {
			has[c.To] = true
			list = append(list, c.To)
		}
	}
	return list
}

func (r *Record) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint32(w, r.Height); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, r.Hash[:]); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, r.Timestamp); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, r.From); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, uint32(len(r.Calls))); err != nil {
		return sum, err
	}
	for _, c := range r.Calls {
		if sum, err := sw.Address(w, c.To); err != nil {
			return sum, err
		}
		if sum, err := sw.String(w, c.Method); err != nil {
			return sum, err
		}
	}
	if sum, err := sw.Uint32(w, r.Events); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, r.Err); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (r *Record) ReadFrom(rd io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint32(rd, &r.Height); err != nil {
		return sum, err
	}
	var bs []byte
	if sum, err := sr.Bytes(rd, &bs); err != nil {
		return sum, err
	}
	copy(r.Hash[:], bs)
	if sum, err := sr.Uint64(rd, &r.Timestamp); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(rd, &r.From); err != nil {
		return sum, err
	}
	Len, sum, err := sr.GetUint32(rd)
	if err != nil {
		return sum, err
	}
	r.Calls = make([]Call, Len)
	for i := range r.Calls {
		if sum, err := sr.Address(rd, &r.Calls[i].To); err != nil {
			return sum, err
		}
		if sum, err := sr.String(rd, &r.Calls[i].Method); err != nil {
			return sum, err
		}
	}
	if sum, err := sr.Uint32(rd, &r.Events); err != nil {
		return sum, err
	}
	if sum, err := sr.String(rd, &r.Err); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
