package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/meverselabs/defizap/service/apiserver"
	"github.com/pkg/errors"
)

var client = &http.Client{Timeout: 30 * time.Second}

type rpcResponse struct {
	ID     interface{}          `json:"id"`
	Result json.RawMessage      `json:"result"`
	Error  *apiserver.JRPCError `json:"error"`
}

// DoRequest calls the json rpc method of the node and returns the raw result
func DoRequest(hostURL string, Method string, Params []interface{}) (json.RawMessage, error) {
	req := &apiserver.JRPCRequest{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  Method,
		Params:  Params,
	}
	bs, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	r, err := client.Post(hostURL+"/api/endpoints/http", "application/json", bytes.NewReader(bs))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		return nil, errors.Errorf("%v: %v", Method, r.Status)
	}

	var res rpcResponse
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		return nil, errors.WithStack(err)
	}
	if res.Error != nil {
		return nil, errors.Errorf("%v (code %v)", res.Error.Message, res.Error.Code)
	}
	return res.Result, nil
}
