package apiserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type reqData struct {
	req   *JRPCRequest
	resCh chan *JRPCResponse
}

func (s *APIServer) worker() {
	for {
		select {
		case r := <-s.reqCh:
			r.resCh <- s.handleJRPC(r.req)
		case <-s.done:
			return
		}
	}
}

func (s *APIServer) dispatch(req *JRPCRequest) (*JRPCResponse, error) {
	resCh := make(chan *JRPCResponse, 1)
	select {
	case s.reqCh <- &reqData{req: req, resCh: resCh}:
	case <-s.done:
		return nil, ErrServerClosed
	}
	select {
	case res := <-resCh:
		return res, nil
	case <-s.done:
		return nil, ErrServerClosed
	}
}

func decodeRequest(data []byte) (*JRPCRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var req JRPCRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func parseErrorResponse(err error) *JRPCResponse {
	return &JRPCResponse{
		JSONRPC: "2.0",
		Error:   &JRPCError{Code: CodeParseError, Message: err.Error()},
	}
}

func (s *APIServer) handleHTTP(c echo.Context) error {
	defer c.Request().Body.Close()

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(c.Request().Body); err != nil {
		return err
	}
	req, err := decodeRequest(buffer.Bytes())
	if err != nil {
		return c.JSON(http.StatusOK, parseErrorResponse(err))
	}
	res, err := s.dispatch(req)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	if res == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *APIServer) handleWebsocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("websocket closed", zap.Error(err))
			}
			return nil
		}
		var res *JRPCResponse
		if req, err := decodeRequest(data); err != nil {
			res = parseErrorResponse(err)
		} else if res, err = s.dispatch(req); err != nil {
			return nil
		}
		if res == nil {
			continue
		}
		if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			return err
		}
		if err := conn.WriteJSON(res); err != nil {
			return err
		}
	}
}

func (s *APIServer) handleJRPC(req *JRPCRequest) (res *JRPCResponse) {
	res = &JRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
	}
	fail := func(code int, err error) *JRPCResponse {
		if req.ID == nil {
			return nil
		}
		res.Error = &JRPCError{Code: code, Message: err.Error()}
		return res
	}

	if req.JSONRPC != "2.0" || len(req.Method) == 0 {
		return fail(CodeInvalidRequest, ErrInvalidRequest)
	}
	ls := strings.SplitN(req.Method, ".", 2)
	if len(ls) != 2 {
		return fail(CodeMethodNotFound, ErrInvalidMethod)
	}
	s.Lock()
	sub, has := s.subMap[ls[0]]
	s.Unlock()
	if !has {
		return fail(CodeMethodNotFound, ErrInvalidMethod)
	}
	fn, has := sub.get(ls[1])
	if !has {
		return fail(CodeMethodNotFound, ErrInvalidMethod)
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("rpc panic", zap.String("method", req.Method), zap.Any("panic", r))
			res = fail(CodeExecution, fmt.Errorf("%v", r))
		}
	}()
	ret, err := fn(req.ID, NewArgument(req.Params))
	if err != nil {
		s.logger.Debug("rpc failed", zap.String("method", req.Method), zap.Error(err))
		if req.ID == nil {
			return nil
		}
		res.Error = toJRPCError(err)
		return res
	}
	if req.ID == nil {
		return nil
	}
	res.Result = ret
	return res
}
