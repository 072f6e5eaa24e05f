package apiserver

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"go.uber.org/zap"
)

// WorkerCount is the number of goroutines handling rpc requests
const WorkerCount = 16

// APIServer provides json rpc over http and websocket
type APIServer struct {
	sync.Mutex
	e      *echo.Echo
	subMap map[string]*JRPCSub
	logger *zap.Logger
	reqCh  chan *reqData
	done   chan struct{}
	once   sync.Once
}

// NewAPIServer returns a APIServer
func NewAPIServer(logger *zap.Logger) *APIServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &APIServer{
		e:      echo.New(),
		subMap: map[string]*JRPCSub{},
		logger: logger,
		reqCh:  make(chan *reqData),
		done:   make(chan struct{}),
	}
	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	s.e.Use(middleware.Recover())
	s.e.POST("/api/endpoints/http", s.handleHTTP)
	s.e.GET("/api/endpoints/websocket", s.handleWebsocket)
	for i := 0; i < WorkerCount; i++ {
		go s.worker()
	}
	return s
}

// Handler returns the http handler of the apiserver
func (s *APIServer) Handler() http.Handler {
	return s.e
}

// Run starts web service of the apiserver
func (s *APIServer) Run(BindAddress string) error {
	s.logger.Info("apiserver listening", zap.String("bind", BindAddress))
	if err := s.e.Start(BindAddress); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the web service and its workers
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.once.Do(func() {
		close(s.done)
	})
	return s.e.Shutdown(ctx)
}

// JRPC provides the json rpc feature as a SubName.FunctionName methods
func (s *APIServer) JRPC(SubName string) (*JRPCSub, error) {
	s.Lock()
	defer s.Unlock()

	if _, has := s.subMap[SubName]; has {
		return nil, ErrExistSubName
	}
	js := NewJRPCSub()
	s.subMap[SubName] = js
	return js, nil
}
