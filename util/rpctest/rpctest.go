// Package rpctest serves canned JSON-RPC responses over httptest for tests
// that exercise real go-ethereum clients.
package rpctest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type Handler func(params []json.RawMessage) (interface{}, *Error)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type request struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]Handler
	calls    map[string]int
}

// NewServer starts a JSON-RPC server answering the given methods. Unknown
// methods get a -32601 error. The server is closed when t finishes.
func NewServer(t testing.TB, handlers map[string]Handler) *Server {
	t.Helper()
	s := &Server{
		handlers: handlers,
		calls:    map[string]int{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.calls[req.Method]++
	handler, found := s.handlers[req.Method]
	s.mu.Unlock()

	resp := response{JSONRPC: "2.0", ID: req.ID}
	if !found {
		resp.Error = &Error{Code: -32601, Message: "method not found: " + req.Method}
	} else {
		resp.Result, resp.Error = handler(req.Params)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Calls returns how many times method was requested.
func (s *Server) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// ChainID answers eth_chainId with id.
func ChainID(id uint64) Handler {
	return func([]json.RawMessage) (interface{}, *Error) {
		return hexutil.EncodeUint64(id), nil
	}
}

// Result answers with a fixed value.
func Result(v interface{}) Handler {
	return func([]json.RawMessage) (interface{}, *Error) {
		return v, nil
	}
}

// Fail answers with a JSON-RPC error.
func Fail(code int, message string) Handler {
	return func([]json.RawMessage) (interface{}, *Error) {
		return nil, &Error{Code: code, Message: message}
	}
}
