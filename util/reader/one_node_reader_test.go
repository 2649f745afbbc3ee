package reader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/lensens/util/rpctest"
)

const ownerABI = `[{"type":"function","name":"owner","stateMutability":"view",
	"inputs":[{"name":"node","type":"bytes32"}],
	"outputs":[{"name":"","type":"address"}]}]`

func parseOwnerABI(t *testing.T) *abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(ownerABI))
	if err != nil {
		t.Fatalf("parse ABI: %s", err)
	}
	return &parsed
}

func TestReadContractToBytes(t *testing.T) {
	owner := common.HexToAddress("0xf638bf55b9b7b30a7f3286245e13f6198fcc9879")
	encoded := common.LeftPadBytes(owner.Bytes(), 32)

	var gotData string
	srv := rpctest.NewServer(t, map[string]rpctest.Handler{
		"eth_chainId": rpctest.ChainID(1),
		"eth_call": func(params []json.RawMessage) (interface{}, *rpctest.Error) {
			var msg struct {
				Input string `json:"input"`
				Data  string `json:"data"`
			}
			if err := json.Unmarshal(params[0], &msg); err != nil {
				return nil, &rpctest.Error{Code: -32602, Message: err.Error()}
			}
			gotData = msg.Input
			if gotData == "" {
				gotData = msg.Data
			}
			return hexutil.Encode(encoded), nil
		},
	})

	r := NewOneNodeReader("test", srv.URL, 1)
	defer r.Close()

	a := parseOwnerABI(t)
	node := common.HexToHash("0x01")
	out, err := r.ReadContractToBytes(
		context.Background(), 0, common.Address{},
		common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"),
		a, "owner", [32]byte(node),
	)
	if err != nil {
		t.Fatalf("ReadContractToBytes: %s", err)
	}
	if hexutil.Encode(out) != hexutil.Encode(encoded) {
		t.Fatalf("got %x, want %x", out, encoded)
	}

	wantData, _ := a.Pack("owner", [32]byte(node))
	if gotData != hexutil.Encode(wantData) {
		t.Fatalf("call data = %s, want %s", gotData, hexutil.Encode(wantData))
	}

	// the chain id is only checked when the connection is first made
	if _, err := r.ReadContractToBytes(context.Background(), 0, common.Address{}, common.Address{}, a, "owner", [32]byte(node)); err != nil {
		t.Fatalf("second read: %s", err)
	}
	if n := srv.Calls("eth_chainId"); n != 1 {
		t.Fatalf("eth_chainId called %d times, want 1", n)
	}
}

func TestChainIDMismatch(t *testing.T) {
	srv := rpctest.NewServer(t, map[string]rpctest.Handler{
		"eth_chainId": rpctest.ChainID(5),
	})

	r := NewOneNodeReader("test", srv.URL, 1)
	_, err := r.EthClient(context.Background())
	if !errors.Is(err, ErrChainIDMismatch) {
		t.Fatalf("expected ErrChainIDMismatch, got %v", err)
	}
	if srv.Calls("eth_call") != 0 {
		t.Fatal("no call should reach the node after a chain mismatch")
	}
}

func TestNoChainCheckWhenUnknown(t *testing.T) {
	srv := rpctest.NewServer(t, map[string]rpctest.Handler{})

	r := NewOneNodeReader("test", srv.URL, 0)
	if _, err := r.EthClient(context.Background()); err != nil {
		t.Fatalf("EthClient: %s", err)
	}
	if srv.Calls("eth_chainId") != 0 {
		t.Fatal("eth_chainId should not be requested without an expected chain")
	}
}

func TestCallErrorPropagates(t *testing.T) {
	srv := rpctest.NewServer(t, map[string]rpctest.Handler{
		"eth_call": rpctest.Fail(3, "execution reverted"),
	})

	r := NewOneNodeReader("test", srv.URL, 0)
	_, err := r.ReadContractToBytes(context.Background(), 0, common.Address{}, common.Address{}, parseOwnerABI(t), "owner", [32]byte{})
	if err == nil || !strings.Contains(err.Error(), "execution reverted") {
		t.Fatalf("expected revert error, got %v", err)
	}
}
