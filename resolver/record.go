package resolver

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	TEXT_SELECTOR        string = "text(bytes32,string)"
	CONTENTHASH_SELECTOR string = "contenthash(bytes32)"

	CONTENTHASH_KEY string = "contenthash"
)

var (
	ErrUnsupportedSelector = errors.New("unsupported selector")
	ErrInvalidArguments    = errors.New("invalid arguments")
)

type RecordKind int

const (
	KindText RecordKind = iota
	KindContentHash
)

// Record is what is being resolved for a node: a text record under some key,
// or the content hash. Build one with TextRecord or ContentHash.
type Record struct {
	kind RecordKind
	key  string
}

func TextRecord(key string) Record {
	return Record{kind: KindText, key: key}
}

func ContentHash() Record {
	return Record{kind: KindContentHash}
}

func (r Record) Kind() RecordKind {
	return r.kind
}

// Key is the profile attribute key that holds the record.
func (r Record) Key() string {
	if r.kind == KindContentHash {
		return CONTENTHASH_KEY
	}
	return r.key
}

func (r Record) Selector() string {
	if r.kind == KindContentHash {
		return CONTENTHASH_SELECTOR
	}
	return TEXT_SELECTOR
}

func (r Record) String() string {
	if r.kind == KindContentHash {
		return CONTENTHASH_SELECTOR
	}
	return "text(" + r.key + ")"
}

// ParseCall turns a function selector and its positional arguments into a
// node and a Record.
func ParseCall(selector string, args ...interface{}) ([32]byte, Record, error) {
	switch selector {
	case TEXT_SELECTOR:
		if len(args) != 2 {
			return [32]byte{}, Record{}, errors.Wrapf(ErrInvalidArguments, "%s takes 2 arguments, got %d", selector, len(args))
		}
		node, err := ParseNode(args[0])
		if err != nil {
			return [32]byte{}, Record{}, err
		}
		key, ok := args[1].(string)
		if !ok {
			return [32]byte{}, Record{}, errors.Wrapf(ErrInvalidArguments, "key must be a string, got %T", args[1])
		}
		return node, TextRecord(key), nil
	case CONTENTHASH_SELECTOR:
		if len(args) != 1 {
			return [32]byte{}, Record{}, errors.Wrapf(ErrInvalidArguments, "%s takes 1 argument, got %d", selector, len(args))
		}
		node, err := ParseNode(args[0])
		if err != nil {
			return [32]byte{}, Record{}, err
		}
		return node, ContentHash(), nil
	default:
		return [32]byte{}, Record{}, errors.Wrapf(ErrUnsupportedSelector, "%q", selector)
	}
}

// ParseNode accepts a node as [32]byte, common.Hash, a 32 byte slice or a
// 0x prefixed hex string of 32 bytes.
func ParseNode(v interface{}) ([32]byte, error) {
	switch n := v.(type) {
	case [32]byte:
		return n, nil
	case common.Hash:
		return n, nil
	case []byte:
		if len(n) != 32 {
			return [32]byte{}, errors.Wrapf(ErrInvalidArguments, "node must be 32 bytes, got %d", len(n))
		}
		return [32]byte(n), nil
	case string:
		if !strings.HasPrefix(n, "0x") && !strings.HasPrefix(n, "0X") {
			return [32]byte{}, errors.Wrapf(ErrInvalidArguments, "node %q is not 0x prefixed hex", n)
		}
		b, err := hexutil.Decode(strings.ToLower(n[:2]) + n[2:])
		if err != nil {
			return [32]byte{}, errors.Wrapf(ErrInvalidArguments, "node %q: %s", n, err)
		}
		return ParseNode(b)
	default:
		return [32]byte{}, errors.Wrapf(ErrInvalidArguments, "node has unsupported type %T", v)
	}
}
