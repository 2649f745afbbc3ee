// Package contenthash inspects contenthash record values such as
// ipfs://<cid> or ipns://<cid>.
package contenthash

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"
	goens "github.com/wealdtech/go-ens/v3"
)

var ErrUnsupportedScheme = errors.New("unsupported contenthash scheme")

type Info struct {
	Scheme string
	// CID fields are only set for ipfs and ipns values. CID is kept in the
	// multibase it was written in.
	CID   string
	Codec string
	Hash  string
	// Encoded is the EIP-1577 binary form an ENS resolver would store.
	Encoded []byte
}

func Describe(value string) (Info, error) {
	scheme, data, found := strings.Cut(value, "://")
	if !found || data == "" {
		return Info{}, errors.Newf("contenthash %q is not of the form <scheme>://<data>", value)
	}

	info := Info{Scheme: strings.ToLower(scheme)}
	switch info.Scheme {
	case "ipfs", "ipns":
		c, err := cid.Decode(data)
		if err != nil {
			return Info{}, errors.Wrapf(err, "invalid cid in %q", value)
		}
		prefix := c.Prefix()
		info.CID = data
		info.Codec = codecName(prefix.Codec)
		info.Hash = hashName(prefix.MhType)
	case "bzz", "swarm", "onion", "onion3":
	default:
		return Info{}, errors.Wrapf(ErrUnsupportedScheme, "%q", scheme)
	}

	encoded, err := goens.StringToContenthash(info.Scheme + "://" + data)
	if err != nil {
		return Info{}, errors.Wrapf(err, "failed to encode %q", value)
	}
	info.Encoded = encoded
	return info, nil
}

// codecName and hashName share the multicodec table, unknown codes render
// as Code(n).
func codecName(code uint64) string {
	return multicodec.Code(code).String()
}

func hashName(code uint64) string {
	return multicodec.Code(code).String()
}
