package contenthash

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCID(t *testing.T, codec uint64) cid.Cid {
	t.Helper()
	sum, err := multihash.Sum([]byte("charchar.eth"), multihash.SHA2_256, -1)
	require.NoError(t, err)
	return cid.NewCidV1(codec, sum)
}

func TestDescribeIPFS(t *testing.T) {
	c := testCID(t, cid.DagProtobuf)

	info, err := Describe("ipfs://" + c.String())
	require.NoError(t, err)

	assert.Equal(t, "ipfs", info.Scheme)
	assert.Equal(t, c.String(), info.CID)
	assert.Equal(t, "dag-pb", info.Codec)
	assert.Equal(t, "sha2-256", info.Hash)
	require.NotEmpty(t, info.Encoded)
	assert.Equal(t, byte(0xe3), info.Encoded[0])
}

func TestDescribeKeepsMultibase(t *testing.T) {
	c := testCID(t, cid.DagProtobuf)
	base36, err := c.StringOfBase(multibase.Base36)
	require.NoError(t, err)
	require.Equal(t, byte('k'), base36[0])

	info, err := Describe("ipfs://" + base36)
	require.NoError(t, err)
	assert.Equal(t, base36, info.CID)
	assert.NotEqual(t, c.String(), info.CID)
}

func TestCodecNames(t *testing.T) {
	assert.Equal(t, "libp2p-key", codecName(cid.Libp2pKey))
	assert.Equal(t, "dag-pb", codecName(cid.DagProtobuf))
	assert.Equal(t, "raw", codecName(cid.Raw))
	assert.Equal(t, "sha2-256", hashName(multihash.SHA2_256))
	assert.Equal(t, "identity", hashName(multihash.IDENTITY))
}

func TestDescribeRejectsBadValues(t *testing.T) {
	_, err := Describe("https://example.com")
	assert.True(t, errors.Is(err, ErrUnsupportedScheme))

	_, err = Describe("ipfs://not-a-cid")
	assert.Error(t, err)

	_, err = Describe("k2k4r8kgnix5x0snul9112xdpqgiwc5xmvi8ja0szfhntep2d7qv8zz3")
	assert.Error(t, err)

	_, err = Describe("ipfs://")
	assert.Error(t, err)
}
