package cmd

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/tranvictor/lensens/config"
	"github.com/tranvictor/lensens/lens"
	"github.com/tranvictor/lensens/resolver"
	"github.com/tranvictor/lensens/ui"
)

var charcharOwner = common.HexToAddress("0xF638Bf55B9B7B30A7f3286245E13f6198FCc9879")

type fakeOwners struct {
	nodes [][32]byte
}

func (f *fakeOwners) Owner(ctx context.Context, node [32]byte) (common.Address, error) {
	f.nodes = append(f.nodes, node)
	return charcharOwner, nil
}

type fakeAttributes []lens.Attribute

func (f fakeAttributes) Attributes(ctx context.Context, owner common.Address) ([]lens.Attribute, error) {
	return f, nil
}

func runCLI(t *testing.T, attrs []lens.Attribute, args ...string) (*ui.RecordingUI, *fakeOwners, error) {
	t.Helper()
	t.Setenv("LENSENS_RPC", "http://unused.invalid")

	rec := ui.NewRecordingUI()
	owners := &fakeOwners{}

	origUI, origResolver := newUI, newResolver
	t.Cleanup(func() {
		newUI, newResolver = origUI, origResolver
		DecodeContentHash = false
	})
	newUI = func() ui.UI { return rec }
	newResolver = func(opts config.Options) (*resolver.Resolver, error) {
		return resolver.NewFromOptions(opts,
			resolver.WithOwnerLookup(owners),
			resolver.WithAttributeSource(fakeAttributes(attrs)),
		)
	}

	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return rec, owners, err
}

var charcharAttrs = []lens.Attribute{
	{Key: "website", Value: "https://me3.eth.limo/#/charchar.eth"},
	{Key: "twitter", Value: "0xcharchar"},
	{Key: "hasPrideLogo", Value: "true"},
	{Key: "app", Value: "Lenster"},
}

func TestTextCommandByName(t *testing.T) {
	rec, owners, err := runCLI(t, charcharAttrs, "text", "charchar.eth", "twitter")
	require.NoError(t, err)

	assert.Equal(t, []string{"0xcharchar"}, rec.Values())

	want, err := goens.NameHash("charchar.eth")
	require.NoError(t, err)
	require.Len(t, owners.nodes, 1)
	assert.Equal(t, want, owners.nodes[0])
}

func TestTextCommandByNode(t *testing.T) {
	node := "0x" + common.Bytes2Hex(common.LeftPadBytes([]byte{0x2a}, 32))
	rec, owners, err := runCLI(t, charcharAttrs, "text", node, "app")
	require.NoError(t, err)

	assert.Equal(t, []string{"Lenster"}, rec.Values())
	assert.Equal(t, byte(0x2a), owners.nodes[0][31])
}

func TestTextCommandNotFound(t *testing.T) {
	rec, _, err := runCLI(t, charcharAttrs, "text", "charchar.eth", "github")
	require.NoError(t, err)

	assert.Empty(t, rec.Values())
	assert.True(t, rec.HasMessage("no github record"))
}

func TestContenthashCommandDecode(t *testing.T) {
	sum, err := multihash.Sum([]byte("site"), multihash.SHA2_256, -1)
	require.NoError(t, err)
	value := "ipfs://" + cid.NewCidV1(cid.DagProtobuf, sum).String()

	rec, _, err := runCLI(t, []lens.Attribute{{Key: "contenthash", Value: value}}, "contenthash", "charchar.eth", "--decode")
	require.NoError(t, err)

	assert.Equal(t, []string{value}, rec.Values())
	assert.True(t, rec.HasMessage("scheme=ipfs"))
	assert.True(t, rec.HasMessage("hash=sha2-256"))
	assert.True(t, rec.HasMessage("eip1577=0xe301"))
}

func TestContenthashCommandNoProfile(t *testing.T) {
	rec, _, err := runCLI(t, nil, "contenthash", "charchar.eth")
	require.NoError(t, err)

	assert.Empty(t, rec.Values())
	assert.True(t, rec.HasMessage("no contenthash record"))
}

func TestOwnerCommand(t *testing.T) {
	rec, _, err := runCLI(t, nil, "owner", "charchar.eth")
	require.NoError(t, err)

	assert.True(t, rec.HasMessage("owner="+charcharOwner.Hex()))
	assert.True(t, rec.HasMessage("registry=0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"))
}

func TestAttrsCommand(t *testing.T) {
	rec, _, err := runCLI(t, charcharAttrs, "attrs", "charchar.eth")
	require.NoError(t, err)

	tables := rec.TableRows()
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"twitter", "0xcharchar"}, tables[0][1])
	assert.Len(t, tables[0], 4)
}

func TestMissingRPCURL(t *testing.T) {
	_, _, err := runCLI(t, nil, "text", "charchar.eth", "twitter")
	require.NoError(t, err)

	t.Setenv("LENSENS_RPC", "")
	t.Setenv("ETHEREUM_MAINNET_NODE", "")
	_, err = getResolver()
	assert.True(t, errors.Is(err, config.ErrMissingRPCURL))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestNetworkNodeEnvFallback(t *testing.T) {
	_, _, err := runCLI(t, nil, "version")
	require.NoError(t, err)

	t.Setenv("LENSENS_RPC", "")
	t.Setenv("ETHEREUM_MAINNET_NODE", "http://mainnet-node:8545")
	opts, err := loadOptions()
	require.NoError(t, err)
	assert.Equal(t, "http://mainnet-node:8545", opts.RPCURL)
	assert.Equal(t, "homestead", opts.Network)
}
