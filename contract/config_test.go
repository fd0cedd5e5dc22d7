package contract_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockrockettech/artblocks-v3/contract"
	"github.com/blockrockettech/artblocks-v3/sdk"
)

func TestUpdateTokenBaseURI(t *testing.T) {
	tok, host, _ := deployToken(t, 1, 5)

	host.SetCaller(creator)
	require.NoError(t, tok.UpdateTokenBaseURI("http://hello/"))
	assert.Equal(t, "http://hello/", tok.TokenBaseURI())

	ev := lastEventOfType(t, tok, contract.EvTokenBaseURIChanged)
	assert.Equal(t, "http://hello/", ev.Attributes["new"])
}

// Scenario E: empty value and non-administrator callers are both rejected
// with the config left untouched.
func TestUpdateTokenBaseURIRejections(t *testing.T) {
	tok, host, _ := deployToken(t, 1, 5)

	host.SetCaller(creator)
	assert.ErrorIs(t, tok.UpdateTokenBaseURI(""), contract.ErrEmptyValue)

	host.SetCaller(ownerOne)
	assert.ErrorIs(t, tok.UpdateTokenBaseURI("fc.xyz"), contract.ErrNotAdministrator)

	assert.Equal(t, tokenBaseURI, tok.TokenBaseURI())
}

func TestUpdateTokenBaseIpfsURI(t *testing.T) {
	tok, host, _ := deployToken(t, 1, 5)

	host.SetCaller(creator)
	assert.ErrorIs(t, tok.UpdateTokenBaseIpfsURI(""), contract.ErrEmptyValue)

	host.SetCaller(ownerOne)
	assert.ErrorIs(t, tok.UpdateTokenBaseIpfsURI("fc.xyz"), contract.ErrNotAdministrator)

	host.SetCaller(creator)
	require.NoError(t, tok.UpdateTokenBaseIpfsURI("http://hello/"))
	assert.Equal(t, "http://hello/", tok.TokenBaseIpfsURI())

	ev := lastEventOfType(t, tok, contract.EvTokenBaseIPFSURIChanged)
	assert.Equal(t, "http://hello/", ev.Attributes["new"])
}

func TestUpdateAddresses(t *testing.T) {
	tok, host, _ := deployToken(t, 1, 5)

	newArtist := sdk.Address("hive:new-artist")
	newPlatform := sdk.Address("hive:new-platform")

	host.SetCaller(ownerOne)
	assert.ErrorIs(t, tok.UpdateArtistAddress(newArtist), contract.ErrNotAdministrator)
	assert.ErrorIs(t, tok.UpdatePlatformAddress(newPlatform), contract.ErrNotAdministrator)

	host.SetCaller(creator)
	assert.ErrorIs(t, tok.UpdateArtistAddress(sdk.ZeroAddress), contract.ErrZeroAddress)
	assert.ErrorIs(t, tok.UpdatePlatformAddress(sdk.ZeroAddress), contract.ErrZeroAddress)

	require.NoError(t, tok.UpdateArtistAddress(newArtist))
	require.NoError(t, tok.UpdatePlatformAddress(newPlatform))
	assert.Equal(t, newArtist, tok.ArtistAddress())
	assert.Equal(t, newPlatform, tok.PlatformAddress())
}

func TestUpdatePrice(t *testing.T) {
	tok, host, _ := deployToken(t, 1, 5)

	host.SetCaller(ownerOne)
	assert.ErrorIs(t, tok.UpdatePricePerTokenInWei(uint256.NewInt(42)), contract.ErrNotAdministrator)

	host.SetCaller(creator)
	require.NoError(t, tok.UpdatePricePerTokenInWei(uint256.NewInt(0)))
	assert.True(t, tok.PricePerTokenInWei().IsZero())

	require.NoError(t, tok.UpdatePricePerTokenInWei(uint256.NewInt(42)))
	assert.Equal(t, uint64(42), tok.PricePerTokenInWei().Uint64())
}

func TestUpdatePlatformPercentageBounds(t *testing.T) {
	tok, host, _ := deployToken(t, 1, 5)

	host.SetCaller(creator)
	assert.ErrorIs(t, tok.UpdatePlatformPercentage(101), contract.ErrInvalidPercentage)
	assert.Equal(t, uint64(5), tok.PlatformPercentage())

	require.NoError(t, tok.UpdatePlatformPercentage(100))
	assert.Equal(t, uint64(100), tok.PlatformPercentage())

	require.NoError(t, tok.UpdatePlatformPercentage(0))
	assert.Equal(t, uint64(0), tok.PlatformPercentage())
}

func TestUpdateMaxInvocations(t *testing.T) {
	tok, host, _ := deployToken(t, 1, 5)
	require.NoError(t, tok.UpdateMaxInvocations(2))

	purchaseAs(t, tok, host, ownerOne, 1)
	purchaseAs(t, tok, host, ownerOne, 1)

	// lowering below what is already minted would break the supply
	host.SetCaller(creator)
	assert.ErrorIs(t, tok.UpdateMaxInvocations(1), contract.ErrInvalidCap)
	assert.Equal(t, uint64(2), tok.MaxInvocations())

	require.NoError(t, tok.UpdateMaxInvocations(2))
	require.NoError(t, tok.UpdateMaxInvocations(10))
	assert.Equal(t, uint64(10), tok.MaxInvocations())
}

func TestUpdateApplicationChecksum(t *testing.T) {
	tok, host, _ := deployToken(t, 1, 5)

	host.SetCaller(ownerOne)
	assert.ErrorIs(t, tok.UpdateApplicationChecksum([]byte{0x01}), contract.ErrNotAdministrator)

	host.SetCaller(creator)
	require.NoError(t, tok.UpdateApplicationChecksum([]byte{0xde, 0xad, 0xbe, 0xef}))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, tok.ApplicationChecksum())

	ev := lastEventOfType(t, tok, contract.EvChecksumChanged)
	assert.Equal(t, "deadbeef", ev.Attributes["new"])
}

func TestCapInvariantHolds(t *testing.T) {
	tok, host, _ := deployToken(t, 0, 0)
	require.NoError(t, tok.UpdateMaxInvocations(3))

	for i := 0; i < 5; i++ {
		host.SetCaller(ownerOne)
		_, err := tok.PurchaseTo(ownerOne, uint256.NewInt(0))
		if err != nil {
			assert.ErrorIs(t, err, contract.ErrCapacityExceeded)
		}
		assert.LessOrEqual(t, tok.Invocations(), tok.MaxInvocations())
	}
	assert.Equal(t, uint64(3), tok.Invocations())
}
