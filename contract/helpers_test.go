package contract_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/blockrockettech/artblocks-v3/contract"
	"github.com/blockrockettech/artblocks-v3/sdk"
)

const (
	creator  = sdk.Address("hive:creator")
	artist   = sdk.Address("hive:artist")
	platform = sdk.Address("hive:platform")
	ownerOne = sdk.Address("hive:owner-one")
	ownerTwo = sdk.Address("hive:owner-two")
	operator = sdk.Address("hive:operator")

	tokenBaseURI = "https://artblocks.com/"
)

const startingBalance = 1_000_000

// deployToken deploys a fresh contract with the given price and platform
// percentage. The creator deploys (and so is administrator), the platform
// address is moved off the creator, and buyer accounts are funded.
func deployToken(t *testing.T, price uint64, platformPct uint64) (*contract.SimpleArtistToken, *sdk.MockHost, *sdk.MockBank) {
	t.Helper()

	host := sdk.NewMockHost("satoken-test")
	host.SetCaller(creator)
	bank := sdk.NewMockBank(sdk.Address("contract:satoken"))
	store := contract.NewMemoryState()

	tok, err := contract.New(host, bank, store, artist, uint256.NewInt(price), tokenBaseURI, platformPct)
	require.NoError(t, err)
	require.NoError(t, tok.UpdatePlatformAddress(platform))

	for _, addr := range []sdk.Address{creator, ownerOne, ownerTwo} {
		bank.Deposit(addr, uint256.NewInt(startingBalance))
	}
	return tok, host, bank
}

// purchaseAs buys one token for dest with the given payment, sent by dest.
func purchaseAs(t *testing.T, tok *contract.SimpleArtistToken, host *sdk.MockHost, dest sdk.Address, payment uint64) uint64 {
	t.Helper()
	host.SetCaller(dest)
	id, err := tok.PurchaseTo(dest, uint256.NewInt(payment))
	require.NoError(t, err)
	return id
}

// lastEventOfType returns the most recent event of the given type.
func lastEventOfType(t *testing.T, tok *contract.SimpleArtistToken, eventType string) contract.Event {
	t.Helper()
	events := tok.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == eventType {
			return events[i]
		}
	}
	t.Fatalf("no %s event emitted", eventType)
	return contract.Event{}
}

func balance(bank *sdk.MockBank, addr sdk.Address) uint64 {
	return bank.BalanceOf(addr).Uint64()
}
