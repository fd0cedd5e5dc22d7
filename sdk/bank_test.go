package sdk

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockBankDrawAndTransfer(t *testing.T) {
	contractAcc := Address("contract:test")
	bank := NewMockBank(contractAcc)
	bank.Deposit("alice", uint256.NewInt(100))

	require.NoError(t, bank.Draw("alice", uint256.NewInt(60)))
	assert.Equal(t, uint64(40), bank.BalanceOf("alice").Uint64())
	assert.Equal(t, uint64(60), bank.BalanceOf(contractAcc).Uint64())

	require.NoError(t, bank.Transfer("bob", uint256.NewInt(50)))
	assert.Equal(t, uint64(50), bank.BalanceOf("bob").Uint64())
	assert.Equal(t, uint64(10), bank.BalanceOf(contractAcc).Uint64())
}

func TestMockBankInsufficientFunds(t *testing.T) {
	bank := NewMockBank("contract:test")
	bank.Deposit("alice", uint256.NewInt(10))

	assert.Error(t, bank.Draw("alice", uint256.NewInt(11)))
	assert.Error(t, bank.Transfer("bob", uint256.NewInt(1)))
	// failed moves change nothing
	assert.Equal(t, uint64(10), bank.BalanceOf("alice").Uint64())
	assert.Equal(t, uint64(0), bank.BalanceOf("bob").Uint64())
}

func TestMockBankTransferHook(t *testing.T) {
	bank := NewMockBank("contract:test")
	bank.Deposit("contract:test", uint256.NewInt(5))

	var gotTo Address
	bank.OnTransfer = func(to Address, amount *uint256.Int) {
		gotTo = to
	}
	require.NoError(t, bank.Transfer("bob", uint256.NewInt(5)))
	assert.Equal(t, Address("bob"), gotTo)
}

func TestMockHostEnv(t *testing.T) {
	host := NewMockHost("test-contract")
	host.SetCaller("alice")

	env := host.GetEnv()
	assert.Equal(t, Address("alice"), env.Sender)
	assert.Equal(t, Address("alice"), env.Caller)
	assert.NotEmpty(t, env.TxId)

	txBefore := env.TxId
	host.SetCaller("bob")
	assert.NotEqual(t, txBefore, host.GetEnv().TxId)

	heightBefore := host.GetEnv().BlockHeight
	host.NextBlock()
	assert.Equal(t, heightBefore+1, host.GetEnv().BlockHeight)
}

func TestAddressIsZero(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())
	assert.True(t, Address("  ").IsZero())
	assert.False(t, Address("alice").IsZero())
}
