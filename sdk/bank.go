package sdk

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"
)

// Bank moves value between accounts on behalf of the contract. All amounts
// are wei as unsigned 256-bit integers.
//
// Transfer hands value to an address the contract does not control; the
// receiving side may run arbitrary code before returning. Callers must have
// committed their own state before invoking it.
type Bank interface {
	// Draw pulls amount from the given account into the contract account.
	Draw(from Address, amount *uint256.Int) error
	// Transfer pays amount out of the contract account.
	Transfer(to Address, amount *uint256.Int) error
	// BalanceOf returns the current balance of an account.
	BalanceOf(addr Address) *uint256.Int
}

// MockBank is an in-memory Bank for tests and the local runner. A transfer
// hook can simulate a payee calling back into the contract mid-payout.
type MockBank struct {
	mu       sync.Mutex
	contract Address
	balances map[Address]*uint256.Int

	// OnTransfer, when set, runs after each successful outbound transfer
	// with the payee and amount. Used to exercise reentrancy handling.
	OnTransfer func(to Address, amount *uint256.Int)
}

func NewMockBank(contract Address) *MockBank {
	return &MockBank{
		contract: contract,
		balances: make(map[Address]*uint256.Int),
	}
}

// Deposit credits an account, creating it if needed.
func (b *MockBank) Deposit(addr Address, amount *uint256.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credit(addr, amount)
}

func (b *MockBank) Draw(from Address, amount *uint256.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.debit(from, amount); err != nil {
		return err
	}
	b.credit(b.contract, amount)
	return nil
}

func (b *MockBank) Transfer(to Address, amount *uint256.Int) error {
	b.mu.Lock()
	if err := b.debit(b.contract, amount); err != nil {
		b.mu.Unlock()
		return err
	}
	b.credit(to, amount)
	hook := b.OnTransfer
	b.mu.Unlock()

	if hook != nil {
		hook(to, amount)
	}
	return nil
}

func (b *MockBank) BalanceOf(addr Address) *uint256.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if bal, ok := b.balances[addr]; ok {
		return bal.Clone()
	}
	return uint256.NewInt(0)
}

func (b *MockBank) credit(addr Address, amount *uint256.Int) {
	bal, ok := b.balances[addr]
	if !ok {
		bal = uint256.NewInt(0)
		b.balances[addr] = bal
	}
	bal.Add(bal, amount)
}

func (b *MockBank) debit(addr Address, amount *uint256.Int) error {
	bal, ok := b.balances[addr]
	if !ok || bal.Lt(amount) {
		return fmt.Errorf("insufficient balance on %s", addr)
	}
	bal.Sub(bal, amount)
	return nil
}
