// Package sdk abstracts the chain execution environment the contract runs
// against: addresses, per-call environment data, value transfer and logging.
// Production deployments bind these interfaces to the host node; tests and
// the local runner use the mocks in this package.
package sdk

import "strings"

// Address is an account identifier. The empty string is the zero address
// sentinel used in mint/burn transfer events.
type Address string

// ZeroAddress is the sentinel for "no address".
const ZeroAddress Address = ""

func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is the zero sentinel.
func (a Address) IsZero() bool {
	return strings.TrimSpace(string(a)) == ""
}

// Env carries the execution environment of the call in flight.
type Env struct {
	ContractId  string  `json:"contract.id"`
	TxId        string  `json:"tx.id"`
	BlockId     string  `json:"block.id"`
	BlockHeight uint64  `json:"block.height"`
	Timestamp   string  `json:"block.timestamp"`
	Sender      Address `json:"msg.sender"`
	Caller      Address `json:"msg.caller"`
}

// Host exposes the pieces of the runtime a contract call may touch.
type Host interface {
	// GetEnv returns the environment of the call in flight.
	GetEnv() Env
	// Log emits a line to the host's log sink. Contract events go
	// through here as JSON.
	Log(msg string)
}
