package sdk

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MockHost simulates the chain runtime for tests and local debugging.
// Block data advances only when told to, so hash derivation is
// reproducible within a test.
type MockHost struct {
	mu     sync.Mutex
	env    Env
	logs   []string
	logger zerolog.Logger
}

func NewMockHost(contractId string) *MockHost {
	return &MockHost{
		env: Env{
			ContractId:  contractId,
			TxId:        uuid.NewString(),
			BlockId:     "block-1",
			BlockHeight: 1,
			Timestamp:   "2025-01-01T00:00:00.000",
		},
		logger: zerolog.New(os.Stderr).With().Str("contract", contractId).Logger(),
	}
}

func (m *MockHost) GetEnv() Env {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.env
}

func (m *MockHost) Log(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, msg)
	m.logger.Debug().Msg(msg)
}

// Logs returns everything logged so far.
func (m *MockHost) Logs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.logs))
	copy(out, m.logs)
	return out
}

// SetCaller sets sender and caller for subsequent calls and starts a new
// transaction.
func (m *MockHost) SetCaller(addr Address) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env.Sender = addr
	m.env.Caller = addr
	m.env.TxId = uuid.NewString()
}

// NextBlock advances the simulated chain by one block.
func (m *MockHost) NextBlock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env.BlockHeight++
	m.env.BlockId = fmt.Sprintf("block-%d", m.env.BlockHeight)
}

// SetLogger replaces the logger the host writes through.
func (m *MockHost) SetLogger(l zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = l
}
