// Package contract implements the SimpleArtistToken contract: an
// ERC-721-style token ledger with a mint-on-payment purchase engine, a
// single administrator capability and per-token content URI resolution.
//
// Every public operation runs as one serialized, all-or-nothing unit
// against the state store. Writes are staged on an overlay and committed
// only on success; outbound payments are issued strictly after the commit.
package contract

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"github.com/blockrockettech/artblocks-v3/sdk"
)

const (
	// TokenName and TokenSymbol identify the collection.
	TokenName   = "SimpleArtistToken"
	TokenSymbol = "SAT"

	// defaultMaxInvocations caps the number of mints until the
	// administrator raises it.
	defaultMaxInvocations = 1024

	// defaultTokenBaseIpfsURI prefixes static overrides until changed.
	defaultTokenBaseIpfsURI = "https://ipfs.infura.io/ipfs/"
)

// SimpleArtistToken is the deployed contract instance. It serializes all
// calls, so it is safe to share between goroutines.
type SimpleArtistToken struct {
	mu    sync.Mutex
	host  sdk.Host
	bank  sdk.Bank
	store Store

	recorded []Event
}

// New deploys the contract. The deploying sender becomes both the
// administrator and the initial platform payee; artist receives the
// artist share of every purchase.
func New(host sdk.Host, bank sdk.Bank, store Store, artist sdk.Address, pricePerTokenInWei *uint256.Int, tokenBaseURI string, platformPercentage uint64) (*SimpleArtistToken, error) {
	if artist.IsZero() {
		return nil, fmt.Errorf("%w: artist address", ErrZeroAddress)
	}
	if tokenBaseURI == "" {
		return nil, fmt.Errorf("%w: token base URI", ErrEmptyValue)
	}
	if platformPercentage > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPercentage, platformPercentage)
	}
	if pricePerTokenInWei == nil {
		pricePerTokenInWei = uint256.NewInt(0)
	}

	deployer := host.GetEnv().Sender
	if deployer.IsZero() {
		return nil, fmt.Errorf("%w: deployer", ErrZeroAddress)
	}

	cfg := &Config{
		Administrator:      deployer,
		ArtistAddress:      artist,
		PlatformAddress:    deployer,
		PlatformPercentage: platformPercentage,
		PricePerTokenInWei: pricePerTokenInWei.Clone(),
		MaxInvocations:     defaultMaxInvocations,
		Invocations:        0,
		TokenBaseURI:       tokenBaseURI,
		TokenBaseIpfsURI:   defaultTokenBaseIpfsURI,
	}
	if err := saveConfig(store, cfg); err != nil {
		return nil, err
	}
	return &SimpleArtistToken{host: host, bank: bank, store: store}, nil
}

// Attach binds to a contract whose state already lives in store.
func Attach(host sdk.Host, bank sdk.Bank, store Store) (*SimpleArtistToken, error) {
	if store.Get(configKey) == nil {
		return nil, fmt.Errorf("no contract state in store")
	}
	return &SimpleArtistToken{host: host, bank: bank, store: store}, nil
}

// exec runs one state-mutating operation. The callback works against an
// overlay of the live store and a buffered event sink; both are flushed
// only when it returns nil.
func (c *SimpleArtistToken) exec(fn func(st Store, ev *eventSink, env sdk.Env) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	ov := newOverlay(c.store)
	sink := newEventSink()
	if err := fn(ov, sink, c.host.GetEnv()); err != nil {
		return err
	}
	ov.Commit()
	c.recorded = append(c.recorded, sink.flush(c.host)...)
	return nil
}

// Events returns every event the contract has emitted since construction,
// in emission order.
func (c *SimpleArtistToken) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.recorded))
	copy(out, c.recorded)
	return out
}

////////////////////////////////////////////////////////////////////////////////
// Read surface
////////////////////////////////////////////////////////////////////////////////

func (c *SimpleArtistToken) Name() string   { return TokenName }
func (c *SimpleArtistToken) Symbol() string { return TokenSymbol }

func (c *SimpleArtistToken) ArtistAddress() sdk.Address {
	return c.mustConfig().ArtistAddress
}

func (c *SimpleArtistToken) PlatformAddress() sdk.Address {
	return c.mustConfig().PlatformAddress
}

func (c *SimpleArtistToken) Administrator() sdk.Address {
	return c.mustConfig().Administrator
}

func (c *SimpleArtistToken) PlatformPercentage() uint64 {
	return c.mustConfig().PlatformPercentage
}

func (c *SimpleArtistToken) PricePerTokenInWei() *uint256.Int {
	return c.mustConfig().PricePerTokenInWei.Clone()
}

func (c *SimpleArtistToken) MaxInvocations() uint64 {
	return c.mustConfig().MaxInvocations
}

// Invocations returns the number of successful mints so far.
func (c *SimpleArtistToken) Invocations() uint64 {
	return c.mustConfig().Invocations
}

func (c *SimpleArtistToken) TokenBaseURI() string {
	return c.mustConfig().TokenBaseURI
}

func (c *SimpleArtistToken) TokenBaseIpfsURI() string {
	return c.mustConfig().TokenBaseIpfsURI
}

func (c *SimpleArtistToken) ApplicationChecksum() []byte {
	return c.mustConfig().ApplicationChecksum
}

// TokenIDToHash returns the hash assigned to the token at mint time.
func (c *SimpleArtistToken) TokenIDToHash(tokenID uint64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	token, err := c.readLedger().loadToken(tokenID)
	if err != nil {
		return "", err
	}
	return token.Hash, nil
}

func (c *SimpleArtistToken) OwnerOf(tokenID uint64) (sdk.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLedger().OwnerOf(tokenID)
}

func (c *SimpleArtistToken) BalanceOf(owner sdk.Address) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLedger().BalanceOf(owner)
}

func (c *SimpleArtistToken) TokensOfOwner(owner sdk.Address) ([]uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLedger().TokensOfOwner(owner)
}

func (c *SimpleArtistToken) GetApproved(tokenID uint64) (sdk.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLedger().GetApproved(tokenID)
}

func (c *SimpleArtistToken) IsApprovedForAll(owner, operator sdk.Address) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLedger().IsApprovedForAll(owner, operator)
}

func (c *SimpleArtistToken) TotalSupply() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLedger().TotalSupply()
}

func (c *SimpleArtistToken) Exists(tokenID uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLedger().Exists(tokenID)
}

////////////////////////////////////////////////////////////////////////////////
// Transfer / approval surface (delegated to the ledger)
////////////////////////////////////////////////////////////////////////////////

func (c *SimpleArtistToken) TransferFrom(from, to sdk.Address, tokenID uint64) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		return newLedger(st, ev).TransferFrom(env.Caller, from, to, tokenID)
	})
}

func (c *SimpleArtistToken) Approve(approved sdk.Address, tokenID uint64) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		return newLedger(st, ev).Approve(env.Caller, approved, tokenID)
	})
}

func (c *SimpleArtistToken) SetApprovalForAll(operator sdk.Address, approved bool) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		return newLedger(st, ev).SetApprovalForAll(env.Caller, operator, approved)
	})
}

////////////////////////////////////////////////////////////////////////////////
// Config state interactions
////////////////////////////////////////////////////////////////////////////////

func loadConfig(st Store) (*Config, error) {
	ptr := st.Get(configKey)
	if ptr == nil {
		return nil, fmt.Errorf("contract config missing from state")
	}
	cfg, err := ConfigFromJSON(*ptr)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func saveConfig(st Store, cfg *Config) error {
	b, err := cfg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	st.Set(configKey, b)
	return nil
}

// mustConfig reads the config for the getter surface. The config record is
// written at deployment and never deleted, so a missing or corrupt record
// is state corruption, not a caller error.
func (c *SimpleArtistToken) mustConfig() *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg, err := loadConfig(c.store)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *SimpleArtistToken) readLedger() *TokenLedger {
	return newLedger(c.store, newEventSink())
}
