package contract

import (
	"github.com/holiman/uint256"

	"github.com/blockrockettech/artblocks-v3/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Types & Structs
////////////////////////////////////////////////////////////////////////////////

// Token is the per-token record stored under token:<id>.
type Token struct {
	ID       uint64      `json:"id"`
	Owner    sdk.Address `json:"owner"`
	Approved sdk.Address `json:"approved,omitempty"` // at most one, cleared on every ownership change
	Hash     string      `json:"hash"`               // assigned once at mint, immutable
	MintTxID string      `json:"txID,omitempty"`

	// StaticIpfsURI, when set, takes precedence over the computed
	// token URI.
	StaticIpfsURI string `json:"ipfs,omitempty"`
}

func (t *Token) ToJSON() (string, error) {
	return ToJSON(t)
}

func TokenFromJSON(data string) (*Token, error) {
	return FromJSON[Token](data)
}

// Config holds the administrative parameters of the contract, stored as a
// single record under the config key and mutated only by the
// administrator.
type Config struct {
	Administrator       sdk.Address  `json:"admin"`
	ArtistAddress       sdk.Address  `json:"artist"`
	PlatformAddress     sdk.Address  `json:"platform"`
	PlatformPercentage  uint64       `json:"platformPct"` // 0-100
	PricePerTokenInWei  *uint256.Int `json:"price"`
	MaxInvocations      uint64       `json:"maxInvocations"`
	Invocations         uint64       `json:"invocations"` // monotonic, next token id
	TokenBaseURI        string       `json:"baseURI"`
	TokenBaseIpfsURI    string       `json:"baseIpfsURI"`
	ApplicationChecksum []byte       `json:"checksum,omitempty"`
}

func (c *Config) ToJSON() (string, error) {
	return ToJSON(c)
}

func ConfigFromJSON(data string) (*Config, error) {
	return FromJSON[Config](data)
}
