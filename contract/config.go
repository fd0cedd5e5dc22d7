package contract

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/blockrockettech/artblocks-v3/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Administrative surface
//
// Every setter is gated on the administrator capability and commits the
// new value atomically together with its change event.
////////////////////////////////////////////////////////////////////////////////

// requireAdmin loads the config and rejects callers other than the
// administrator.
func requireAdmin(st Store, caller sdk.Address) (*Config, error) {
	cfg, err := loadConfig(st)
	if err != nil {
		return nil, err
	}
	if caller != cfg.Administrator {
		return nil, fmt.Errorf("%w: %s", ErrNotAdministrator, caller)
	}
	return cfg, nil
}

func (c *SimpleArtistToken) UpdateArtistAddress(addr sdk.Address) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		cfg, err := requireAdmin(st, env.Caller)
		if err != nil {
			return err
		}
		if addr.IsZero() {
			return fmt.Errorf("%w: artist address", ErrZeroAddress)
		}
		cfg.ArtistAddress = addr
		if err := saveConfig(st, cfg); err != nil {
			return err
		}
		ev.EmitConfigChanged(EvArtistAddressChanged, addr.String())
		return nil
	})
}

func (c *SimpleArtistToken) UpdatePlatformAddress(addr sdk.Address) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		cfg, err := requireAdmin(st, env.Caller)
		if err != nil {
			return err
		}
		if addr.IsZero() {
			return fmt.Errorf("%w: platform address", ErrZeroAddress)
		}
		cfg.PlatformAddress = addr
		if err := saveConfig(st, cfg); err != nil {
			return err
		}
		ev.EmitConfigChanged(EvPlatformAddressChanged, addr.String())
		return nil
	})
}

// UpdatePricePerTokenInWei sets the asking price. No bounds; zero makes
// minting free. Already-completed purchases are unaffected.
func (c *SimpleArtistToken) UpdatePricePerTokenInWei(price *uint256.Int) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		cfg, err := requireAdmin(st, env.Caller)
		if err != nil {
			return err
		}
		if price == nil {
			price = uint256.NewInt(0)
		}
		cfg.PricePerTokenInWei = price.Clone()
		if err := saveConfig(st, cfg); err != nil {
			return err
		}
		ev.EmitConfigChanged(EvPriceChanged, price.Dec())
		return nil
	})
}

// UpdatePlatformPercentage sets the platform's share of each purchase.
// The split math assumes 0-100, so anything outside is rejected.
func (c *SimpleArtistToken) UpdatePlatformPercentage(pct uint64) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		cfg, err := requireAdmin(st, env.Caller)
		if err != nil {
			return err
		}
		if pct > 100 {
			return fmt.Errorf("%w: got %d", ErrInvalidPercentage, pct)
		}
		cfg.PlatformPercentage = pct
		if err := saveConfig(st, cfg); err != nil {
			return err
		}
		ev.EmitConfigChanged(EvPlatformPctChanged, fmt.Sprintf("%d", pct))
		return nil
	})
}

// UpdateMaxInvocations moves the mint cap. Lowering it below the number of
// tokens already minted would break the capacity invariant and is
// rejected.
func (c *SimpleArtistToken) UpdateMaxInvocations(maxInvocations uint64) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		cfg, err := requireAdmin(st, env.Caller)
		if err != nil {
			return err
		}
		if maxInvocations < cfg.Invocations {
			return fmt.Errorf("%w: cap %d, invocations %d", ErrInvalidCap, maxInvocations, cfg.Invocations)
		}
		cfg.MaxInvocations = maxInvocations
		if err := saveConfig(st, cfg); err != nil {
			return err
		}
		ev.EmitConfigChanged(EvMaxInvocationsChanged, fmt.Sprintf("%d", maxInvocations))
		return nil
	})
}

func (c *SimpleArtistToken) UpdateTokenBaseURI(uri string) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		cfg, err := requireAdmin(st, env.Caller)
		if err != nil {
			return err
		}
		if uri == "" {
			return fmt.Errorf("%w: token base URI", ErrEmptyValue)
		}
		cfg.TokenBaseURI = uri
		if err := saveConfig(st, cfg); err != nil {
			return err
		}
		ev.EmitConfigChanged(EvTokenBaseURIChanged, uri)
		return nil
	})
}

func (c *SimpleArtistToken) UpdateTokenBaseIpfsURI(uri string) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		cfg, err := requireAdmin(st, env.Caller)
		if err != nil {
			return err
		}
		if uri == "" {
			return fmt.Errorf("%w: token base IPFS URI", ErrEmptyValue)
		}
		cfg.TokenBaseIpfsURI = uri
		if err := saveConfig(st, cfg); err != nil {
			return err
		}
		ev.EmitConfigChanged(EvTokenBaseIPFSURIChanged, uri)
		return nil
	})
}

// UpdateApplicationChecksum stores an opaque blob identifying the artwork
// application build. No validation.
func (c *SimpleArtistToken) UpdateApplicationChecksum(checksum []byte) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		cfg, err := requireAdmin(st, env.Caller)
		if err != nil {
			return err
		}
		cfg.ApplicationChecksum = checksum
		if err := saveConfig(st, cfg); err != nil {
			return err
		}
		ev.EmitChecksumChanged(checksum)
		return nil
	})
}
