package contract

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/blockrockettech/artblocks-v3/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Purchase engine
////////////////////////////////////////////////////////////////////////////////

// PurchaseTo mints the next token to destination against the supplied
// payment and returns the new token id.
//
// The payment is accepted as sent: it is not compared against the
// configured price and overpayment is not refunded. The whole amount is
// split between artist and platform, the platform taking
// floor(payment * platformPercentage / 100) and the artist the remainder.
//
// Ledger and counter changes are committed before any outbound payment is
// issued, so code a payee runs during the payout observes the mint as
// already done and cannot mint against stale capacity.
func (c *SimpleArtistToken) PurchaseTo(destination sdk.Address, payment *uint256.Int) (uint64, error) {
	if payment == nil {
		payment = uint256.NewInt(0)
	}

	var (
		tokenID       uint64
		artistSplit   *uint256.Int
		platformSplit *uint256.Int
		artistAddr    sdk.Address
		platformAddr  sdk.Address
	)

	err := c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		if destination.IsZero() {
			return fmt.Errorf("%w: purchase destination", ErrZeroAddress)
		}
		cfg, err := loadConfig(st)
		if err != nil {
			return err
		}
		if cfg.Invocations >= cfg.MaxInvocations {
			return fmt.Errorf("%w: %d of %d minted", ErrCapacityExceeded, cfg.Invocations, cfg.MaxInvocations)
		}

		tokenID = cfg.Invocations
		cfg.Invocations++

		hash := deriveTokenHash(tokenID, env)
		if err := newLedger(st, ev).Mint(destination, tokenID, hash, env.TxId); err != nil {
			return err
		}
		if err := saveConfig(st, cfg); err != nil {
			return err
		}

		platformSplit, artistSplit = splitPayment(payment, cfg.PlatformPercentage)
		artistAddr = cfg.ArtistAddress
		platformAddr = cfg.PlatformAddress

		// The payment arrives with the call; pulling it is the last
		// fallible step before commit.
		if !payment.IsZero() {
			if err := c.bank.Draw(env.Sender, payment); err != nil {
				return fmt.Errorf("draw payment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Interactions strictly after the commit above.
	if !platformSplit.IsZero() {
		if err := c.bank.Transfer(platformAddr, platformSplit); err != nil {
			return tokenID, fmt.Errorf("%w: platform share: %v", ErrPayoutFailed, err)
		}
	}
	if !artistSplit.IsZero() {
		if err := c.bank.Transfer(artistAddr, artistSplit); err != nil {
			return tokenID, fmt.Errorf("%w: artist share: %v", ErrPayoutFailed, err)
		}
	}
	return tokenID, nil
}

// Purchase is the bare payment path: mints to the caller, as if value was
// sent to the contract with no other instruction.
func (c *SimpleArtistToken) Purchase(payment *uint256.Int) (uint64, error) {
	return c.PurchaseTo(c.host.GetEnv().Caller, payment)
}

// Burn destroys a token. Only its current owner may burn; approval state
// and the static override die with the record.
func (c *SimpleArtistToken) Burn(tokenID uint64) error {
	return c.exec(func(st Store, ev *eventSink, env sdk.Env) error {
		return newLedger(st, ev).Burn(env.Caller, tokenID)
	})
}

// splitPayment returns (platformSplit, artistSplit). The platform gets
// floor(payment * pct / 100) and the artist the remainder, so the two
// always sum exactly to the payment and rounding favours the artist.
func splitPayment(payment *uint256.Int, platformPercentage uint64) (*uint256.Int, *uint256.Int) {
	platformSplit := new(uint256.Int).Mul(payment, uint256.NewInt(platformPercentage))
	platformSplit.Div(platformSplit, uint256.NewInt(100))
	artistSplit := new(uint256.Int).Sub(payment, platformSplit)
	return platformSplit, artistSplit
}

// deriveTokenHash assigns the per-token hash from the execution context at
// mint time: keccak256(tokenId || blockHeight || blockId || sender).
//
// This is weak randomness. Block data is observable and, for whoever
// orders transactions, influenceable; the hash is a decorative seed, not
// a cryptographic commitment.
func deriveTokenHash(tokenID uint64, env sdk.Env) string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], tokenID)
	binary.BigEndian.PutUint64(buf[8:], env.BlockHeight)

	h := sha3.NewLegacyKeccak256()
	h.Write(buf[:])
	h.Write([]byte(env.BlockId))
	h.Write([]byte(env.Sender.String()))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
