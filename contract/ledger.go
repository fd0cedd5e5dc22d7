package contract

import (
	"fmt"

	"github.com/blockrockettech/artblocks-v3/sdk"
)

// TokenLedger owns the token id → owner mapping, approval state and
// per-owner enumeration. It is the generic ownership machinery the
// purchase engine drives; it knows nothing about payments or pricing.
//
// A ledger instance is bound to one Store view (the live state for reads,
// an operation's overlay for writes) and one event sink.
type TokenLedger struct {
	store  Store
	events *eventSink
}

func newLedger(store Store, events *eventSink) *TokenLedger {
	return &TokenLedger{store: store, events: events}
}

// MINT / BURN

// Mint creates tokenID owned by to and emits a Transfer from the zero
// address. Fails if to is the zero address or the id already exists.
func (l *TokenLedger) Mint(to sdk.Address, tokenID uint64, hash string, txID string) error {
	if to.IsZero() {
		return fmt.Errorf("%w: destination is the zero address", ErrMintFailed)
	}
	if l.Exists(tokenID) {
		return fmt.Errorf("%w: token %d already exists", ErrMintFailed, tokenID)
	}
	token := &Token{
		ID:       tokenID,
		Owner:    to,
		Hash:     hash,
		MintTxID: txID,
	}
	if err := l.saveToken(token); err != nil {
		return err
	}
	if err := addIDToIndex(l.store, idxTokensOfOwnerPrefix+to.String(), formatTokenID(tokenID)); err != nil {
		return err
	}
	l.setSupply(l.TotalSupply() + 1)
	l.events.EmitTransfer(sdk.ZeroAddress, to, tokenID)
	return nil
}

// Burn removes tokenID from the ledger. Only the current owner may burn.
func (l *TokenLedger) Burn(caller sdk.Address, tokenID uint64) error {
	token, err := l.loadToken(tokenID)
	if err != nil {
		return err
	}
	if token.Owner != caller {
		return fmt.Errorf("%w: %s does not own token %d", ErrNotOwner, caller, tokenID)
	}
	l.store.Delete(tokenKey(tokenID))
	if err := removeIDFromIndex(l.store, idxTokensOfOwnerPrefix+token.Owner.String(), formatTokenID(tokenID)); err != nil {
		return err
	}
	l.setSupply(l.TotalSupply() - 1)
	l.events.EmitTransfer(token.Owner, sdk.ZeroAddress, tokenID)
	return nil
}

// TRANSFER / APPROVAL

// TransferFrom moves tokenID from its owner to a new owner. The caller
// must be the owner, the approved address, or an approved operator. The
// single-token approval is cleared on every ownership change.
func (l *TokenLedger) TransferFrom(caller, from, to sdk.Address, tokenID uint64) error {
	token, err := l.loadToken(tokenID)
	if err != nil {
		return err
	}
	if token.Owner != from {
		return fmt.Errorf("%w: token %d not owned by %s", ErrNotApprovedOrOwner, tokenID, from)
	}
	if !l.isApprovedOrOwner(caller, token) {
		return fmt.Errorf("%w: %s may not transfer token %d", ErrNotApprovedOrOwner, caller, tokenID)
	}
	if to.IsZero() {
		return fmt.Errorf("%w: transfer destination", ErrZeroAddress)
	}

	token.Owner = to
	token.Approved = sdk.ZeroAddress
	if err := l.saveToken(token); err != nil {
		return err
	}
	if err := removeIDFromIndex(l.store, idxTokensOfOwnerPrefix+from.String(), formatTokenID(tokenID)); err != nil {
		return err
	}
	if err := addIDToIndex(l.store, idxTokensOfOwnerPrefix+to.String(), formatTokenID(tokenID)); err != nil {
		return err
	}
	l.events.EmitTransfer(from, to, tokenID)
	return nil
}

// Approve sets the single approved address for tokenID. The caller must
// be the owner or an approved operator. Approving the zero address clears.
func (l *TokenLedger) Approve(caller, approved sdk.Address, tokenID uint64) error {
	token, err := l.loadToken(tokenID)
	if err != nil {
		return err
	}
	if caller != token.Owner && !l.IsApprovedForAll(token.Owner, caller) {
		return fmt.Errorf("%w: %s may not approve token %d", ErrNotApprovedOrOwner, caller, tokenID)
	}
	token.Approved = approved
	if err := l.saveToken(token); err != nil {
		return err
	}
	l.events.EmitApproval(token.Owner, approved, tokenID)
	return nil
}

// SetApprovalForAll grants or revokes operator rights over every token of
// the caller.
func (l *TokenLedger) SetApprovalForAll(caller, operator sdk.Address, approved bool) error {
	if operator.IsZero() {
		return fmt.Errorf("%w: operator", ErrZeroAddress)
	}
	if operator == caller {
		return fmt.Errorf("cannot set operator approval for self")
	}
	key := operatorKey(caller.String(), operator.String())
	if approved {
		l.store.Set(key, "1")
	} else {
		l.store.Delete(key)
	}
	l.events.EmitApprovalForAll(caller, operator, approved)
	return nil
}

// READS

func (l *TokenLedger) OwnerOf(tokenID uint64) (sdk.Address, error) {
	token, err := l.loadToken(tokenID)
	if err != nil {
		return sdk.ZeroAddress, err
	}
	return token.Owner, nil
}

func (l *TokenLedger) GetApproved(tokenID uint64) (sdk.Address, error) {
	token, err := l.loadToken(tokenID)
	if err != nil {
		return sdk.ZeroAddress, err
	}
	return token.Approved, nil
}

func (l *TokenLedger) IsApprovedForAll(owner, operator sdk.Address) bool {
	return l.store.Get(operatorKey(owner.String(), operator.String())) != nil
}

func (l *TokenLedger) Exists(tokenID uint64) bool {
	return l.store.Get(tokenKey(tokenID)) != nil
}

func (l *TokenLedger) BalanceOf(owner sdk.Address) uint64 {
	ids, err := getIDsFromIndex(l.store, idxTokensOfOwnerPrefix+owner.String())
	if err != nil {
		return 0
	}
	return uint64(len(ids))
}

// TokensOfOwner enumerates the ids currently owned by owner, in mint
// order.
func (l *TokenLedger) TokensOfOwner(owner sdk.Address) ([]uint64, error) {
	ids, err := getIDsFromIndex(l.store, idxTokensOfOwnerPrefix+owner.String())
	if err != nil {
		return nil, err
	}
	out := make([]uint64, 0, len(ids))
	for _, s := range ids {
		id, err := parseTokenID(s)
		if err != nil {
			return nil, fmt.Errorf("corrupt owner index entry %q: %w", s, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func (l *TokenLedger) TotalSupply() uint64 {
	ptr := l.store.Get(supplyKey)
	if ptr == nil {
		return 0
	}
	n, err := parseTokenID(*ptr)
	if err != nil {
		return 0
	}
	return n
}

// Contract State Interactions

func (l *TokenLedger) isApprovedOrOwner(caller sdk.Address, token *Token) bool {
	if caller == token.Owner {
		return true
	}
	if !token.Approved.IsZero() && caller == token.Approved {
		return true
	}
	return l.IsApprovedForAll(token.Owner, caller)
}

func (l *TokenLedger) saveToken(token *Token) error {
	b, err := token.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal token %d: %w", token.ID, err)
	}
	l.store.Set(tokenKey(token.ID), b)
	return nil
}

func (l *TokenLedger) loadToken(tokenID uint64) (*Token, error) {
	ptr := l.store.Get(tokenKey(tokenID))
	if ptr == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownToken, tokenID)
	}
	token, err := TokenFromJSON(*ptr)
	if err != nil {
		return nil, fmt.Errorf("unmarshal token %d: %w", tokenID, err)
	}
	return token, nil
}

func (l *TokenLedger) setSupply(n uint64) {
	l.store.Set(supplyKey, formatTokenID(n))
}
