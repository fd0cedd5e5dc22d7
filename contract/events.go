package contract

import (
	"encoding/hex"
	"fmt"

	"github.com/blockrockettech/artblocks-v3/sdk"
)

// Event represents a generic event emitted by the contract.
type Event struct {
	Type       string            `json:"t"`   // Type is the kind of event (e.g. "Transfer").
	Attributes map[string]string `json:"att"` // Attributes are key/value pairs with event data.
}

// Event type names, matching the original contract's event surface.
const (
	EvTransfer                  = "Transfer"
	EvApproval                  = "Approval"
	EvApprovalForAll            = "ApprovalForAll"
	EvTokenBaseURIChanged       = "TokenBaseURIChanged"
	EvTokenBaseIPFSURIChanged   = "TokenBaseIPFSURIChanged"
	EvStaticIpfsTokenURISet     = "StaticIpfsTokenURISet"
	EvStaticIpfsTokenURICleared = "StaticIpfsTokenURICleared"
	EvArtistAddressChanged      = "ArtistAddressChanged"
	EvPlatformAddressChanged    = "PlatformAddressChanged"
	EvPriceChanged              = "PricePerTokenInWeiChanged"
	EvPlatformPctChanged        = "PlatformPercentageChanged"
	EvMaxInvocationsChanged     = "MaxInvocationsChanged"
	EvChecksumChanged           = "ApplicationChecksumChanged"
)

// eventSink buffers events raised while an operation runs. They only reach
// the host log (and the contract's recorder) when the operation commits,
// so a failed operation emits nothing.
type eventSink struct {
	pending []Event
}

func newEventSink() *eventSink {
	return &eventSink{}
}

func (s *eventSink) emit(eventType string, attributes map[string]string) {
	s.pending = append(s.pending, Event{
		Type:       eventType,
		Attributes: attributes,
	})
}

// flush logs every pending event as JSON and returns the batch.
func (s *eventSink) flush(host sdk.Host) []Event {
	out := s.pending
	s.pending = nil
	for _, ev := range out {
		line, err := ToJSON(ev)
		if err != nil {
			line = fmt.Sprintf(`{"t":%q}`, ev.Type)
		}
		host.Log(line)
	}
	return out
}

// EmitTransfer emits a Transfer event. Mints use the zero address as from,
// burns as to.
func (s *eventSink) EmitTransfer(from, to sdk.Address, tokenID uint64) {
	s.emit(EvTransfer, map[string]string{
		"from":    from.String(),
		"to":      to.String(),
		"tokenId": formatTokenID(tokenID),
	})
}

func (s *eventSink) EmitApproval(owner, approved sdk.Address, tokenID uint64) {
	s.emit(EvApproval, map[string]string{
		"owner":    owner.String(),
		"approved": approved.String(),
		"tokenId":  formatTokenID(tokenID),
	})
}

func (s *eventSink) EmitApprovalForAll(owner, operator sdk.Address, approved bool) {
	s.emit(EvApprovalForAll, map[string]string{
		"owner":    owner.String(),
		"operator": operator.String(),
		"approved": fmt.Sprintf("%t", approved),
	})
}

func (s *eventSink) EmitStaticIpfsTokenURISet(tokenID uint64, ipfsHash string) {
	s.emit(EvStaticIpfsTokenURISet, map[string]string{
		"tokenId":  formatTokenID(tokenID),
		"ipfsHash": ipfsHash,
	})
}

func (s *eventSink) EmitStaticIpfsTokenURICleared(tokenID uint64) {
	s.emit(EvStaticIpfsTokenURICleared, map[string]string{
		"tokenId": formatTokenID(tokenID),
	})
}

// EmitConfigChanged covers the administrative setter events; each carries
// the new value under "new".
func (s *eventSink) EmitConfigChanged(eventType string, newValue string) {
	s.emit(eventType, map[string]string{
		"new": newValue,
	})
}

func (s *eventSink) EmitChecksumChanged(checksum []byte) {
	s.emit(EvChecksumChanged, map[string]string{
		"new": hex.EncodeToString(checksum),
	})
}
