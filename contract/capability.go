package contract

// Capability discovery, ERC-165 style: external callers probe which
// behavioral contracts this system implements by 4-byte interface id.
const (
	// InterfaceIDERC165 is the interface-discovery capability itself.
	InterfaceIDERC165 uint32 = 0x01ffc9a7
	// InterfaceIDERC721 is the ownership-transfer capability set.
	InterfaceIDERC721 uint32 = 0x80ac58cd
	// InterfaceIDERC721Enumerable covers totalSupply / tokensOfOwner.
	InterfaceIDERC721Enumerable uint32 = 0x780e9d63
	// InterfaceIDERC721Metadata covers name / symbol / tokenURI.
	InterfaceIDERC721Metadata uint32 = 0x5b5e139f
)

// SupportsInterface answers capability queries for the interface sets the
// contract implements.
func (c *SimpleArtistToken) SupportsInterface(interfaceID uint32) bool {
	switch interfaceID {
	case InterfaceIDERC165,
		InterfaceIDERC721,
		InterfaceIDERC721Enumerable,
		InterfaceIDERC721Metadata:
		return true
	}
	return false
}
