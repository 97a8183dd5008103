// Package paramtree carries the module-wide content identity helpers.
// The parameter tree itself lives in the params subpackage.
package paramtree

import (
	"encoding/hex"

	"lukechampine.com/blake3"

	"paramtree.dev/paramtree/params"
)

// CID is a content ID: the blake3 hash of a serialized value.
type CID [32]byte

func (id CID) String() string {
	return hex.EncodeToString(id[:])
}

// Hash calculates the hash of x.
// If tag == nil, then the hash is unkeyed.
// If tag != nil, then the hash will be keyed with the tag.
func Hash(tag *CID, x []byte) (ret CID) {
	var key []byte
	if tag != nil {
		key = tag[:]
	}
	h := blake3.New(32, key)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}

// Fingerprint returns a stable content ID for a parameter tree, computed over
// its JSON projection. Equal trees fingerprint equal; the error-origin scope
// does not participate.
func Fingerprint(b *params.Block) CID {
	return Hash(nil, b.DumpJSON())
}
