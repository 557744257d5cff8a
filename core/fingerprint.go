// Layout of the hashed stream (all integers little-endian int32):
//
//	dim, n, then per dart d: beta_0(d) .. beta_dim(d)
//	then per enabled dimension i (ascending): i, then per dart the canonical
//	id of its i-attribute (-1 for none)
//
// Canonical ids number attributes in the order their first holder appears when
// scanning darts by index, so two maps with the same betas and the same
// attribute partition hash equally whatever their arena layout. Payloads are
// not hashed.

package core

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// fingerprintKey is the BLAKE3 key of the map fingerprint domain.
var fingerprintKey = [32]byte{
	'c', 'm', 'a', 'p', '.', 'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i', 'n', 't',
	'.', 'v', '1', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns the keyed BLAKE3 digest of the betas and attribute
// partition of m. Mark state and payloads do not contribute.
// Complexity: O(n·dim).
func Fingerprint(m *Map) [32]byte {
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		// NewKeyed only fails on a key that is not 32 bytes long.
		panic("core: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var word [4]byte
	put := func(v int32) {
		binary.LittleEndian.PutUint32(word[:], uint32(v))
		hasher.Write(word[:])
	}

	n := m.DartCount()
	put(int32(m.dim))
	put(int32(n))
	for _, b := range m.beta {
		put(int32(b))
	}

	for _, i := range m.EnabledDimensions() {
		put(int32(i))
		canon := make(map[Attr]int32)
		for d := Dart(0); int(d) < n; d++ {
			a := m.Attribute(d, i)
			if a == NullAttr {
				put(-1)
				continue
			}
			id, ok := canon[a]
			if !ok {
				id = int32(len(canon))
				canon[a] = id
			}
			put(id)
		}
	}

	var out [32]byte
	copy(out[:], hasher.Sum(nil))
	return out
}
