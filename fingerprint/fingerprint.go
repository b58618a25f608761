package fingerprint

// A Fingerprint is a fixed-width content hash identifying a state.
//
// Two states with equal semantic fields must produce the same fingerprint.
// The reverse is not guaranteed: fingerprint collisions are neither detected
// nor recovered from by the checker, which will silently treat two colliding
// states as one. This is an accepted limitation of 64-bit fingerprinting.
type Fingerprint uint64

// FNV-1a parameters.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// A Hasher folds the semantic fields of a state into a Fingerprint.
//
// Fields must be written in a fixed order. Variable-length fields are
// length-prefixed so that adjacent fields cannot alias each other.
// The zero value is not valid, use New.
type Hasher struct {
	sum uint64
}

// New creates a Hasher with the FNV-1a offset basis.
func New() *Hasher {
	return &Hasher{sum: offset64}
}

func (h *Hasher) writeByte(b byte) {
	h.sum ^= uint64(b)
	h.sum *= prime64
}

// WriteUint64 folds a fixed-width integer field into the hash.
func (h *Hasher) WriteUint64(v uint64) {
	for i := 0; i < 8; i++ {
		h.writeByte(byte(v >> (8 * i)))
	}
}

// WriteInt folds an integer field into the hash.
func (h *Hasher) WriteInt(v int) {
	h.WriteUint64(uint64(v))
}

// WriteBool folds a boolean field into the hash.
func (h *Hasher) WriteBool(v bool) {
	if v {
		h.writeByte(1)
	} else {
		h.writeByte(0)
	}
}

// WriteBytes folds a variable-length field into the hash.
// The content is prefixed with its length.
func (h *Hasher) WriteBytes(p []byte) {
	h.WriteInt(len(p))
	for _, b := range p {
		h.writeByte(b)
	}
}

// Sum returns the fingerprint of the fields written so far.
func (h *Hasher) Sum() Fingerprint {
	return Fingerprint(h.sum)
}
