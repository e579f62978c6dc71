package ulid

import "encoding/binary"

// uint128 is an unsigned 128-bit integer held as two 64-bit limbs. Go has no
// native 128-bit type, so the codec does its bit accumulation on this
// instead. Shift counts of 128 or more yield zero, matching the behavior of
// a fixed-width register.
type uint128 struct {
	hi, lo uint64
}

func makeUint128(hi, lo uint64) uint128 {
	return uint128{hi: hi, lo: lo}
}

// shl returns u shifted left by n bits. Bits shifted past position 127 are
// discarded.
func (u uint128) shl(n uint) uint128 {
	switch {
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{hi: u.lo << (n - 64)}
	case n == 0:
		return u
	default:
		return uint128{
			hi: u.hi<<n | u.lo>>(64-n),
			lo: u.lo << n,
		}
	}
}

// shr returns u shifted right by n bits.
func (u uint128) shr(n uint) uint128 {
	switch {
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{lo: u.hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return uint128{
			hi: u.hi >> n,
			lo: u.lo>>n | u.hi<<(64-n),
		}
	}
}

// or64 returns u with v merged into the low limb.
func (u uint128) or64(v uint64) uint128 {
	return uint128{hi: u.hi, lo: u.lo | v}
}

func (u uint128) hi64() uint64 { return u.hi }

func (u uint128) lo64() uint64 { return u.lo }

// uint128FromBytes interprets the 16 bytes as a big-endian 128-bit integer.
func uint128FromBytes(b [16]byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// bytes returns the big-endian 16-byte representation of u.
func (u uint128) bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
	return b
}
