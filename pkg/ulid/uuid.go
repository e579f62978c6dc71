package ulid

import "github.com/google/uuid"

// UUID reinterprets the 16 bytes as a uuid.UUID. The copy is raw: no
// version or variant bits are forced, so the result is generally not an
// RFC 4122-conformant UUID, but FromUUID(id.UUID()) == id holds for every
// id, and a set of ULIDs keeps its order when viewed as UUIDs.
func (id ULID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// FromUUID reinterprets the 16 bytes of u as a ULID. As with ULID.UUID the
// copy is raw, so u.String() and FromUUID(u).String() describe the same
// bits and the round trip is lossless for any bit pattern.
func FromUUID(u uuid.UUID) ULID {
	return ULID(u)
}
