package badger

import (
	"encoding/binary"

	"github.com/nexusgraph/hyperplan/core"
)

// Key prefixes for the different indexes kept in the database.
const (
	atomPrefix      = "atom"
	typeIndexPrefix = "atyp"
	incomingPrefix  = "ainc"
	sequenceKey     = "atomseq"
)

// makeAtomKey generates a key for an atom by handle.
// Format: prefix:handle (BigEndian, 8 bytes)
func makeAtomKey(h core.Handle) []byte {
	prefix := []byte(atomPrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(h))
	return buf
}

// makeTypeIndexKey generates a composite key for the type-population
// index. Format: prefix:type:handle, BigEndian so a prefix scan on just
// the type portion enumerates every handle of that type in a stable
// order.
func makeTypeIndexKey(t core.Type, h core.Handle) []byte {
	prefix := []byte(typeIndexPrefix + ":")
	buf := make([]byte, len(prefix)+2+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint16(buf[offset:], uint16(t))
	offset += 2
	binary.BigEndian.PutUint64(buf[offset:], uint64(h))
	return buf
}

// makePartialTypeIndexKey generates a partial key for scanning every
// handle of a given type. Format: prefix:type
func makePartialTypeIndexKey(t core.Type) []byte {
	prefix := []byte(typeIndexPrefix + ":")
	buf := make([]byte, len(prefix)+2)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint16(buf[offset:], uint16(t))
	return buf
}

// makeIncomingKey generates a composite key for the incoming-set index:
// for a link of type linkType containing child among its outgoing set,
// records that (child, linkType, link) triple. Format:
// prefix:child:linkType:link, BigEndian throughout so a prefix scan on
// just child enumerates IncomingSize(child), and a prefix scan on
// child+linkType enumerates IncomingFiltered(child, linkType).
func makeIncomingKey(child core.Handle, linkType core.Type, link core.Handle) []byte {
	prefix := []byte(incomingPrefix + ":")
	buf := make([]byte, len(prefix)+8+2+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(child))
	offset += 8
	binary.BigEndian.PutUint16(buf[offset:], uint16(linkType))
	offset += 2
	binary.BigEndian.PutUint64(buf[offset:], uint64(link))
	return buf
}

// makePartialIncomingKey generates a partial key for IncomingSize scans.
// Format: prefix:child
func makePartialIncomingKey(child core.Handle) []byte {
	prefix := []byte(incomingPrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(child))
	return buf
}

// makePartialIncomingFilteredKey generates a partial key for
// IncomingFiltered scans. Format: prefix:child:linkType
func makePartialIncomingFilteredKey(child core.Handle, linkType core.Type) []byte {
	prefix := []byte(incomingPrefix + ":")
	buf := make([]byte, len(prefix)+8+2)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(child))
	offset += 8
	binary.BigEndian.PutUint16(buf[offset:], uint16(linkType))
	return buf
}
