package contract

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-mintgate/internal/domain"
)

// --- slot derivation ---

// FieldSlot derives the storage slot of a scalar contract field.
func FieldSlot(field string) common.Hash {
	return common.BytesToHash(crypto.Keccak256([]byte(field)))
}

// MappingSlot derives the storage slot of a mapping's field for the given
// key parts. Key parts are hashed in order, followed by the field label.
func MappingSlot(field string, keys ...[]byte) common.Hash {
	var buf []byte
	for _, k := range keys {
		buf = append(buf, k...)
	}
	buf = append(buf, []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(buf))
}

func chunkSlot(base common.Hash, i uint64) common.Hash {
	var idx [8]byte
	binary.BigEndian.PutUint64(idx[:], i)
	return common.BytesToHash(crypto.Keccak256(append(base.Bytes(), idx[:]...)))
}

// --- typed codecs ---

func GetBig(db StateDB, addr common.Address, slot common.Hash) *big.Int {
	return db.GetState(addr, slot).Big()
}

func SetBig(db StateDB, addr common.Address, slot common.Hash, v *big.Int) {
	db.SetState(addr, slot, common.BigToHash(v))
}

func GetUint64(db StateDB, addr common.Address, slot common.Hash) uint64 {
	return db.GetState(addr, slot).Big().Uint64()
}

func SetUint64(db StateDB, addr common.Address, slot common.Hash, v uint64) {
	db.SetState(addr, slot, common.BigToHash(new(big.Int).SetUint64(v)))
}

func GetBool(db StateDB, addr common.Address, slot common.Hash) bool {
	return db.GetState(addr, slot) != (common.Hash{})
}

func SetBool(db StateDB, addr common.Address, slot common.Hash, v bool) {
	if v {
		db.SetState(addr, slot, common.BigToHash(big.NewInt(1)))
		return
	}
	db.SetState(addr, slot, common.Hash{})
}

func GetAddress(db StateDB, addr common.Address, slot common.Hash) common.Address {
	return common.BytesToAddress(db.GetState(addr, slot).Bytes())
}

func SetAddress(db StateDB, addr common.Address, slot common.Hash, v common.Address) {
	db.SetState(addr, slot, common.BytesToHash(v.Bytes()))
}

// GetString reads a variable-length string stored as a length slot plus
// 32-byte chunks derived from it.
func GetString(db StateDB, addr common.Address, slot common.Hash) string {
	length := GetUint64(db, addr, slot)
	if length == 0 {
		return ""
	}
	chunks := (length + 31) / 32
	buf := make([]byte, 0, chunks*32)
	for i := uint64(0); i < chunks; i++ {
		h := db.GetState(addr, chunkSlot(slot, i))
		buf = append(buf, h.Bytes()...)
	}
	return string(buf[:length])
}

// SetString writes a variable-length string, clearing any chunks left over
// from a previously longer value.
func SetString(db StateDB, addr common.Address, slot common.Hash, v string) {
	prevChunks := (GetUint64(db, addr, slot) + 31) / 32

	data := []byte(v)
	SetUint64(db, addr, slot, uint64(len(data)))
	chunks := (uint64(len(data)) + 31) / 32
	for i := uint64(0); i < chunks; i++ {
		var word [32]byte
		copy(word[:], data[i*32:])
		db.SetState(addr, chunkSlot(slot, i), common.BytesToHash(word[:]))
	}
	for i := chunks; i < prevChunks; i++ {
		db.SetState(addr, chunkSlot(slot, i), common.Hash{})
	}
}

// DeriveAddress computes the address a contract deployed by caller with the
// given action sequence lives at.
func DeriveAddress(caller common.Address, seq uint64) common.Address {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seq)
	return common.BytesToAddress(crypto.Keccak256(append(caller.Bytes(), buf[:]...))[12:])
}

// kindSlot holds which contract kind, if any, lives at an address.
var kindSlot = FieldSlot("contractKind")

// Kind returns the contract kind recorded at the address, or the empty kind
// when nothing is deployed there.
func Kind(db StateDB, addr common.Address) domain.ContractKind {
	return domain.ContractKind(GetString(db, addr, kindSlot))
}

// SetKind marks the address as hosting a contract of the given kind.
func SetKind(db StateDB, addr common.Address, kind domain.ContractKind) {
	SetString(db, addr, kindSlot, string(kind))
}

// RequireKind checks that the address hosts a contract of the wanted kind.
func RequireKind(db StateDB, addr common.Address, kind domain.ContractKind) error {
	got := Kind(db, addr)
	if got == "" {
		return domain.ErrContractNotFound
	}
	if got != kind {
		return domain.ErrWrongContractKind
	}
	return nil
}
