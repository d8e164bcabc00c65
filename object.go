package siew

import "strings"

// ObjKind identifies the concrete type behind an Obj reference.
type ObjKind int

const (
	// KindString is an interned immutable string.
	KindString ObjKind = iota
)

// Obj is implemented by every heap-allocated object. The header carries the
// kind tag and the intrusive link the owning heap threads through all live
// objects. Downcast with a type assertion after checking the kind, or just
// type-switch.
type Obj interface {
	header() *objHeader
}

type objHeader struct {
	kind ObjKind
	next Obj
}

func (h *objHeader) header() *objHeader { return h }

// Kind reports the object's kind tag.
func (h *objHeader) Kind() ObjKind { return h.kind }

// ObjString is an interned string object. For any two ObjStrings reachable
// from the same VM the contents differ, so identity comparison is value
// comparison; FindString in table.go is the one place textual comparison
// happens, and it exists to keep that true.
type ObjString struct {
	objHeader
	chars string
	hash  uint32
}

func (s *ObjString) String() string { return s.chars }

// Len returns the string length in bytes.
func (s *ObjString) Len() int { return len(s.chars) }

// 32-bit FNV-1a.
const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

func hashString(s string) uint32 {
	hash := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		hash ^= uint32(s[i])
		hash *= fnvPrime
	}
	return hash
}

// copyString interns the given span, copying it out of the source buffer it
// was sliced from. Returns the existing object when an interned twin exists.
func (h *heap) copyString(chars string) *ObjString {
	hash := hashString(chars)
	if interned := h.strings.FindString(chars, hash); interned != nil {
		return interned
	}
	return h.allocString(strings.Clone(chars), hash)
}

// takeString interns a string the caller already owns outright, such as the
// result of a concatenation. When an interned twin exists the caller's copy
// is discarded in its favor; otherwise the string is adopted as-is.
func (h *heap) takeString(chars string) *ObjString {
	hash := hashString(chars)
	if interned := h.strings.FindString(chars, hash); interned != nil {
		return interned
	}
	return h.allocString(chars, hash)
}

func (h *heap) allocString(chars string, hash uint32) *ObjString {
	s := &ObjString{chars: chars, hash: hash}
	s.kind = KindString
	h.add(s)
	// The intern table is a set keyed by string identity.
	h.strings.Set(s, NilVal())
	return s
}
