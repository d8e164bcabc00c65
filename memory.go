package siew

// growCapacity doubles a buffer capacity, starting at 8. Growing by a
// multiple of the current capacity keeps amortized append cost constant.
func growCapacity(capacity int) int {
	if capacity < 8 {
		return 8
	}
	return capacity * 2
}

// heap owns every object one VM allocates: an intrusive list threaded
// through the object headers, plus the string intern table. Objects are
// never freed individually; free tears the whole lot down when the VM
// closes.
type heap struct {
	objects Obj
	strings Table
}

// add prepends obj to the owned list.
func (h *heap) add(obj Obj) {
	hdr := obj.header()
	hdr.next = h.objects
	h.objects = obj
}

// free unlinks every owned object and drops the intern table. Breaking the
// next chain makes each object individually collectable even if a stale
// reference keeps one of them alive.
func (h *heap) free() {
	for obj := h.objects; obj != nil; {
		next := obj.header().next
		obj.header().next = nil
		obj = next
	}
	h.objects = nil
	h.strings.Free()
}
