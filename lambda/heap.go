package lambda

import "github.com/golang/glog"

// PageSize is the number of nodes in a single heap page.
const PageSize = 256

// G1Pages is the number of generation-1 pages the heap can hold.
// Together with PageSize this bounds the term size to roughly
// G1Pages*PageSize live nodes, well under the 16-bit handle space.
const G1Pages = 64

// Idx is an opaque handle into the heap. The zero value means "no node";
// it is never dereferenced.
type Idx uint16

// g2Page is the page number of the single generation-2 (active
// allocation) page, one past the last generation-1 page.
const g2Page = G1Pages

// address splits a handle into a page number and an in-page slot.
func address(i Idx) (page, slot int) {
	return int(i) / PageSize, int(i) % PageSize
}

// Heap is a fixed-capacity, index-addressable store of term nodes.
// Nodes live in one of G1Pages optionally-present generation-1 pages,
// or in the single generation-2 page that serves new allocations.
// Handles are stable for the lifetime of a node: a node, once
// allocated, is never moved.
type Heap struct {
	g1    [G1Pages]*[PageSize]Node
	g2    [PageSize]Node
	g2Top int // next free slot in g2, 0 is reserved

	// active is the g1 page currently receiving bump allocations once g2
	// fills, or -1 while g2 is still active. A full active page is left
	// in place (it's now a long-lived generation-1 page) and the next
	// unclaimed g1 index becomes active, per spec §9's promotion scheme.
	active    int
	activeTop int

	// combinators caches the canonical constants (ID, CONST, FORK,
	// SUCC, PLUS, TIMES, POWER) after their first construction in this
	// heap, per spec §9's "lazy-initialize ... and intern them."
	combinators map[string]Idx
}

// New creates an empty heap. g2 slot 0 is pre-initialized to the
// canonical Hole encoding so that handle 0, if ever dereferenced by
// mistake, reads back as a harmless Hole rather than garbage.
func New() *Heap {
	h := &Heap{g2Top: 1, active: -1, combinators: make(map[string]Idx, 7)}
	h.g2[0] = HoleNode
	return h
}

// Get dereferences a handle. Handle 0 is special-cased to the reserved
// Hole at g2[0]: address(0) would otherwise route it to slot 0 of g1
// page 0, a page that is absent until g2 fills (a fatal "absent page")
// and whose slot 0 is never handed out, instead of the harmless Hole
// spec §4.1 promises. Any other handle is total on a live page and fatal on an
// out-of-range one, matching spec §3.1's contract-breach behavior.
func (h *Heap) Get(i Idx) Node {
	if i == 0 {
		return h.g2[0]
	}
	page, slot := address(i)
	switch {
	case page == g2Page:
		return h.g2[slot]
	case page < g2Page:
		p := h.g1[page]
		if p == nil {
			glog.Fatalf("lambda: heap: dereferenced absent g1 page %d (idx=%d)", page, i)
		}
		return p[slot]
	default:
		glog.Fatalf("lambda: heap: segmentation fault dereferencing idx=%d", i)
		panic("unreachable")
	}
}

// GetMut returns a pointer to the node at i for in-place mutation, used
// by Shift and Beta. Same handle-0 special case and totality contract
// as Get.
func (h *Heap) GetMut(i Idx) *Node {
	if i == 0 {
		return &h.g2[0]
	}
	page, slot := address(i)
	switch {
	case page == g2Page:
		return &h.g2[slot]
	case page < g2Page:
		p := h.g1[page]
		if p == nil {
			glog.Fatalf("lambda: heap: mutated absent g1 page %d (idx=%d)", page, i)
		}
		return &p[slot]
	default:
		glog.Fatalf("lambda: heap: segmentation fault mutating idx=%d", i)
		panic("unreachable")
	}
}

// Alloc reserves the next free slot, bump-allocating out of g2 first
// and then promoting into successive g1 pages as each fills, claiming
// a fresh page only when the currently active one runs out. It returns
// (0, false) once every g1 page has been claimed and filled.
func (h *Heap) Alloc() (Idx, bool) {
	if h.active < 0 {
		if h.g2Top < PageSize {
			idx := Idx(g2Page*PageSize + h.g2Top)
			h.g2Top++
			return idx, true
		}
		if !h.claimPage() {
			return 0, false
		}
	}
	if h.activeTop >= PageSize {
		if !h.claimPage() {
			return 0, false
		}
	}
	idx := Idx(h.active*PageSize + h.activeTop)
	h.activeTop++
	return idx, true
}

// claimPage promotes g2 (on the first call) or the current active page
// (afterward, implicitly, since it's left in h.g1) by advancing to the
// next unclaimed g1 page and allocating its backing array. g1 page 0,
// slot 0 would otherwise compute to the same raw handle value as the
// reserved null handle, so that single slot is skipped like g2's is.
func (h *Heap) claimPage() bool {
	next := h.active + 1
	if next >= G1Pages {
		return false
	}
	h.g1[next] = &[PageSize]Node{}
	h.active = next
	h.activeTop = 0
	if next == 0 {
		h.activeTop = 1
	}
	return true
}

// Init allocates a slot and writes value into it atomically.
func (h *Heap) Init(value Node) (Idx, bool) {
	idx, ok := h.Alloc()
	if !ok {
		return 0, false
	}
	*h.GetMut(idx) = value
	return idx, true
}

// InitWith allocates a slot and writes f()'s result into it. Useful
// when constructing the node's contents requires the freshly-allocated
// index itself (e.g. self-referential bookkeeping is never needed here,
// but the shape mirrors the Rust source's init_with).
func (h *Heap) InitWith(f func(Idx) Node) (Idx, bool) {
	idx, ok := h.Alloc()
	if !ok {
		return 0, false
	}
	*h.GetMut(idx) = f(idx)
	return idx, true
}
