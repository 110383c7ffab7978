package toolpath

import (
	"errors"

	"github.com/zooyer/dxf2path/entities"
)

// Order chains ents into a sequence where every segment starts where the
// previous one ends.
//
// The chain is seeded with the first entity (or the detected seed with
// DetectSeed) and grown greedily: each step appends the first remaining
// segment, in input order, whose start matches the current end. Branching
// drawings are not disambiguated. When a full pass over the remaining
// segments finds no match Order fails with a *DisconnectedError; a partial
// chain is never returned.
func Order(ents []entities.Entity, opts ...Option) ([]Segment, error) {
	o := newOptions(opts)
	return order(ents, o)
}

func order(ents []entities.Entity, o *options) ([]Segment, error) {
	if len(ents) == 0 {
		return nil, &Error{Op: "order", Index: -1, Err: ErrEmptyDocument}
	}

	segs, err := resolveAll(ents, o)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, &Error{Op: "order", Index: -1, Err: ErrEmptyDocument}
	}

	seed := 0
	if o.detectSeed {
		seed = findSeed(segs, o.tolerance)
	}

	var (
		ordered   = make([]Segment, 0, len(segs))
		remaining = make([]Segment, 0, len(segs)-1)
	)
	ordered = append(ordered, segs[seed])
	remaining = append(remaining, segs[:seed]...)
	remaining = append(remaining, segs[seed+1:]...)

	for len(remaining) > 0 {
		tail := ordered[len(ordered)-1].End

		next := -1
		for i, s := range remaining {
			if s.Start.Near(tail, o.tolerance) {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, disconnected(ordered, remaining)
		}

		ordered = append(ordered, remaining[next])
		remaining = append(remaining[:next], remaining[next+1:]...)
	}

	return ordered, nil
}

// resolveAll resolves every entity, keeping input order in Segment.Index.
func resolveAll(ents []entities.Entity, o *options) ([]Segment, error) {
	segs := make([]Segment, 0, len(ents))
	for i, e := range ents {
		seg, err := Resolve(e)
		if err != nil {
			var rerr *Error
			if errors.As(err, &rerr) {
				rerr.Index = i
			}
			if o.skipUnsupported && errors.Is(err, ErrUnsupportedEntityKind) {
				continue
			}
			return nil, err
		}
		seg.Index = i
		segs = append(segs, seg)
	}
	return segs, nil
}

// findSeed returns the first segment whose start is no other segment's end.
// A closed loop has none, in which case the first segment is used.
func findSeed(segs []Segment, tol float64) int {
	for i, s := range segs {
		matched := false
		for j, other := range segs {
			if i != j && other.End.Near(s.Start, tol) {
				matched = true
				break
			}
		}
		if !matched {
			return i
		}
	}
	return 0
}
