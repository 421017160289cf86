package liability

import (
	"errors"
	"sort"
)

var (
	// ErrBadThreshold indicates a non-positive split threshold.
	ErrBadThreshold = errors.New("[liability] split threshold must be positive")
	// ErrNegativeAmount indicates an input liability owing a
	// negative amount.
	ErrNegativeAmount = errors.New("[liability] liability amount must be non-negative")
)

// Obfuscate turns the input liabilities into the leaf-ready list:
// every liability is split at least once (unless its amount is 0 or 1) and
// until every piece is at most threshold; the list is then grown by
// further splitting and padded with dummies to the next power of two,
// and finally shuffled with randomness from src.
//
// The output sum equals the input sum, and no non-dummy piece exceeds
// the threshold.
func Obfuscate(liabilities []Liability, threshold int64, src Source) ([]Liability, error) {
	if threshold < 1 {
		return nil, ErrBadThreshold
	}
	for _, l := range liabilities {
		if l.Amount < 0 {
			return nil, ErrNegativeAmount
		}
	}

	split, err := splitAll(liabilities, threshold, src)
	if err != nil {
		return nil, err
	}
	target := NextPowerOfTwo(uint64(len(split)))
	grown, err := grow(split, int(target)-len(split), src)
	if err != nil {
		return nil, err
	}
	for uint64(len(grown)) < target {
		grown = append(grown, Dummy())
	}
	return shuffle(grown, src)
}

// NextPowerOfTwo returns the smallest power of two >= n.
// By convention NextPowerOfTwo(0) == 0, which keeps the empty input
// path producing an empty leaf list.
func NextPowerOfTwo(n uint64) uint64 {
	p := uint64(1)
	if n == 0 {
		return 0
	}
	for p < n {
		p <<= 1
	}
	return p
}

// splitOnce splits a liability into two pieces at a uniform random
// point. Amounts of 0 or 1 cannot be split and pass through whole.
// Neither piece is ever empty, so repeated splitting terminates.
func splitOnce(l Liability, src Source) ([]Liability, error) {
	if l.Amount <= 1 {
		return []Liability{l}, nil
	}
	r, err := src.Uniform(l.Amount - 1)
	if err != nil {
		return nil, err
	}
	return []Liability{l.withAmount(r), l.withAmount(l.Amount - r)}, nil
}

// splitBelow splits a liability until every piece is at most
// threshold, keeping subtree order.
func splitBelow(l Liability, threshold int64, src Source) ([]Liability, error) {
	if l.Amount <= threshold {
		return []Liability{l}, nil
	}
	halves, err := splitOnce(l, src)
	if err != nil {
		return nil, err
	}
	out := make([]Liability, 0, 2)
	for _, half := range halves {
		pieces, err := splitBelow(half, threshold, src)
		if err != nil {
			return nil, err
		}
		out = append(out, pieces...)
	}
	return out, nil
}

// splitAll applies the mandatory first split to every liability and
// then reduces each piece below the threshold, preserving input
// order. Every liability ends up represented by at least two pieces
// unless its amount is 0 or 1.
func splitAll(liabilities []Liability, threshold int64, src Source) ([]Liability, error) {
	out := make([]Liability, 0, 2*len(liabilities))
	for _, l := range liabilities {
		halves, err := splitOnce(l, src)
		if err != nil {
			return nil, err
		}
		for _, half := range halves {
			pieces, err := splitBelow(half, threshold, src)
			if err != nil {
				return nil, err
			}
			out = append(out, pieces...)
		}
	}
	return out, nil
}

// grow extends the list by d items by splitting existing pieces. Each
// round splits the first d pieces; pieces of amount 1 refuse to split,
// so the round may fall short, and the remaining deficit is requested
// from the tail. The result can still be short of d when unit amounts
// dominate; the caller pads the difference with dummies.
func grow(list []Liability, d int, src Source) ([]Liability, error) {
	if d == 0 {
		return list, nil
	}
	head, tail := list[:d], list[d:]
	splitHead := make([]Liability, 0, 2*d)
	for _, l := range head {
		pieces, err := splitOnce(l, src)
		if err != nil {
			return nil, err
		}
		splitHead = append(splitHead, pieces...)
	}
	deficit := 2*d - len(splitHead)
	if deficit > len(tail) {
		deficit = len(tail)
	}
	grownTail, err := grow(tail, deficit, src)
	if err != nil {
		return nil, err
	}
	return append(splitHead, grownTail...), nil
}

// shuffle applies a uniform random permutation by tagging every piece
// with an independent 64-bit draw and sorting by tag. Ties are broken
// by original position, which cannot bias the permutation since equal
// tags are themselves unordered random events.
func shuffle(list []Liability, src Source) ([]Liability, error) {
	type tagged struct {
		tag uint64
		l   Liability
	}
	tags := make([]tagged, len(list))
	for i, l := range list {
		tag, err := src.Tag()
		if err != nil {
			return nil, err
		}
		tags[i] = tagged{tag, l}
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].tag < tags[j].tag
	})
	out := make([]Liability, len(list))
	for i, tl := range tags {
		out[i] = tl.l
	}
	return out, nil
}
