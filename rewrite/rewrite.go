// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package rewrite drives the lowering of abstract subgroup-MMA ops: patterns
// are registered into a PatternSet with a benefit, and Apply offers every
// abstract op of a function to the matching patterns, highest benefit first.
//
// A pattern either declines (returns false, the next one is tried) or
// rewrites the op: it emits replacement target ops through the Rewriter and
// the original op is removed. Declining is normal control flow, not an error;
// an abstract op no pattern accepts fails the whole Apply.
package rewrite

import (
	"sort"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/coopmat/ir"
)

// DefaultBenefit is the benefit patterns registered with Add get.
const DefaultBenefit = 1

// Pattern lowers ops of one abstract OpType.
//
// MatchAndRewrite returns false to decline without touching the function.
// Once it starts emitting ops it must succeed: there is no partial-failure
// path, a matched rewrite always completes.
type Pattern struct {
	// Name identifies the pattern in logs.
	Name string

	// OpType the pattern is offered.
	OpType ir.OpType

	// Benefit orders patterns for the same OpType, highest first.
	// Ties are broken by registration order.
	Benefit int

	MatchAndRewrite func(op *ir.Op, r *Rewriter) bool
}

// PatternSet is an ordered collection of lowering patterns.
type PatternSet struct {
	patterns []Pattern
}

// Add registers the pattern; a zero Benefit becomes DefaultBenefit.
func (ps *PatternSet) Add(patterns ...Pattern) {
	for _, p := range patterns {
		if p.MatchAndRewrite == nil {
			exceptions.Panicf("PatternSet.Add: pattern %q has no MatchAndRewrite", p.Name)
		}
		if p.Benefit == 0 {
			p.Benefit = DefaultBenefit
		}
		ps.patterns = append(ps.patterns, p)
	}
}

// forOpType returns the patterns registered for the given op type, in
// descending benefit, ties in registration order.
func (ps *PatternSet) forOpType(opType ir.OpType) []Pattern {
	var matches []Pattern
	for _, p := range ps.patterns {
		if p.OpType == opType {
			matches = append(matches, p)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Benefit > matches[j].Benefit })
	return matches
}

// Rewriter is handed to a pattern's MatchAndRewrite: it gives access to a
// Builder positioned right before the op being rewritten, to the adapted
// (already lowered) form of the op's operands, and performs the final op
// replacement.
type Rewriter struct {
	fn      *ir.Func
	builder *ir.Builder

	// adapted maps the result of each lowered op to its replacement value.
	adapted map[*ir.Value]*ir.Value

	// pending holds the replaced ops, removed only once the whole function
	// is lowered. Keeping them in place until then lets patterns inspect
	// the original (pre-adaptation) producers of an op's operands.
	pending []replacement
}

type replacement struct {
	op   *ir.Op
	newV *ir.Value // nil when the op had no result.
}

// Builder to emit replacement ops with. Its insertion point is right before
// the op being rewritten.
func (r *Rewriter) Builder() *ir.Builder { return r.builder }

// Adapted returns the lowered replacement of v if its defining op was already
// rewritten, otherwise v itself. This is how operands produced by abstract
// ops earlier in the function are seen in their target-typed form.
func (r *Rewriter) Adapted(v *ir.Value) *ir.Value {
	if repl, ok := r.adapted[v]; ok {
		return repl
	}
	return v
}

// AdaptedAll maps Adapted over the values.
func (r *Rewriter) AdaptedAll(values []*ir.Value) []*ir.Value {
	adapted := make([]*ir.Value, len(values))
	for i, v := range values {
		adapted[i] = r.Adapted(v)
	}
	return adapted
}

// ReplaceOp marks op as replaced by newV: later patterns see newV as the
// adapted form of op's result, and op itself is substituted and removed when
// the whole function has been lowered.
func (r *Rewriter) ReplaceOp(op *ir.Op, newV *ir.Value) {
	if op.Output == nil {
		exceptions.Panicf("Rewriter.ReplaceOp(%s): op has no result, use EraseOp", op)
	}
	r.adapted[op.Output] = newV
	r.pending = append(r.pending, replacement{op: op, newV: newV})
}

// EraseOp marks a result-less op (a store) for removal.
func (r *Rewriter) EraseOp(op *ir.Op) {
	if op.Output != nil {
		exceptions.Panicf("Rewriter.EraseOp(%s): op has a result, use ReplaceOp", op)
	}
	r.pending = append(r.pending, replacement{op: op})
}

// finalize substitutes all uses first and only then removes the replaced
// ops: a replaced op may still list the result of another replaced op as
// input until its own substitution runs.
func (r *Rewriter) finalize() {
	for _, rep := range r.pending {
		if rep.newV != nil {
			r.fn.ReplaceAllUsesWith(rep.op.Output, rep.newV)
		}
	}
	for _, rep := range r.pending {
		r.fn.RemoveOp(rep.op)
	}
	r.pending = nil
}

// Apply lowers every abstract subgroup-MMA op of fn with the given patterns.
//
// Ops are visited in function order, so an op's operands are always offered
// (and lowered) before the op itself -- patterns can rely on prior operands
// being already target-typed. Returns an error naming the first op no
// pattern accepted; fn is left partially rewritten in that case and should be
// discarded.
func Apply(fn *ir.Func, patterns *PatternSet) error {
	r := &Rewriter{
		fn:      fn,
		builder: fn.NewBuilder(),
		adapted: make(map[*ir.Value]*ir.Value),
	}

	// Snapshot: rewrites mutate fn.Ops() in place.
	var worklist []*ir.Op
	for _, op := range fn.Ops() {
		if op.OpType.IsMMA() {
			worklist = append(worklist, op)
		}
	}
	for _, op := range worklist {
		candidates := patterns.forOpType(op.OpType)
		if len(candidates) == 0 {
			return errors.Errorf("no lowering pattern registered for %s (op %s)", op.OpType, op)
		}
		lowered := false
		for _, p := range candidates {
			r.builder.SetInsertionPoint(op)
			if p.MatchAndRewrite(op, r) {
				klog.V(2).Infof("rewrite: %s lowered %s op in %q", p.Name, op.OpType, fn.Name())
				lowered = true
				break
			}
		}
		if !lowered {
			return errors.Errorf("no lowering pattern matched op %s in %q", op, fn.Name())
		}
	}
	r.finalize()
	return nil
}
