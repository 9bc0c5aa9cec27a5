// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ir defines the small instruction graph the lowering engine works
// on: typed values, ops tagged with an OpType, and a Builder that appends ops
// to a Func while checking the structural invariants of each op kind.
//
// Two op vocabularies share the one graph: the abstract subgroup-MMA ops a
// program is written in, and the cooperative-matrix target instructions the
// lowering rules emit (see package lower). Ops are kept in def-before-use
// order: an op's inputs are always produced by earlier ops or by function
// parameters.
package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
)

// Value is the result of an op or a function parameter, used as input to
// later ops. Values are identified by pointer.
type Value struct {
	fn   *Func
	def  *Op // nil for parameters.
	typ  Type
	name string // Set for parameters only.
	id   int
}

// Type of the value.
func (v *Value) Type() Type { return v.typ }

// DefiningOp returns the op that produces this value, or nil for function
// parameters.
func (v *Value) DefiningOp() *Op { return v.def }

func (v *Value) String() string {
	if v.def == nil {
		return fmt.Sprintf("%%%s", v.name)
	}
	return fmt.Sprintf("%%%d", v.id)
}

// Op is one instruction: an OpType tag, its input values, an optional output
// value (nil for stores) and an opcode-specific payload:
//
//   - OpTypeConstant: the scalar Go value (see Builder.Constant).
//   - OpTypeMMALoad / OpTypeMMAStore: MemAttrs.
//   - OpTypeMMAElementwise: the ElementwiseOp opcode.
type Op struct {
	fn     *Func
	OpType OpType
	Inputs []*Value
	Output *Value
	Data   any
}

// MemAttrs are the attributes of the abstract matrix load and store ops.
type MemAttrs struct {
	// LeadDimension is the stride, in elements, between consecutive rows
	// (or columns, when transposed) of the matrix in memory. Always > 0.
	LeadDimension int

	// Transpose selects the column-major interpretation of the tile.
	Transpose bool
}

func (op *Op) String() string {
	var sb strings.Builder
	if op.Output != nil {
		fmt.Fprintf(&sb, "%s = ", op.Output)
	}
	sb.WriteString(op.OpType.String())
	sb.WriteByte('(')
	for i, in := range op.Inputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(in.String())
	}
	sb.WriteByte(')')
	if op.Data != nil {
		fmt.Fprintf(&sb, " {%v}", op.Data)
	}
	if op.Output != nil {
		fmt.Fprintf(&sb, " : %s", op.Output.Type())
	}
	return sb.String()
}

// Func holds an ordered list of ops plus the function parameters.
type Func struct {
	name       string
	parameters []*Value
	ops        []*Op
	nextID     int
}

// Name of the function.
func (f *Func) Name() string { return f.name }

// Ops returns the current op list, in def-before-use order.
// The returned slice is owned by the Func, don't modify it.
func (f *Func) Ops() []*Op { return f.ops }

// Parameters returns the function parameters in creation order.
func (f *Func) Parameters() []*Value { return f.parameters }

// ReplaceAllUsesWith rewires every op input from oldV to newV.
// It panics if the values belong to different functions.
func (f *Func) ReplaceAllUsesWith(oldV, newV *Value) {
	if oldV.fn != f || newV.fn != f {
		exceptions.Panicf("Func(%q).ReplaceAllUsesWith: values belong to a different function", f.name)
	}
	for _, op := range f.ops {
		for i, in := range op.Inputs {
			if in == oldV {
				op.Inputs[i] = newV
			}
		}
	}
}

// RemoveOp deletes the op from the function. The op's output must have no
// remaining uses.
func (f *Func) RemoveOp(op *Op) {
	if op.Output != nil {
		for _, other := range f.ops {
			if other == op {
				continue
			}
			if slices.Contains(other.Inputs, op.Output) {
				exceptions.Panicf("Func(%q).RemoveOp(%s): output still in use by %s", f.name, op, other)
			}
		}
	}
	idx := slices.Index(f.ops, op)
	if idx < 0 {
		exceptions.Panicf("Func(%q).RemoveOp(%s): op not in function", f.name, op)
	}
	f.ops = slices.Delete(f.ops, idx, idx+1)
	op.fn = nil
}

func (f *Func) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "func %s(", f.name)
	for i, p := range f.parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", p, p.Type())
	}
	sb.WriteString(") {\n")
	for _, op := range f.ops {
		fmt.Fprintf(&sb, "  %s\n", op)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Builder creates ops into a Func. The zero insertion point appends at the
// end; the rewrite driver moves it so replacement ops land where the op they
// replace was (keeping def-before-use order for later consumers).
type Builder struct {
	fn *Func

	// insertAt is the index the next op is inserted at, or -1 to append.
	insertAt int
}

// NewBuilder returns a Builder over a fresh Func with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{fn: &Func{name: name}, insertAt: -1}
}

// NewBuilder returns another Builder over the same function, appending at the
// end. The rewrite driver uses one to emit replacement ops.
func (f *Func) NewBuilder() *Builder {
	return &Builder{fn: f, insertAt: -1}
}

// Func being built.
func (b *Builder) Func() *Func { return b.fn }

// SetInsertionPoint makes the next ops be inserted right before the given op.
// Pass nil to go back to appending at the end.
func (b *Builder) SetInsertionPoint(before *Op) {
	if before == nil {
		b.insertAt = -1
		return
	}
	idx := slices.Index(b.fn.ops, before)
	if idx < 0 {
		exceptions.Panicf("Builder(%q).SetInsertionPoint: op %s not in function", b.fn.name, before)
	}
	b.insertAt = idx
}

// Parameter creates a named function input of the given type.
func (b *Builder) Parameter(name string, t Type) *Value {
	v := b.newValue(t)
	v.name = name
	b.fn.parameters = append(b.fn.parameters, v)
	return v
}

func (b *Builder) newValue(t Type) *Value {
	v := &Value{fn: b.fn, typ: t, id: b.fn.nextID}
	b.fn.nextID++
	return v
}

// newOp inserts a new op at the current insertion point. outType == nil means
// the op produces no value.
func (b *Builder) newOp(opType OpType, outType Type, inputs ...*Value) *Op {
	for i, in := range inputs {
		if in == nil {
			exceptions.Panicf("Builder(%q).%s: input #%d is nil", b.fn.name, opType, i)
		}
		if in.fn != b.fn {
			exceptions.Panicf("Builder(%q).%s: input #%d belongs to a different function", b.fn.name, opType, i)
		}
	}
	op := &Op{fn: b.fn, OpType: opType, Inputs: slices.Clone(inputs)}
	if outType != nil {
		op.Output = b.newValue(outType)
		op.Output.def = op
	}
	if b.insertAt < 0 {
		b.fn.ops = append(b.fn.ops, op)
	} else {
		b.fn.ops = slices.Insert(b.fn.ops, b.insertAt, op)
		b.insertAt++
	}
	return op
}
