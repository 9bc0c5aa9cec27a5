// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package lower

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/coopmat/ir"
)

// AddressResolver turns a memref value plus one index per axis into a flat
// element pointer, emitting whatever address arithmetic it needs through the
// builder. It is pure given its inputs and always succeeds for well-formed
// ones; resolvers are injected so tests can substitute a stub.
type AddressResolver interface {
	ElementPtr(b *ir.Builder, memref *ir.Value, indices []*ir.Value) *ir.Value
}

// StridedResolver resolves addresses from the memref's layout strides: it
// materializes each axis stride as a constant, accumulates
// sum(index[axis]*stride[axis]) with integer multiplies and adds, and emits a
// single AccessChain from the base to that offset.
type StridedResolver struct{}

// Compile-time check.
var _ AddressResolver = StridedResolver{}

// ElementPtr implements AddressResolver.
func (StridedResolver) ElementPtr(b *ir.Builder, memref *ir.Value, indices []*ir.Value) *ir.Value {
	t, ok := memref.Type().(ir.MemRefType)
	if !ok {
		exceptions.Panicf("StridedResolver: memref operand has type %s", memref.Type())
	}
	if len(indices) != t.Rank() {
		exceptions.Panicf("StridedResolver: %d indices for rank-%d memref %s", len(indices), t.Rank(), t)
	}
	var offset *ir.Value
	for axis, index := range indices {
		term := index
		if stride := t.Strides[axis]; stride != 1 {
			idxType := index.Type().(ir.ScalarType)
			strideConst := b.Constant(idxType.DType, stride)
			term = b.Emit(ir.OpTypeIMul, index.Type(), index, strideConst)
		}
		if offset == nil {
			offset = term
		} else {
			offset = b.Emit(ir.OpTypeIAdd, offset.Type(), offset, term)
		}
	}
	if offset == nil {
		offset = b.Constant(dtypes.Int32, 0)
	}
	return b.AccessChain(memref, offset)
}
