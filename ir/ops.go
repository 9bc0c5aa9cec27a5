// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// This file has the op constructors: the abstract subgroup-MMA ops validate
// their invariants and return errors, since they are built directly from user
// programs; the target instructions are only emitted by lowering rules and
// the address resolver, so invalid inputs there are bugs and panic.

// MMALoad reads a matrix tile of the given result type from the memref src at
// the given indices. leadDimension is the stride in elements between
// consecutive rows (columns if transpose) of the tile; transpose selects the
// column-major interpretation.
func (b *Builder) MMALoad(result MatrixType, src *Value, indices []*Value, leadDimension int, transpose bool) (*Value, error) {
	memref, err := b.checkMemRefOperands("MMALoad", src, indices, leadDimension)
	if err != nil {
		return nil, err
	}
	if memref.DType != result.DType {
		return nil, errors.Errorf("MMALoad: memref element type %s differs from matrix element type %s", memref.DType, result.DType)
	}
	inputs := append([]*Value{src}, indices...)
	op := b.newOp(OpTypeMMALoad, result, inputs...)
	op.Data = MemAttrs{LeadDimension: leadDimension, Transpose: transpose}
	return op.Output, nil
}

// MMAStore writes the matrix value src to the memref dst at the given
// indices. leadDimension and transpose are as in MMALoad. It produces no
// value.
func (b *Builder) MMAStore(src, dst *Value, indices []*Value, leadDimension int, transpose bool) (*Op, error) {
	matrix, ok := src.Type().(MatrixType)
	if !ok {
		return nil, errors.Errorf("MMAStore: src must be a matrix, got %s", src.Type())
	}
	memref, err := b.checkMemRefOperands("MMAStore", dst, indices, leadDimension)
	if err != nil {
		return nil, err
	}
	if memref.DType != matrix.DType {
		return nil, errors.Errorf("MMAStore: memref element type %s differs from matrix element type %s", memref.DType, matrix.DType)
	}
	inputs := append([]*Value{src, dst}, indices...)
	op := b.newOp(OpTypeMMAStore, nil, inputs...)
	op.Data = MemAttrs{LeadDimension: leadDimension, Transpose: transpose}
	return op, nil
}

func (b *Builder) checkMemRefOperands(opName string, ref *Value, indices []*Value, leadDimension int) (MemRefType, error) {
	memref, ok := ref.Type().(MemRefType)
	if !ok {
		return MemRefType{}, errors.Errorf("%s: memory operand must be a memref, got %s", opName, ref.Type())
	}
	if len(indices) != memref.Rank() {
		return MemRefType{}, errors.Errorf("%s: got %d indices for a rank-%d memref", opName, len(indices), memref.Rank())
	}
	for i, idx := range indices {
		scalar, ok := idx.Type().(ScalarType)
		if !ok || !scalar.DType.IsInt() {
			return MemRefType{}, errors.Errorf("%s: index #%d must be an integer scalar, got %s", opName, i, idx.Type())
		}
	}
	if leadDimension <= 0 {
		return MemRefType{}, errors.Errorf("%s: leadDimension must be > 0, got %d", opName, leadDimension)
	}
	return memref, nil
}

// MMACompute is the fused multiply-accumulate opA*opB+opC. The result has
// opC's type.
func (b *Builder) MMACompute(opA, opB, opC *Value) (*Value, error) {
	a, okA := opA.Type().(MatrixType)
	bm, okB := opB.Type().(MatrixType)
	c, okC := opC.Type().(MatrixType)
	if !okA || !okB || !okC {
		return nil, errors.Errorf("MMACompute: operands must be matrices, got (%s, %s, %s)", opA.Type(), opB.Type(), opC.Type())
	}
	if a.Role != RoleA || bm.Role != RoleB || c.Role != RoleAccumulator {
		return nil, errors.Errorf("MMACompute: operand roles must be (A, B, Accumulator), got (%s, %s, %s)", a.Role, bm.Role, c.Role)
	}
	if a.Cols != bm.Rows || a.Rows != c.Rows || bm.Cols != c.Cols {
		return nil, errors.Errorf("MMACompute: shapes %dx%d * %dx%d don't accumulate into %dx%d",
			a.Rows, a.Cols, bm.Rows, bm.Cols, c.Rows, c.Cols)
	}
	op := b.newOp(OpTypeMMACompute, c, opA, opB, opC)
	return op.Output, nil
}

// MMAConstant builds a matrix of the given type with every element set to the
// scalar operand ("splat").
func (b *Builder) MMAConstant(result MatrixType, scalar *Value) (*Value, error) {
	st, ok := scalar.Type().(ScalarType)
	if !ok {
		return nil, errors.Errorf("MMAConstant: operand must be a scalar, got %s", scalar.Type())
	}
	if st.DType != result.DType {
		return nil, errors.Errorf("MMAConstant: scalar type %s differs from matrix element type %s", st.DType, result.DType)
	}
	op := b.newOp(OpTypeMMAConstant, result, scalar)
	return op.Output, nil
}

// MMAElementwise applies opcode to the operand matrices element by element.
// The result type must be given because ExtF widens the element type; for
// every other opcode it must match the operands' type up to role.
func (b *Builder) MMAElementwise(result MatrixType, opcode ElementwiseOp, operands ...*Value) (*Value, error) {
	if len(operands) != opcode.NumOperands() {
		return nil, errors.Errorf("MMAElementwise(%s): opcode takes %d operands, got %d", opcode, opcode.NumOperands(), len(operands))
	}
	for i, operand := range operands {
		m, ok := operand.Type().(MatrixType)
		if !ok {
			return nil, errors.Errorf("MMAElementwise(%s): operand #%d must be a matrix, got %s", opcode, i, operand.Type())
		}
		if m.Rows != result.Rows || m.Cols != result.Cols {
			return nil, errors.Errorf("MMAElementwise(%s): operand #%d is %dx%d, result is %dx%d",
				opcode, i, m.Rows, m.Cols, result.Rows, result.Cols)
		}
	}
	op := b.newOp(OpTypeMMAElementwise, result, operands...)
	op.Data = opcode
	return op.Output, nil
}

// Constant creates a scalar constant of the given dtype. value must be a Go
// bool, integer or float; it is converted to the dtype's representation
// (Float16 values are stored as float16.Float16). Panics on a dtype/value
// combination it cannot represent: constants are materialized by the lowering
// rules from already-validated attributes.
func (b *Builder) Constant(dtype dtypes.DType, value any) *Value {
	op := b.newOp(OpTypeConstant, ScalarType{DType: dtype})
	op.Data = convertScalar(dtype, value)
	return op.Output
}

func convertScalar(dtype dtypes.DType, value any) any {
	switch dtype {
	case dtypes.Bool:
		if v, ok := value.(bool); ok {
			return v
		}
	case dtypes.Int32:
		switch v := value.(type) {
		case int:
			return int32(v)
		case int32:
			return v
		case int64:
			return int32(v)
		}
	case dtypes.Int64:
		switch v := value.(type) {
		case int:
			return int64(v)
		case int64:
			return v
		}
	case dtypes.Float32:
		switch v := value.(type) {
		case float32:
			return v
		case float64:
			return float32(v)
		case int:
			return float32(v)
		}
	case dtypes.Float64:
		switch v := value.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		}
	case dtypes.Float16:
		switch v := value.(type) {
		case float16.Float16:
			return v
		case float32:
			return float16.Fromfloat32(v)
		case float64:
			return float16.Fromfloat32(float32(v))
		}
	}
	exceptions.Panicf("ir.Constant: cannot represent %T(%v) as %s", value, value, dtype)
	return nil
}

// ConstantValue returns the scalar held by an OpTypeConstant op.
func (op *Op) ConstantValue() any {
	if op.OpType != OpTypeConstant {
		exceptions.Panicf("Op.ConstantValue called on %s", op.OpType)
	}
	return op.Data
}

// CoopMatLoad emits the target cooperative-matrix load: ptr is the resolved
// element pointer, stride an i32 scalar and colMajor a bool scalar.
func (b *Builder) CoopMatLoad(result CoopMatrixType, ptr, stride, colMajor *Value) *Value {
	b.checkTypes("CoopMatLoad", []*Value{ptr, stride, colMajor},
		PointerType{DType: result.DType}, ScalarType{DType: dtypes.Int32}, ScalarType{DType: dtypes.Bool})
	return b.newOp(OpTypeCoopMatLoad, result, ptr, stride, colMajor).Output
}

// CoopMatStore emits the target cooperative-matrix store of src through ptr.
func (b *Builder) CoopMatStore(ptr, src, stride, colMajor *Value) *Op {
	coop, ok := src.Type().(CoopMatrixType)
	if !ok {
		exceptions.Panicf("CoopMatStore: src must be a cooperative matrix, got %s", src.Type())
	}
	b.checkTypes("CoopMatStore", []*Value{ptr, stride, colMajor},
		PointerType{DType: coop.DType}, ScalarType{DType: dtypes.Int32}, ScalarType{DType: dtypes.Bool})
	return b.newOp(OpTypeCoopMatStore, nil, ptr, src, stride, colMajor)
}

// CoopMatMulAdd emits the target fused multiply-accumulate a*m+acc; the
// result takes the accumulator's type.
func (b *Builder) CoopMatMulAdd(a, m, acc *Value) *Value {
	if _, ok := acc.Type().(CoopMatrixType); !ok {
		exceptions.Panicf("CoopMatMulAdd: accumulator must be a cooperative matrix, got %s", acc.Type())
	}
	return b.newOp(OpTypeCoopMatMulAdd, acc.Type(), a, m, acc).Output
}

// CompositeConstruct builds a composite value of the given type from its
// constituents. A cooperative matrix is constructed from one scalar, splat
// over all elements.
func (b *Builder) CompositeConstruct(result Type, constituents ...*Value) *Value {
	if len(constituents) == 0 {
		exceptions.Panicf("CompositeConstruct: needs at least one constituent")
	}
	return b.newOp(OpTypeCompositeConstruct, result, constituents...).Output
}

// MatrixTimesScalar emits the fused matrix-times-scalar multiply.
func (b *Builder) MatrixTimesScalar(result Type, matrix, scalar *Value) *Value {
	if _, ok := scalar.Type().(ScalarType); !ok {
		exceptions.Panicf("MatrixTimesScalar: scalar operand has type %s", scalar.Type())
	}
	return b.newOp(OpTypeMatrixTimesScalar, result, matrix, scalar).Output
}

// AccessChain emits the element-pointer computation: base must be a memref
// and offset an integer scalar holding the linearized element offset.
func (b *Builder) AccessChain(base, offset *Value) *Value {
	memref, ok := base.Type().(MemRefType)
	if !ok {
		exceptions.Panicf("AccessChain: base must be a memref, got %s", base.Type())
	}
	return b.newOp(OpTypeAccessChain, PointerType{DType: memref.DType}, base, offset).Output
}

// Emit creates an op of the given type with the given output type and inputs
// with no further checking. Used for the uniform arithmetic instructions
// (FAdd, IMul, ...).
func (b *Builder) Emit(opType OpType, out Type, inputs ...*Value) *Value {
	return b.newOp(opType, out, inputs...).Output
}

func (b *Builder) checkTypes(opName string, values []*Value, want ...Type) {
	for i, v := range values {
		if v.Type() != want[i] {
			exceptions.Panicf("%s: operand #%d has type %s, want %s", opName, i, v.Type(), want[i])
		}
	}
}
