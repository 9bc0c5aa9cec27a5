// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// Type is the type of a Value in a Func.
//
// It is a closed set: scalars, element pointers, memory references (memref),
// abstract subgroup-MMA matrices and target cooperative matrices.
type Type interface {
	fmt.Stringer

	// isType limits implementations to this package.
	isType()
}

// ScalarType is a single element of the given DType.
type ScalarType struct {
	DType dtypes.DType
}

func (t ScalarType) isType() {}

func (t ScalarType) String() string {
	return t.DType.String()
}

// PointerType points to one element of the given DType in linear memory.
// It is the result of address resolution and the memory operand of the
// cooperative matrix load/store instructions.
type PointerType struct {
	DType dtypes.DType
}

func (t PointerType) isType() {}

func (t PointerType) String() string {
	return fmt.Sprintf("ptr<%s>", t.DType)
}

// MemRefType describes a multi-dimensional region of memory: the element
// DType, the dimensions and the stride (in elements) between consecutive
// entries of each axis.
//
// The lowering engine never mutates a memref, it only reads the layout to
// resolve element addresses.
type MemRefType struct {
	DType   dtypes.DType
	Dims    []int
	Strides []int
}

// MakeMemRef returns a MemRefType with a dense row-major layout for the given
// dimensions. It panics if any dimension is not positive.
func MakeMemRef(dtype dtypes.DType, dims ...int) MemRefType {
	t := MemRefType{DType: dtype, Dims: slices.Clone(dims), Strides: make([]int, len(dims))}
	stride := 1
	for axis := len(dims) - 1; axis >= 0; axis-- {
		if dims[axis] <= 0 {
			exceptions.Panicf("ir.MakeMemRef(%s): axis %d has dimension %d, must be > 0", dtype, axis, dims[axis])
		}
		t.Strides[axis] = stride
		stride *= dims[axis]
	}
	return t
}

// Rank returns the number of axes of the memref.
func (t MemRefType) Rank() int { return len(t.Dims) }

// Equal compares the memref layouts structurally.
func (t MemRefType) Equal(o MemRefType) bool {
	return t.DType == o.DType && slices.Equal(t.Dims, o.Dims) && slices.Equal(t.Strides, o.Strides)
}

func (t MemRefType) isType() {}

func (t MemRefType) String() string {
	parts := make([]string, len(t.Dims))
	for i, dim := range t.Dims {
		parts[i] = fmt.Sprintf("%d", dim)
	}
	return fmt.Sprintf("memref<%sx%s>", strings.Join(parts, "x"), t.DType)
}

// Role distinguishes the position a matrix takes in a multiply-accumulate:
// left operand (A), right operand (B) or accumulator (C).
type Role int

//go:generate go tool enumer -type=Role -trimprefix=Role -output=gen_role_enumer.go types.go

const (
	RoleA Role = iota
	RoleB
	RoleAccumulator
)

// MatrixType is the abstract, hardware-agnostic subgroup-MMA matrix type:
// shape, element type and the role the matrix plays in a multiply-accumulate.
//
// It is a value type compared structurally. Use MakeMatrix to build one with
// the dimensions checked.
type MatrixType struct {
	Rows, Cols int
	DType      dtypes.DType
	Role       Role
}

// MakeMatrix returns the MatrixType with the given fields.
// It panics if rows or cols is not positive.
func MakeMatrix(dtype dtypes.DType, rows, cols int, role Role) MatrixType {
	if rows <= 0 || cols <= 0 {
		exceptions.Panicf("ir.MakeMatrix(%s, %d, %d, %s): dimensions must be > 0", dtype, rows, cols, role)
	}
	return MatrixType{Rows: rows, Cols: cols, DType: dtype, Role: role}
}

func (t MatrixType) isType() {}

func (t MatrixType) String() string {
	return fmt.Sprintf("!mma.matrix<%dx%dx%s, %s>", t.Rows, t.Cols, t.DType, t.Role)
}

// Scope is the execution granularity over which a cooperative matrix value is
// collectively held.
type Scope int

//go:generate go tool enumer -type=Scope -trimprefix=Scope -output=gen_scope_enumer.go types.go

const (
	ScopeSubgroup Scope = iota
	ScopeWorkgroup
	ScopeDevice
)

// CoopMatrixType is the target cooperative matrix type. Unlike MatrixType it
// carries the execution Scope and no Role: the target instruction set does not
// distinguish A/B/accumulator matrices at the type level.
//
// Produce it with a type converter (see package lower); value type, compared
// structurally.
type CoopMatrixType struct {
	DType      dtypes.DType
	Scope      Scope
	Rows, Cols int
}

func (t CoopMatrixType) isType() {}

func (t CoopMatrixType) String() string {
	return fmt.Sprintf("!coopmatrix<%dx%dx%s, %s>", t.Rows, t.Cols, t.DType, t.Scope)
}
