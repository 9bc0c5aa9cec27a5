// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

// OpType is an enum of all operations a Func can hold: the abstract
// subgroup-MMA ops (prefix MMA) that programs are built from, and the target
// cooperative-matrix instructions the lowering rules emit.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota

	// OpTypeParameter is a function input.
	OpTypeParameter

	// OpTypeConstant holds a single scalar value (see Builder.Constant).
	OpTypeConstant

	// Abstract subgroup-MMA ops. Consumed (and destroyed) by the lowering
	// engine; none survives a successful lowering.

	OpTypeMMALoad
	OpTypeMMAStore
	OpTypeMMACompute
	OpTypeMMAConstant
	OpTypeMMAElementwise

	// Target cooperative-matrix instructions.

	OpTypeCoopMatLoad
	OpTypeCoopMatStore
	OpTypeCoopMatMulAdd
	OpTypeCompositeConstruct
	OpTypeMatrixTimesScalar
	OpTypeFAdd
	OpTypeIAdd
	OpTypeFSub
	OpTypeISub
	OpTypeFDiv
	OpTypeSDiv
	OpTypeUDiv
	OpTypeFNegate
	OpTypeSNegate
	OpTypeFConvert
	OpTypeIMul
	OpTypeAccessChain
)

// IsMMA returns whether the op type belongs to the abstract subgroup-MMA
// vocabulary, i.e. it is subject to lowering.
func (ot OpType) IsMMA() bool {
	return ot >= OpTypeMMALoad && ot <= OpTypeMMAElementwise
}

// ElementwiseOp selects the operation applied by an MMAElementwise op.
// Arity is fixed per opcode: NegateF, NegateS and ExtF are unary, the rest
// binary.
type ElementwiseOp int

//go:generate go tool enumer -type=ElementwiseOp -trimprefix=Elementwise -output=gen_elementwiseop_enumer.go optype.go

const (
	ElementwiseAddF ElementwiseOp = iota
	ElementwiseAddI
	ElementwiseSubF
	ElementwiseSubI
	ElementwiseDivF
	ElementwiseDivS
	ElementwiseDivU
	ElementwiseNegateF
	ElementwiseNegateS
	ElementwiseExtF
	ElementwiseMulF
)

// NumOperands returns the arity of the elementwise opcode.
func (e ElementwiseOp) NumOperands() int {
	switch e {
	case ElementwiseNegateF, ElementwiseNegateS, ElementwiseExtF:
		return 1
	default:
		return 2
	}
}
