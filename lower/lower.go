// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package lower translates the abstract subgroup-MMA ops into cooperative
// matrix instructions: explicit load/store with stride and layout flag, fused
// multiply-accumulate, composite construction for splats, matrix-times-scalar
// and a fixed family of elementwise arithmetic instructions.
//
// The six rules are registered with Populate into a rewrite.PatternSet and
// driven by rewrite.Apply. The scalar-multiply specialization runs at a
// higher benefit than the default elementwise rule so that
// MulF(ConstantSplat(k), X) becomes a single MatrixTimesScalar instead of a
// full elementwise multiply; MulF between two non-splat matrices is
// unsupported and fails the lowering.
package lower

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/coopmat/ir"
	"github.com/gomlx/coopmat/rewrite"
)

// TypeConverter maps an abstract matrix type to its cooperative matrix type.
// It must be pure and total: every valid MatrixType has a target type.
type TypeConverter func(ir.MatrixType) ir.CoopMatrixType

// ConvertMatrixType is the default TypeConverter: rows, cols and element type
// carry over unchanged, the role is dropped and the scope is Subgroup.
func ConvertMatrixType(t ir.MatrixType) ir.CoopMatrixType {
	return ir.CoopMatrixType{DType: t.DType, Scope: ir.ScopeSubgroup, Rows: t.Rows, Cols: t.Cols}
}

// ScalarMultiplyBenefit makes the scalar-multiply specialization prevail over
// the default elementwise rule.
const ScalarMultiplyBenefit = 2

// Populate registers the six lowering rules into the pattern set, bound to
// the given type converter and address resolver. All rules run at the default
// benefit except the scalar-multiply specialization at ScalarMultiplyBenefit.
func Populate(convert TypeConverter, resolver AddressResolver, patterns *rewrite.PatternSet) {
	patterns.Add(
		loadPattern(convert, resolver),
		storePattern(resolver),
		computePattern(),
		constantPattern(convert),
		elementwiseDefaultPattern(convert),
	)
	patterns.Add(scalarMultiplyPattern(convert))
}

// loadPattern lowers MMALoad: resolve the element pointer, materialize the
// lead dimension as an i32 constant and the transpose flag as the
// column-major bool constant, and load the converted cooperative matrix type.
func loadPattern(convert TypeConverter, resolver AddressResolver) rewrite.Pattern {
	return rewrite.Pattern{
		Name:   "LoadToCoopMatLoad",
		OpType: ir.OpTypeMMALoad,
		MatchAndRewrite: func(op *ir.Op, r *rewrite.Rewriter) bool {
			b := r.Builder()
			attrs := op.Data.(ir.MemAttrs)
			ptr := resolver.ElementPtr(b, r.Adapted(op.Inputs[0]), r.AdaptedAll(op.Inputs[1:]))
			coopType := convert(op.Output.Type().(ir.MatrixType))
			stride := b.Constant(dtypes.Int32, attrs.LeadDimension)
			columnMajor := b.Constant(dtypes.Bool, attrs.Transpose)
			r.ReplaceOp(op, b.CoopMatLoad(coopType, ptr, stride, columnMajor))
			return true
		},
	}
}

// storePattern lowers MMAStore symmetrically to loadPattern. The op has no
// result, so it is erased rather than replaced.
func storePattern(resolver AddressResolver) rewrite.Pattern {
	return rewrite.Pattern{
		Name:   "StoreToCoopMatStore",
		OpType: ir.OpTypeMMAStore,
		MatchAndRewrite: func(op *ir.Op, r *rewrite.Rewriter) bool {
			b := r.Builder()
			attrs := op.Data.(ir.MemAttrs)
			src := r.Adapted(op.Inputs[0])
			ptr := resolver.ElementPtr(b, r.Adapted(op.Inputs[1]), r.AdaptedAll(op.Inputs[2:]))
			stride := b.Constant(dtypes.Int32, attrs.LeadDimension)
			columnMajor := b.Constant(dtypes.Bool, attrs.Transpose)
			b.CoopMatStore(ptr, src, stride, columnMajor)
			r.EraseOp(op)
			return true
		},
	}
}

// computePattern lowers MMACompute 1:1 to the fused multiply-accumulate; the
// result takes the adapted accumulator's type.
func computePattern() rewrite.Pattern {
	return rewrite.Pattern{
		Name:   "ComputeToCoopMatMulAdd",
		OpType: ir.OpTypeMMACompute,
		MatchAndRewrite: func(op *ir.Op, r *rewrite.Rewriter) bool {
			adapted := r.AdaptedAll(op.Inputs)
			r.ReplaceOp(op, r.Builder().CoopMatMulAdd(adapted[0], adapted[1], adapted[2]))
			return true
		},
	}
}

// constantPattern lowers MMAConstant to a composite construct wrapping the
// single scalar constituent, splat over the converted matrix type.
func constantPattern(convert TypeConverter) rewrite.Pattern {
	return rewrite.Pattern{
		Name:   "ConstantToCompositeConstruct",
		OpType: ir.OpTypeMMAConstant,
		MatchAndRewrite: func(op *ir.Op, r *rewrite.Rewriter) bool {
			coopType := convert(op.Output.Type().(ir.MatrixType))
			r.ReplaceOp(op, r.Builder().CompositeConstruct(coopType, r.Adapted(op.Inputs[0])))
			return true
		},
	}
}

// elementwiseTargets maps the elementwise opcodes to their target
// instructions. MulF is deliberately absent: matrix-times-matrix elementwise
// multiply has no target instruction, only the scalar-multiply
// specialization handles MulF.
var elementwiseTargets = map[ir.ElementwiseOp]ir.OpType{
	ir.ElementwiseAddF:    ir.OpTypeFAdd,
	ir.ElementwiseAddI:    ir.OpTypeIAdd,
	ir.ElementwiseSubF:    ir.OpTypeFSub,
	ir.ElementwiseSubI:    ir.OpTypeISub,
	ir.ElementwiseDivF:    ir.OpTypeFDiv,
	ir.ElementwiseDivS:    ir.OpTypeSDiv,
	ir.ElementwiseDivU:    ir.OpTypeUDiv,
	ir.ElementwiseNegateF: ir.OpTypeFNegate,
	ir.ElementwiseNegateS: ir.OpTypeSNegate,
	ir.ElementwiseExtF:    ir.OpTypeFConvert,
}

// elementwiseDefaultPattern lowers MMAElementwise for the opcodes with a
// direct target instruction, keeping the operand order. It declines when any
// adapted operand is not yet a cooperative matrix or when the opcode has no
// entry in the table.
func elementwiseDefaultPattern(convert TypeConverter) rewrite.Pattern {
	return rewrite.Pattern{
		Name:   "ElementwiseDefault",
		OpType: ir.OpTypeMMAElementwise,
		MatchAndRewrite: func(op *ir.Op, r *rewrite.Rewriter) bool {
			adapted := r.AdaptedAll(op.Inputs)
			for _, operand := range adapted {
				if _, ok := operand.Type().(ir.CoopMatrixType); !ok {
					return false
				}
			}
			target, ok := elementwiseTargets[op.Data.(ir.ElementwiseOp)]
			if !ok {
				return false
			}
			coopType := convert(op.Output.Type().(ir.MatrixType))
			r.ReplaceOp(op, r.Builder().Emit(target, coopType, adapted...))
			return true
		},
	}
}

// scalarMultiplyPattern lowers MulF when exactly one side is a splat: it
// recovers the scalar from the splat's composite construct and emits a
// single MatrixTimesScalar over (matrix, scalar), whichever side the splat
// was on. Registered at ScalarMultiplyBenefit so it is offered before
// elementwiseDefaultPattern.
func scalarMultiplyPattern(convert TypeConverter) rewrite.Pattern {
	return rewrite.Pattern{
		Name:    "ElementwiseScalarMultiply",
		OpType:  ir.OpTypeMMAElementwise,
		Benefit: ScalarMultiplyBenefit,
		MatchAndRewrite: func(op *ir.Op, r *rewrite.Rewriter) bool {
			if len(op.Inputs) != 2 {
				return false
			}
			adapted := r.AdaptedAll(op.Inputs)
			for _, operand := range adapted {
				if _, ok := operand.Type().(ir.CoopMatrixType); !ok {
					return false
				}
			}
			if op.Data.(ir.ElementwiseOp) != ir.ElementwiseMulF {
				return false
			}

			// The original operands tell which side was the splat; the
			// adapted ones carry its lowered form.
			var splat, matrix *ir.Value
			if isSplat(op.Inputs[0]) {
				splat, matrix = adapted[0], adapted[1]
			} else if isSplat(op.Inputs[1]) {
				matrix, splat = adapted[0], adapted[1]
			}
			if splat == nil {
				return false
			}

			// A lowered splat is a composite construct wrapping exactly the
			// scalar. Anything else means the driver offered this op before
			// its operand's lowering completed, which the visit order rules
			// out.
			cc := splat.DefiningOp()
			if cc == nil || cc.OpType != ir.OpTypeCompositeConstruct || len(cc.Inputs) != 1 {
				exceptions.Panicf("splat operand %s of %s was not lowered to a single-constituent composite construct", splat, op)
			}
			scalar := cc.Inputs[0]

			coopType := convert(op.Output.Type().(ir.MatrixType))
			r.ReplaceOp(op, r.Builder().MatrixTimesScalar(coopType, matrix, scalar))
			return true
		},
	}
}

func isSplat(v *ir.Value) bool {
	def := v.DefiningOp()
	return def != nil && def.OpType == ir.OpTypeMMAConstant
}
