// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package lower

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"

	"github.com/gomlx/coopmat/ir"
	"github.com/gomlx/coopmat/rewrite"
)

func init() {
	klog.InitFlags(nil)
}

// patterns returns a fresh pattern set with the six rules at the default
// configuration.
func patterns() *rewrite.PatternSet {
	var ps rewrite.PatternSet
	Populate(ConvertMatrixType, StridedResolver{}, &ps)
	return &ps
}

func opsOfType(fn *ir.Func, opType ir.OpType) []*ir.Op {
	var ops []*ir.Op
	for _, op := range fn.Ops() {
		if op.OpType == opType {
			ops = append(ops, op)
		}
	}
	return ops
}

func requireNoAbstractOps(t *testing.T, fn *ir.Func) {
	t.Helper()
	for _, op := range fn.Ops() {
		require.False(t, op.OpType.IsMMA(), "abstract op %s survived lowering:\n%s", op, fn)
	}
}

func constantOf(t *testing.T, v *ir.Value) any {
	t.Helper()
	def := v.DefiningOp()
	require.NotNil(t, def)
	require.Equal(t, ir.OpTypeConstant, def.OpType)
	return def.ConstantValue()
}

func TestConvertMatrixType(t *testing.T) {
	for _, role := range []ir.Role{ir.RoleA, ir.RoleB, ir.RoleAccumulator} {
		got := ConvertMatrixType(ir.MakeMatrix(dtypes.Float32, 16, 16, role))
		require.Equal(t, ir.CoopMatrixType{DType: dtypes.Float32, Scope: ir.ScopeSubgroup, Rows: 16, Cols: 16}, got)
	}
	// Rows, cols and element type carry over exactly.
	got := ConvertMatrixType(ir.MakeMatrix(dtypes.Float16, 8, 32, ir.RoleB))
	require.Equal(t, ir.CoopMatrixType{DType: dtypes.Float16, Scope: ir.ScopeSubgroup, Rows: 8, Cols: 32}, got)
	// Deterministic.
	require.Equal(t, got, ConvertMatrixType(ir.MakeMatrix(dtypes.Float16, 8, 32, ir.RoleB)))
}

func TestLoadLowering(t *testing.T) {
	b := ir.NewBuilder("load")
	memref := b.Parameter("src", ir.MakeMemRef(dtypes.Float32, 16, 16))
	i0 := b.Constant(dtypes.Int32, 0)
	matType := ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleA)
	must.M1(b.MMALoad(matType, memref, []*ir.Value{i0, i0}, 16, false))

	fn := b.Func()
	require.NoError(t, rewrite.Apply(fn, patterns()))
	requireNoAbstractOps(t, fn)

	loads := opsOfType(fn, ir.OpTypeCoopMatLoad)
	require.Len(t, loads, 1)
	load := loads[0]
	require.Equal(t, ir.CoopMatrixType{DType: dtypes.Float32, Scope: ir.ScopeSubgroup, Rows: 16, Cols: 16},
		load.Output.Type())
	require.Equal(t, ir.PointerType{DType: dtypes.Float32}, load.Inputs[0].Type())
	require.Equal(t, int32(16), constantOf(t, load.Inputs[1]))
	require.Equal(t, false, constantOf(t, load.Inputs[2]))
}

func TestLoadStoreRoundTrip(t *testing.T) {
	for _, transpose := range []bool{false, true} {
		b := ir.NewBuilder("roundtrip")
		memref := b.Parameter("buf", ir.MakeMemRef(dtypes.Float32, 32, 32))
		i0 := b.Constant(dtypes.Int32, 0)
		matType := ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleAccumulator)
		mat := must.M1(b.MMALoad(matType, memref, []*ir.Value{i0, i0}, 32, transpose))
		must.M1(b.MMAStore(mat, memref, []*ir.Value{i0, i0}, 32, transpose))

		fn := b.Func()
		require.NoError(t, rewrite.Apply(fn, patterns()))
		requireNoAbstractOps(t, fn)

		loads := opsOfType(fn, ir.OpTypeCoopMatLoad)
		stores := opsOfType(fn, ir.OpTypeCoopMatStore)
		require.Len(t, loads, 1)
		require.Len(t, stores, 1)

		// The layout flag is a direct, unnegated copy of the transpose
		// attribute on both sides, and the strides agree.
		require.Equal(t, transpose, constantOf(t, loads[0].Inputs[2]))
		require.Equal(t, transpose, constantOf(t, stores[0].Inputs[3]))
		require.Equal(t, int32(32), constantOf(t, loads[0].Inputs[1]))
		require.Equal(t, int32(32), constantOf(t, stores[0].Inputs[2]))

		// The store writes the loaded matrix.
		require.Equal(t, loads[0].Output, stores[0].Inputs[1])
	}
}

func TestComputeLowering(t *testing.T) {
	b := ir.NewBuilder("matmul")
	lhs := b.Parameter("lhs", ir.MakeMemRef(dtypes.Float32, 32, 32))
	rhs := b.Parameter("rhs", ir.MakeMemRef(dtypes.Float32, 32, 32))
	out := b.Parameter("out", ir.MakeMemRef(dtypes.Float32, 32, 32))
	i0 := b.Constant(dtypes.Int32, 0)
	idx := []*ir.Value{i0, i0}
	a := must.M1(b.MMALoad(ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleA), lhs, idx, 32, false))
	bm := must.M1(b.MMALoad(ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleB), rhs, idx, 32, false))
	c := must.M1(b.MMALoad(ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleAccumulator), out, idx, 32, false))
	d := must.M1(b.MMACompute(a, bm, c))
	must.M1(b.MMAStore(d, out, idx, 32, false))

	fn := b.Func()
	require.NoError(t, rewrite.Apply(fn, patterns()))
	requireNoAbstractOps(t, fn)

	loads := opsOfType(fn, ir.OpTypeCoopMatLoad)
	require.Len(t, loads, 3)
	mulAdds := opsOfType(fn, ir.OpTypeCoopMatMulAdd)
	require.Len(t, mulAdds, 1)
	mulAdd := mulAdds[0]

	// Operand order (A, B, C) is preserved and the result takes the adapted
	// accumulator's type.
	require.Equal(t, loads[0].Output, mulAdd.Inputs[0])
	require.Equal(t, loads[1].Output, mulAdd.Inputs[1])
	require.Equal(t, loads[2].Output, mulAdd.Inputs[2])
	require.Equal(t, loads[2].Output.Type(), mulAdd.Output.Type())

	stores := opsOfType(fn, ir.OpTypeCoopMatStore)
	require.Len(t, stores, 1)
	require.Equal(t, mulAdd.Output, stores[0].Inputs[1])
}

func TestConstantSplatLowering(t *testing.T) {
	b := ir.NewBuilder("splat")
	out := b.Parameter("out", ir.MakeMemRef(dtypes.Float32, 16, 16))
	i0 := b.Constant(dtypes.Int32, 0)
	k := b.Constant(dtypes.Float32, 3.5)
	matType := ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleAccumulator)
	splat := must.M1(b.MMAConstant(matType, k))
	must.M1(b.MMAStore(splat, out, []*ir.Value{i0, i0}, 16, false))

	fn := b.Func()
	require.NoError(t, rewrite.Apply(fn, patterns()))
	requireNoAbstractOps(t, fn)

	ccs := opsOfType(fn, ir.OpTypeCompositeConstruct)
	require.Len(t, ccs, 1)
	cc := ccs[0]
	require.Len(t, cc.Inputs, 1)
	require.Equal(t, k, cc.Inputs[0])
	require.Equal(t, ConvertMatrixType(matType), cc.Output.Type())

	stores := opsOfType(fn, ir.OpTypeCoopMatStore)
	require.Len(t, stores, 1)
	require.Equal(t, cc.Output, stores[0].Inputs[1])
}

// binaryElementwiseFunc builds two loads feeding one binary elementwise op.
func binaryElementwiseFunc(t *testing.T, dtype dtypes.DType, opcode ir.ElementwiseOp) *ir.Func {
	t.Helper()
	b := ir.NewBuilder("elementwise")
	memref := b.Parameter("buf", ir.MakeMemRef(dtype, 16, 16))
	i0 := b.Constant(dtypes.Int32, 0)
	idx := []*ir.Value{i0, i0}
	matType := ir.MakeMatrix(dtype, 16, 16, ir.RoleAccumulator)
	x := must.M1(b.MMALoad(matType, memref, idx, 16, false))
	y := must.M1(b.MMALoad(matType, memref, idx, 16, false))
	must.M1(b.MMAElementwise(matType, opcode, x, y))
	return b.Func()
}

func TestElementwiseDefaultTable(t *testing.T) {
	binary := []struct {
		opcode ir.ElementwiseOp
		dtype  dtypes.DType
		target ir.OpType
	}{
		{ir.ElementwiseAddF, dtypes.Float32, ir.OpTypeFAdd},
		{ir.ElementwiseAddI, dtypes.Int32, ir.OpTypeIAdd},
		{ir.ElementwiseSubF, dtypes.Float32, ir.OpTypeFSub},
		{ir.ElementwiseSubI, dtypes.Int32, ir.OpTypeISub},
		{ir.ElementwiseDivF, dtypes.Float32, ir.OpTypeFDiv},
		{ir.ElementwiseDivS, dtypes.Int32, ir.OpTypeSDiv},
		{ir.ElementwiseDivU, dtypes.Uint32, ir.OpTypeUDiv},
	}
	for _, testCase := range binary {
		t.Run(testCase.opcode.String(), func(t *testing.T) {
			fn := binaryElementwiseFunc(t, testCase.dtype, testCase.opcode)
			require.NoError(t, rewrite.Apply(fn, patterns()))
			requireNoAbstractOps(t, fn)

			emitted := opsOfType(fn, testCase.target)
			require.Len(t, emitted, 1)
			loads := opsOfType(fn, ir.OpTypeCoopMatLoad)
			require.Len(t, loads, 2)
			// Operand order preserved.
			require.Equal(t, loads[0].Output, emitted[0].Inputs[0])
			require.Equal(t, loads[1].Output, emitted[0].Inputs[1])
			require.Equal(t, ir.CoopMatrixType{DType: testCase.dtype, Scope: ir.ScopeSubgroup, Rows: 16, Cols: 16},
				emitted[0].Output.Type())
		})
	}
}

func TestElementwiseUnary(t *testing.T) {
	unary := []struct {
		opcode            ir.ElementwiseOp
		inDType, outDType dtypes.DType
		target            ir.OpType
	}{
		{ir.ElementwiseNegateF, dtypes.Float32, dtypes.Float32, ir.OpTypeFNegate},
		{ir.ElementwiseNegateS, dtypes.Int32, dtypes.Int32, ir.OpTypeSNegate},
		{ir.ElementwiseExtF, dtypes.Float16, dtypes.Float32, ir.OpTypeFConvert},
	}
	for _, testCase := range unary {
		t.Run(testCase.opcode.String(), func(t *testing.T) {
			b := ir.NewBuilder("unary")
			memref := b.Parameter("buf", ir.MakeMemRef(testCase.inDType, 16, 16))
			i0 := b.Constant(dtypes.Int32, 0)
			x := must.M1(b.MMALoad(ir.MakeMatrix(testCase.inDType, 16, 16, ir.RoleAccumulator),
				memref, []*ir.Value{i0, i0}, 16, false))
			must.M1(b.MMAElementwise(ir.MakeMatrix(testCase.outDType, 16, 16, ir.RoleAccumulator),
				testCase.opcode, x))

			fn := b.Func()
			require.NoError(t, rewrite.Apply(fn, patterns()))
			requireNoAbstractOps(t, fn)

			emitted := opsOfType(fn, testCase.target)
			require.Len(t, emitted, 1)
			require.Len(t, emitted[0].Inputs, 1)
			require.Equal(t, ir.CoopMatrixType{DType: testCase.outDType, Scope: ir.ScopeSubgroup, Rows: 16, Cols: 16},
				emitted[0].Output.Type())
		})
	}
}

// mulFFunc builds Load(X) and ConstantSplat(3.5) feeding MulF, with the splat
// on the given side. Returns the function and the 3.5 scalar.
func mulFFunc(t *testing.T, splatFirst bool) (*ir.Func, *ir.Value) {
	t.Helper()
	b := ir.NewBuilder("mulf")
	memref := b.Parameter("buf", ir.MakeMemRef(dtypes.Float32, 16, 16))
	i0 := b.Constant(dtypes.Int32, 0)
	matType := ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleAccumulator)
	x := must.M1(b.MMALoad(matType, memref, []*ir.Value{i0, i0}, 16, false))
	k := b.Constant(dtypes.Float32, 3.5)
	splat := must.M1(b.MMAConstant(matType, k))
	if splatFirst {
		must.M1(b.MMAElementwise(matType, ir.ElementwiseMulF, splat, x))
	} else {
		must.M1(b.MMAElementwise(matType, ir.ElementwiseMulF, x, splat))
	}
	return b.Func(), k
}

func TestScalarMultiply(t *testing.T) {
	for _, splatFirst := range []bool{true, false} {
		fn, k := mulFFunc(t, splatFirst)
		require.NoError(t, rewrite.Apply(fn, patterns()))
		requireNoAbstractOps(t, fn)

		// One composite construct wrapping 3.5 and one matrix-times-scalar
		// over (X, 3.5) -- never a full elementwise multiply.
		ccs := opsOfType(fn, ir.OpTypeCompositeConstruct)
		require.Len(t, ccs, 1)
		require.Equal(t, float32(3.5), constantOf(t, ccs[0].Inputs[0]))

		mts := opsOfType(fn, ir.OpTypeMatrixTimesScalar)
		require.Len(t, mts, 1)
		loads := opsOfType(fn, ir.OpTypeCoopMatLoad)
		require.Len(t, loads, 1)
		// The matrix side is always operand 0 and the recovered scalar
		// operand 1, regardless of which side the splat was on.
		require.Equal(t, loads[0].Output, mts[0].Inputs[0])
		require.Equal(t, k, mts[0].Inputs[1])
		require.Equal(t, ir.CoopMatrixType{DType: dtypes.Float32, Scope: ir.ScopeSubgroup, Rows: 16, Cols: 16},
			mts[0].Output.Type())
	}
}

func TestMulFWithoutSplatFails(t *testing.T) {
	b := ir.NewBuilder("mulf-nosplat")
	memref := b.Parameter("buf", ir.MakeMemRef(dtypes.Float32, 16, 16))
	i0 := b.Constant(dtypes.Int32, 0)
	matType := ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleAccumulator)
	x := must.M1(b.MMALoad(matType, memref, []*ir.Value{i0, i0}, 16, false))
	y := must.M1(b.MMALoad(matType, memref, []*ir.Value{i0, i0}, 16, false))
	must.M1(b.MMAElementwise(matType, ir.ElementwiseMulF, x, y))

	fn := b.Func()
	err := rewrite.Apply(fn, patterns())
	// Matrix-times-matrix elementwise multiply is unsupported: the
	// scalar-multiply rule declines and the default rule excludes MulF.
	require.ErrorContains(t, err, "no lowering pattern matched")
	require.Empty(t, opsOfType(fn, ir.OpTypeMatrixTimesScalar))
}

func TestElementwiseDeclinesUnloweredOperand(t *testing.T) {
	// A matrix that is not the result of a prior lowering (here a raw
	// function parameter) never becomes target-typed, so the elementwise
	// rules decline and the lowering fails.
	b := ir.NewBuilder("raw-operand")
	matType := ir.MakeMatrix(dtypes.Float32, 16, 16, ir.RoleAccumulator)
	x := b.Parameter("x", matType)
	must.M1(b.MMAElementwise(matType, ir.ElementwiseNegateF, x))

	fn := b.Func()
	err := rewrite.Apply(fn, patterns())
	require.ErrorContains(t, err, "no lowering pattern matched")
}
