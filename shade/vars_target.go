package shade

import "github.com/gogpu/shade/ir"

// AssignTarget is satisfied by every concrete Var type (and by array
// elements obtained from VarArray.At): anything a Scope.Set call can
// assign into.
type AssignTarget interface {
	assignTarget() ir.ErasedExpr
}

func (v VarInt) assignTarget() ir.ErasedExpr     { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarIntV2) assignTarget() ir.ErasedExpr   { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarIntV3) assignTarget() ir.ErasedExpr   { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarIntV4) assignTarget() ir.ErasedExpr   { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarUInt) assignTarget() ir.ErasedExpr    { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarUIntV2) assignTarget() ir.ErasedExpr  { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarUIntV3) assignTarget() ir.ErasedExpr  { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarUIntV4) assignTarget() ir.ErasedExpr  { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarFloat) assignTarget() ir.ErasedExpr   { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarFloatV2) assignTarget() ir.ErasedExpr { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarFloatV3) assignTarget() ir.ErasedExpr { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarFloatV4) assignTarget() ir.ErasedExpr { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarBool) assignTarget() ir.ErasedExpr    { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarBoolV2) assignTarget() ir.ErasedExpr  { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarBoolV3) assignTarget() ir.ErasedExpr  { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
func (v VarBoolV4) assignTarget() ir.ErasedExpr  { return ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}} }
