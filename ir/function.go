package ir

// ErasedFun is the erased form of a function body: its parameter types in
// order, the root scope of its body (always id 0), and its terminal
// return shape.
type ErasedFun struct {
	Args  []Type
	Scope ErasedScope
	Ret   ErasedReturn
}
