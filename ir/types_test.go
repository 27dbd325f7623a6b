package ir

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"scalar int", NewScalar(PrimInt), "int"},
		{"vec4 float", NewVector(PrimFloat, D4), "float4"},
		{"array of scalar", ArrayOf(NewScalar(PrimInt), 3), "int[3]"},
		{"nested array", ArrayOf(ArrayOf(NewScalar(PrimInt), 2), 3), "int[3][2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArrayOfDims(t *testing.T) {
	got := ArrayOf(ArrayOf(NewScalar(PrimInt), 2), 3)
	want := []uint32{3, 2}
	if len(got.ArrayDims) != len(want) {
		t.Fatalf("ArrayDims = %v, want %v", got.ArrayDims, want)
	}
	for i := range want {
		if got.ArrayDims[i] != want[i] {
			t.Errorf("ArrayDims[%d] = %d, want %d", i, got.ArrayDims[i], want[i])
		}
	}
}

func TestTypeEqual(t *testing.T) {
	a := NewVector(PrimFloat, D3)
	b := NewVector(PrimFloat, D3)
	c := NewVector(PrimFloat, D4)
	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %v to not equal %v", a, c)
	}
}

func TestElem(t *testing.T) {
	arr := ArrayOf(NewScalar(PrimInt), 4)
	elem := arr.Elem()
	if elem.IsArray() {
		t.Errorf("expected scalar element, got array %v", elem)
	}
	if !elem.Equal(NewScalar(PrimInt)) {
		t.Errorf("Elem() = %v, want int scalar", elem)
	}
}
