package field

import (
	"bytes"
	"testing"
)

func TestTabulatedMatchesDirect(t *testing.T) {
	direct := Direct{}
	table := Tables()

	for f := 0; f < 256; f++ {
		for g := 0; g < 256; g++ {
			want := direct.Mul(byte(f), byte(g))
			if got := table.Mul(byte(f), byte(g)); got != want {
				t.Fatalf("Mul(%#02x, %#02x): table %#02x, direct %#02x", f, g, got, want)
			}
		}
		if got, want := table.Inv(byte(f)), direct.Inv(byte(f)); got != want {
			t.Fatalf("Inv(%#02x): table %#02x, direct %#02x", f, got, want)
		}
	}
}

func TestGeneratedInverseTableIsCurrent(t *testing.T) {
	if InverseTable() != ComputeInverseTable() {
		t.Error("tables_gen.go is stale, run go generate ./field")
	}
}

func TestInverse(t *testing.T) {
	direct := Direct{}

	if direct.Inv(0) != 0 {
		t.Error("zero should map to zero", direct.Inv(0))
	}

	for f := 1; f < 256; f++ {
		x := direct.Inv(byte(f))
		if direct.Mul(byte(f), x) != 1 {
			t.Errorf("%#02x * %#02x != 1", f, x)
		}
	}
}

func TestInverseIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range InverseTable() {
		if seen[v] {
			t.Fatalf("inverse %#02x produced twice", v)
		}
		seen[v] = true
	}
}

func TestKnownProducts(t *testing.T) {
	direct := Direct{}

	vectors := []struct {
		f, g, want byte
	}{
		{0x00, 0x53, 0x00},
		{0x01, 0x53, 0x53},
		{0x80, 0x02, Modulus},
		{0x02, 0x80, Modulus},
		{0x57, 0x83, 0x9d},
		{0x02, 0xb8, 0x01},
	}

	for _, v := range vectors {
		if got := direct.Mul(v.f, v.g); got != v.want {
			t.Errorf("Mul(%#02x, %#02x) = %#02x, expected %#02x", v.f, v.g, got, v.want)
		}
	}
}

func TestMulIsCommutative(t *testing.T) {
	table := Tables()
	for f := 0; f < 256; f++ {
		for g := f; g < 256; g++ {
			if table.Mul(byte(f), byte(g)) != table.Mul(byte(g), byte(f)) {
				t.Fatalf("Mul(%#02x, %#02x) is not commutative", f, g)
			}
		}
	}
}

func TestAddSubVectorWorksAsExpectedInTheField(t *testing.T) {
	A := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	B := []byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

	sum := make([]byte, len(A))
	AddVec(sum, B, A)
	result := make([]byte, len(A))
	AddVec(result, A, sum) // A + B + A = B

	if !bytes.Equal(B, result) {
		t.Error("Addition and subtraction failed")
	}

	for i := range A {
		if Sub(Add(A[i], B[i]), B[i]) != A[i] {
			t.Error("Sub does not undo Add", A[i], B[i])
		}
	}
}
