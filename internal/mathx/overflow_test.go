package mathx

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	if sum, ok := Add(10, 5); !ok || sum != 15 {
		t.Fatalf("Add(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := Add(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := Add(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMul(t *testing.T) {
	if got, ok := Mul(1000, 16); !ok || got != 16000 {
		t.Fatalf("Mul(1000,16)=%d,%v want 16000,true", got, ok)
	}
	if got, ok := Mul(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("Mul by zero should never overflow, got %d,%v", got, ok)
	}
	if _, ok := Mul(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow on MaxInt/2+1 * 2")
	}
	if _, ok := Mul(math.MaxInt, math.MaxInt); ok {
		t.Fatalf("expected overflow on MaxInt * MaxInt")
	}
	if got, ok := Mul(-4, 8); !ok || got != -32 {
		t.Fatalf("Mul(-4,8)=%d,%v want -32,true", got, ok)
	}
	if _, ok := Mul(math.MinInt, -1); ok {
		t.Fatalf("expected overflow on MinInt * -1")
	}
}
