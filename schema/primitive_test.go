package schema

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"

	sw "github.com/reoring/skemawire"
)

func TestStringValidate(t *testing.T) {
	if _, err := String().Validate("hello"); err != nil {
		t.Errorf("String().Validate(string) = %v, want nil", err)
	}
	if _, err := String().Validate(42); err == nil {
		t.Errorf("String().Validate(int) = nil, want a fault")
	}
}

func TestNumberNarrowsIntToInt64(t *testing.T) {
	got, err := Number().Validate(7)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(int64); !ok {
		t.Errorf("Number().Validate(int) = %T, want int64", got)
	}
	if _, err := Number().Validate(3.14); err != nil {
		t.Errorf("Number().Validate(float64) = %v, want nil", err)
	}
	if _, err := Number().Validate("nope"); err == nil {
		t.Errorf("Number().Validate(string) = nil, want a fault")
	}
}

func TestBigIntNormalizes(t *testing.T) {
	got, err := BigInt().Validate(int64(9000))
	if err != nil {
		t.Fatal(err)
	}
	bi, ok := got.(*big.Int)
	if !ok || bi.Cmp(big.NewInt(9000)) != 0 {
		t.Errorf("BigInt().Validate(int64) = %#v, want *big.Int(9000)", got)
	}
	if _, err := BigInt().Validate(big.NewInt(1)); err != nil {
		t.Errorf("BigInt().Validate(*big.Int) = %v, want nil", err)
	}
}

func TestBooleanAndDate(t *testing.T) {
	if _, err := Boolean().Validate(true); err != nil {
		t.Errorf("Boolean().Validate(true) = %v", err)
	}
	if _, err := Boolean().Validate("true"); err == nil {
		t.Errorf("Boolean().Validate(string) = nil, want a fault")
	}
	if _, err := Date().Validate(time.Now()); err != nil {
		t.Errorf("Date().Validate(time.Time) = %v", err)
	}
	if _, err := Date().Validate("2026-01-01"); err == nil {
		t.Errorf("Date().Validate(string) = nil, want a fault")
	}
}

func TestNaNOnlyAcceptsNaN(t *testing.T) {
	if _, err := NaN().Validate(math.NaN()); err != nil {
		t.Errorf("NaN().Validate(NaN) = %v", err)
	}
	if _, err := NaN().Validate(1.0); err == nil {
		t.Errorf("NaN().Validate(1.0) = nil, want a fault")
	}
}

func TestLiteralMatchesExactValue(t *testing.T) {
	l := Literal("draft")
	if _, err := l.Validate("draft"); err != nil {
		t.Errorf("Literal.Validate(matching) = %v", err)
	}
	if _, err := l.Validate("published"); err == nil {
		t.Errorf("Literal.Validate(mismatch) = nil, want a fault")
	}
}

func TestEnumRejectsNonMember(t *testing.T) {
	e := Enum(sw.KindString, "draft", "published")
	if _, err := e.Validate("draft"); err != nil {
		t.Errorf("Enum.Validate(member) = %v", err)
	}
	if _, err := e.Validate("archived"); err == nil {
		t.Errorf("Enum.Validate(non-member) = nil, want a fault")
	}

	numeric := Enum(sw.KindNumber, 1.0, 2.0)
	if _, err := numeric.Validate(1.0); err != nil {
		t.Errorf("Enum.Validate(numeric member) = %v", err)
	}
	if _, err := numeric.Validate(3.0); err == nil {
		t.Errorf("Enum.Validate(numeric non-member) = nil, want a fault")
	}
}

func TestUUIDAcceptsBothForms(t *testing.T) {
	id := uuid.New()
	got, err := UUID().Validate(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.(uuid.UUID) != id {
		t.Errorf("UUID().Validate(uuid.UUID) = %v, want %v", got, id)
	}
	got2, err := UUID().Validate(id.String())
	if err != nil {
		t.Fatal(err)
	}
	if got2.(uuid.UUID) != id {
		t.Errorf("UUID().Validate(string) = %v, want %v", got2, id)
	}
	if _, err := UUID().Validate("not-a-uuid"); err == nil {
		t.Errorf("UUID().Validate(garbage) = nil, want a fault")
	}
}
