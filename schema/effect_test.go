package schema

import (
	"errors"
	"testing"
)

func TestRefineRunsPredicateAfterInner(t *testing.T) {
	positive := Refine(Number(), func(v any) error {
		if v.(int64) <= 0 {
			return errors.New("must be positive")
		}
		return nil
	})
	if _, err := positive.Validate(int64(5)); err != nil {
		t.Errorf("Refine.Validate(5) = %v", err)
	}
	if _, err := positive.Validate(int64(-1)); err == nil {
		t.Errorf("Refine.Validate(-1) = nil, want a fault")
	}
	if _, err := positive.Validate("not a number"); err == nil {
		t.Errorf("Refine.Validate over a mismatched inner type = nil, want a fault")
	}
}

func TestPreprocessRunsBeforeInner(t *testing.T) {
	trim := Preprocess(String(), func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("not a string")
		}
		return s + "!", nil
	})
	got, err := trim.Validate("hi")
	if err != nil {
		t.Fatal(err)
	}
	if got.(string) != "hi!" {
		t.Errorf("Preprocess.Validate = %v, want hi!", got)
	}
}

func TestTransformValidateBypassesFn(t *testing.T) {
	upper := Transform(String(), func(v any) (any, error) {
		return "SHOULD-NOT-APPEAR", nil
	})
	got, err := upper.Validate("hi")
	if err != nil {
		t.Fatal(err)
	}
	if got.(string) != "hi" {
		t.Errorf("Transform.Validate = %v, want the pre-transform value hi unchanged", got)
	}
	tn := upper.(interface {
		Apply(v any) (any, error)
	})
	applied, err := tn.Apply("hi")
	if err != nil || applied.(string) != "SHOULD-NOT-APPEAR" {
		t.Errorf("Transform.Apply = %v, %v", applied, err)
	}
}
