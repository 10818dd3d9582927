package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/listkata/pkg/rop"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	positive := func(in int) (bool, string) { return in > 0, "not positive" }

	if r := Validate(3, positive); !r.IsSuccess() || r.Result() != 3 {
		t.Fatalf("expected success with 3, got: %v", r.Err())
	}
	if r := Validate(-3, positive); r.IsSuccess() || r.Err().Error() != "not positive" {
		t.Fatalf("expected 'not positive', got: %v", r.Err())
	}
}

func TestAndValidate_SkipsFailure(t *testing.T) {
	t.Parallel()

	called := false
	r := AndValidate(Fail[int](errors.New("boom")), func(int) (bool, string) {
		called = true
		return true, ""
	})
	if called || r.Err().Error() != "boom" {
		t.Fatalf("validation should not run on failure, got: called=%v err=%v", called, r.Err())
	}
}

func TestSwitchAndMap(t *testing.T) {
	t.Parallel()

	r := Map(Succeed(2), func(in int) string { return strconv.Itoa(in * 2) })
	if !r.IsSuccess() || r.Result() != "4" {
		t.Fatalf("expected \"4\", got: %v %v", r.Result(), r.Err())
	}

	s := Switch(Succeed("x"), func(in string) rop.Result[int] { return Fail[int](errors.New(in)) })
	if s.IsSuccess() || s.Err().Error() != "x" {
		t.Fatalf("expected failure x, got: %v", s.Err())
	}

	failed := Fail[int](errors.New("boom"))
	m := Map(failed, func(in int) string { t.Fatalf("map should not run"); return "" })
	if m.Id() != failed.Id() || m.Err().Error() != "boom" {
		t.Fatalf("expected failure to pass through, got: %v", m.Err())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()

	ok := Try(Succeed("12"), strconv.Atoi)
	if !ok.IsSuccess() || ok.Result() != 12 {
		t.Fatalf("expected 12, got: %v", ok.Err())
	}

	bad := Try(Succeed("x"), strconv.Atoi)
	var numErr *strconv.NumError
	if bad.IsSuccess() || !errors.As(bad.Err(), &numErr) {
		t.Fatalf("expected NumError, got: %v", bad.Err())
	}
}

func TestFinallyAndOrElse(t *testing.T) {
	t.Parallel()

	msg := Finally(Fail[int](errors.New("boom")),
		func(r int) string { return "ok" },
		func(err error) string { return "err: " + err.Error() })
	if msg != "err: boom" {
		t.Fatalf("unexpected %q", msg)
	}

	if v := OrElse(Succeed(7), 0); v != 7 {
		t.Fatalf("expected 7, got %d", v)
	}
	if v := OrElse(Fail[int](errors.New("boom")), -1); v != -1 {
		t.Fatalf("expected fallback -1, got %d", v)
	}
	if v := OrElse(rop.Result[int]{}, -1); v != -1 {
		t.Fatalf("expected fallback for empty result, got %d", v)
	}
}
