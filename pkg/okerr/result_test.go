package okerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk_Accessors(t *testing.T) {
	t.Parallel()
	r := Ok[int, error](5)

	if !r.IsOk() || r.IsErr() {
		t.Fatalf("expected ok branch, got: ok=%v err=%v", r.IsOk(), r.IsErr())
	}
	if r.Value() != 5 {
		t.Fatalf("expected 5, got %d", r.Value())
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error payload, got %v", r.Err())
	}
	if got := r.UnwrapOrNil(); got == nil || *got != 5 {
		t.Fatalf("expected pointer to 5, got %v", got)
	}
	assert.Equal(t, 5, r.UnwrapOr(0))
	assert.Equal(t, 5, r.MustUnwrap())

	v, err := r.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestOkVoid(t *testing.T) {
	t.Parallel()
	r := OkVoid[error]()

	assert.True(t, r.IsOk())
	assert.Equal(t, Void{}, r.Value())
}

func TestErr_Accessors(t *testing.T) {
	t.Parallel()
	e := errors.New("boom")
	r := Err[int](e)

	if r.IsOk() || !r.IsErr() {
		t.Fatalf("expected err branch, got: ok=%v err=%v", r.IsOk(), r.IsErr())
	}
	if r.Err() != e {
		t.Fatalf("expected the same error instance, got %v", r.Err())
	}
	assert.Nil(t, r.UnwrapOrNil())
	assert.Equal(t, 7, r.UnwrapOr(7))
	assert.Equal(t, 0, r.Value())
}

func TestErr_UnwrapKeepsErrorIdentity(t *testing.T) {
	t.Parallel()
	e := errors.New("boom")

	_, err := Err[int](e).Unwrap()
	if err != e {
		t.Fatalf("expected original error instance, got %v", err)
	}

	defer func() {
		rec := recover()
		if rec != e {
			t.Fatalf("expected panic with original error, got %v", rec)
		}
	}()
	Err[int](e).MustUnwrap()
}

func TestErr_UnwrapNormalizesOtherPayloads(t *testing.T) {
	t.Parallel()

	_, err := ErrFields[int](Fields{"message": "bad input", "field": "name"}).Unwrap()
	require.Error(t, err)
	assert.Equal(t, "bad input", err.Error())

	_, err = ErrList[int](List{"a", "b"}).Unwrap()
	require.Error(t, err)
	assert.Equal(t, `["a","b"]`, err.Error())

	_, err = ErrFlag[int]().Unwrap()
	require.Error(t, err)
	assert.Equal(t, "true", err.Error())
	cause, ok := CauseOf(err)
	require.True(t, ok)
	assert.Equal(t, Flagged, cause)
}

func TestErrID(t *testing.T) {
	t.Parallel()
	r := ErrID[string]("not_found")

	assert.Equal(t, ID{ID: "not_found"}, r.Err())
	assert.Equal(t, r.Err(), ErrID[string]("not_found").Err())

	_, err := r.Unwrap()
	require.Error(t, err)
	assert.Equal(t, `{"id":"not_found"}`, err.Error())
}

func TestErrorResult_KeepsPayloadIdentity(t *testing.T) {
	t.Parallel()
	e := errors.New("boom")
	r := Err[int](e)

	again := r.ErrorResult()
	if again.Err() != e {
		t.Fatalf("expected same payload, got %v", again.Err())
	}
	assert.True(t, again.IsErr())
}

func TestHooks_FireOnlyOnMatchingBranch(t *testing.T) {
	t.Parallel()

	var results = []Result[int, error]{Ok[int, error](1), Err[int](errors.New("x"))}
	for _, r := range results {
		okCalls, errCalls := 0, 0
		out := r.
			OnErr(func(error) { errCalls++ }).
			OnOk(func(int) { okCalls++ })

		if okCalls+errCalls != 1 {
			t.Fatalf("expected exactly one hook call, got ok=%d err=%d", okCalls, errCalls)
		}
		if r.IsOk() != (okCalls == 1) {
			t.Fatalf("hook fired on wrong branch: ok=%v okCalls=%d", r.IsOk(), okCalls)
		}
		assert.Equal(t, r, out)
	}
}

func TestHooks_FireInCallOrder(t *testing.T) {
	t.Parallel()
	var order []string

	Ok[int, error](1).
		OnOk(func(int) { order = append(order, "first") }).
		OnErr(func(error) { order = append(order, "never") }).
		OnOk(func(int) { order = append(order, "second") })

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDeprecatedAliases(t *testing.T) {
	t.Parallel()
	okCalls, errCalls := 0, 0

	Ok[int, error](1).IfOk(func(int) { okCalls++ }).IfErr(func(error) { errCalls++ })
	Err[int](errors.New("x")).IfOk(func(int) { okCalls++ }).IfErr(func(error) { errCalls++ })

	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 1, errCalls)
}

func TestMethods_MapOk(t *testing.T) {
	t.Parallel()

	r := Ok[int, error](2).MapOk(func(n int) int { return n * 10 })
	assert.Equal(t, 20, r.Value())

	e := errors.New("x")
	called := false
	failed := Err[int](e).MapOk(func(n int) int { called = true; return n })
	if called {
		t.Fatalf("MapOk should not run on Err")
	}
	assert.Equal(t, e, failed.Err())
}

func TestMethods_MapOkIdentityAndComposition(t *testing.T) {
	t.Parallel()
	id := func(n int) int { return n }
	inc := func(n int) int { return n + 1 }
	dbl := func(n int) int { return n * 2 }

	r := Ok[int, error](3)
	assert.Equal(t, Result[int, error](r), r.MapOk(id))
	assert.Equal(t, r.MapOk(inc).MapOk(dbl), r.MapOk(func(n int) int { return dbl(inc(n)) }))

	e := Err[int](errors.New("x"))
	assert.Equal(t, Result[int, error](e), e.MapOk(id))
}

func TestMethods_MapErr(t *testing.T) {
	t.Parallel()
	wrapped := Err[int](errors.New("x")).MapErr(func(e error) error { return errors.Wrap(e, "ctx") })
	assert.Equal(t, "ctx: x", wrapped.Err().Error())

	r := Ok[int, error](1)
	assert.Equal(t, Result[int, error](r), r.MapErr(func(e error) error { return nil }))
}

func TestMethods_MapOkAndErr(t *testing.T) {
	t.Parallel()
	m := Mappers[int, int, error, error]{
		Ok:  func(n int) int { return n + 1 },
		Err: func(e error) error { return errors.Wrap(e, "mapped") },
	}

	assert.Equal(t, 2, Ok[int, error](1).MapOkAndErr(m).Value())
	assert.Equal(t, "mapped: x", Err[int](errors.New("x")).MapOkAndErr(m).Err().Error())
}

func TestMethods_MapOkAndErrRequiresBothHandlers(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, ErrMissingHandler, func() {
		Ok[int, error](1).MapOkAndErr(Mappers[int, int, error, error]{Ok: func(n int) int { return n }})
	})
}
