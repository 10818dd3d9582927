package solo

import (
	"errors"

	"github.com/ib-77/listkata/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input rop.Result[T], validate func(in T) (valid bool, errMsg string)) rop.Result[T] {
	if !input.IsSuccess() {
		return input
	}

	if isValid, errMsg := validate(input.Result()); !isValid {
		return rop.Fail[T](errors.New(errMsg))
	}
	return input
}

func Switch[In any, Out any](input rop.Result[In], onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](input rop.Result[In], onSuccess func(r In) Out) rop.Result[Out] {
	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](input rop.Result[In], onTryExecute func(r In) (Out, error)) rop.Result[Out] {
	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}

	out, err := onTryExecute(input.Result())
	if err != nil {
		return rop.Fail[Out](err)
	}
	return rop.Success(out)
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

// OrElse returns the successful value, or fallback for a failed or empty result.
func OrElse[T any](input rop.Result[T], fallback T) T {
	return Finally(input,
		func(r T) T { return r },
		func(error) T { return fallback })
}
