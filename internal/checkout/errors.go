package checkout

import "errors"

var (
	ErrWrongStep = errors.New("checkout is not at this step")
	ErrEmptyCart = errors.New("cart is empty")
)
