package booking

import "venuebook/internal/pkg/errs"

var ErrNegativeAmount = errs.New("amount must not be negative")

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) MulCount(n int32) Money {
	return Money{cents: m.cents * int64(n)}
}
