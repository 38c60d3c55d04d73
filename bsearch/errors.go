package bsearch

import (
	"errors"
	"fmt"
)

// 入力が昇順でないことを示す
var ErrInvalidInput = errors.New("入力が昇順ではありません")

// 昇順が崩れている位置の情報
type InvalidInputError struct {
	Index int     // 昇順が崩れている要素のインデックス
	Prev  float64 // 直前の要素（Indexが0の場合は使わない）
	Value float64 // Indexの要素
}

func newInvalidInputError[T Number](seq []T, i int) *InvalidInputError {
	e := &InvalidInputError{
		Index: i,
		Value: float64(seq[i]),
	}
	if i > 0 {
		e.Prev = float64(seq[i-1])
	}
	return e
}

func (e *InvalidInputError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("%s。インデックス: %d, 値: %v", ErrInvalidInput, e.Index, e.Value)
	}
	return fmt.Sprintf("%s。インデックス: %d, 直前の値: %v, 値: %v", ErrInvalidInput, e.Index, e.Prev, e.Value)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
