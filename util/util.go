package util

import "golang.org/x/exp/constraints"

// 探索対象として扱える数値型
type Number interface {
	constraints.Integer | constraints.Float
}

// ===================================================

type Ordering interface {
	orderProtexted()
}

type order int

func (o order) orderProtexted() {}

const (
	Less    order = -1
	Equal   order = 0
	Greater order = 1
)

// aをbと比較した結果を返す
// NaNはどの値とも等しくも大小もないので、Equalにはならない（Greater扱い）
func Compare[T Number](a, b T) Ordering {
	if a < b {
		return Less
	}
	if a == b {
		return Equal
	}
	return Greater
}

// 昇順が崩れている最初のインデックスを返す
// seq[i-1] <= seq[i] が成り立たない（NaNを含む）最初のiを見つけた場合、(i, true)
func FirstUnsorted[T Number](seq []T) (int, bool) {
	for i := 1; i < len(seq); i++ {
		// NaNとの比較は常にfalseになるので、ここで弾かれる
		if !(seq[i-1] <= seq[i]) {
			return i, true
		}
	}

	// 要素が1つだけでNaNの場合
	if len(seq) > 0 && seq[0] != seq[0] {
		return 0, true
	}

	return 0, false
}
