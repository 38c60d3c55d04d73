package bsearch

import "github.com/yuya-isaka/chibisearch/util"

// 見つからなかった場合に返すインデックス
const NotFound = -1

type Number = util.Number

// 昇順に並んだseqからtargetと等しい要素を探す
// 見つかった場合は(インデックス, true)、見つからない場合は(NotFound, false)
//
// 隣接インデックスまで窓が狭まったときは mid+1 / mid-1 ではなく mid に寄せる。
// ループ後、low付近に一致する要素があれば low を答えにする（最後の要素はこの補正の対象外）。
// 重複がある場合、教科書的な二分探索とは異なるインデックスを返すことがある。
// seqがソート済みかどうかは検査しない（SearchStrictを参照）
func Search[T Number](seq []T, target T) (int, bool) {
	size := len(seq)
	if size == 0 {
		return NotFound, false
	}

	low := 0
	high := size - 1
	mid := size / 2

	for low <= high && seq[mid] != target {
		if target >= seq[mid] {
			if abs(low-mid) != 1 {
				low = mid + 1
			} else {
				low = mid
			}
		} else {
			if abs(high-mid) != 1 {
				high = mid - 1
			} else {
				high = mid
			}
		}
		mid = (low + high) / 2
	}

	// 窓を狭める途中で飛ばしたlowの一致を拾う
	if abs(low-high) <= 2 && low < size-1 {
		if seq[low] == target {
			mid = low
		}
	}

	if low > high {
		return NotFound, false
	}
	return mid, true
}

// 教科書どおりの二分探索
// Searchとは違い、重複要素に対して別のインデックスを返すことがある
func Canonical[T Number](seq []T, target T) (int, bool) {
	left := 0
	right := len(seq)
	for left < right {
		mid := left + (right-left)/2
		cmp := util.Compare(seq[mid], target)
		if cmp == util.Less {
			left = mid + 1
		} else if cmp == util.Greater {
			right = mid
		} else {
			return mid, true
		}
	}
	return NotFound, false
}

// seqが昇順であることを確認してからSearchを行う
// 昇順でない場合は*InvalidInputErrorを返す
func SearchStrict[T Number](seq []T, target T) (int, bool, error) {
	if err := Validate(seq); err != nil {
		return NotFound, false, err
	}
	index, found := Search(seq, target)
	return index, found, nil
}

// seqが昇順（重複可）であることの確認
func Validate[T Number](seq []T) error {
	if i, ok := util.FirstUnsorted(seq); ok {
		return newInvalidInputError(seq, i)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
