package seqio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// バイナリ形式での1要素のサイズ
const ElementSize = 8

// 入力形式
type Format string

const (
	Text   Format = "text"   // 空白またはカンマ区切りの10進数
	Binary Format = "binary" // リトルエンディアンのfloat64の並び
)

// 形式名の検証
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, Binary:
		return f, nil
	}
	return "", fmt.Errorf("不明な入力形式です。指定された形式: %q", s)
}

// 指定形式で列を読み込む
func Read(r io.Reader, format Format) ([]float64, error) {
	switch format {
	case Text:
		return ReadText(r)
	case Binary:
		return ReadBinary(r)
	}
	return nil, fmt.Errorf("不明な入力形式です。指定された形式: %q", format)
}

// ===================================================

// テキスト形式の列を読み込む
func ReadText(r io.Reader) ([]float64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("入力の読み込みに失敗しました。エラー詳細: %w", err)
	}
	tokens := strings.FieldsFunc(string(b), func(c rune) bool {
		return c == ',' || unicode.IsSpace(c)
	})
	return ParseArgs(tokens)
}

// コマンドライン引数などのトークン列を数値列に変換する
func ParseArgs(args []string) ([]float64, error) {
	seq := make([]float64, 0, len(args))
	for i, tok := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, fmt.Errorf("数値として解釈できません。位置: %d, トークン: %q, エラー詳細: %w", i, tok, err)
		}
		seq = append(seq, v)
	}
	return seq, nil
}

// ===================================================

func Float64To8Bytes(v float64) []byte {
	b := make([]byte, ElementSize)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

func BytesToFloat64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// バイナリ形式の列を読み込む
func ReadBinary(r io.Reader) ([]float64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("入力の読み込みに失敗しました。エラー詳細: %w", err)
	}

	// サイズのバリデーション
	if len(b)%ElementSize != 0 {
		return nil, fmt.Errorf("入力サイズが無効です。期待されるサイズは%dの倍数ですが、現在のサイズは %d バイトです。", ElementSize, len(b))
	}

	seq := make([]float64, len(b)/ElementSize)
	for i := range seq {
		seq[i] = BytesToFloat64(b[i*ElementSize : (i+1)*ElementSize])
	}
	return seq, nil
}

// 列をバイナリ形式で書き込む
func WriteBinary(w io.Writer, seq []float64) error {
	for i, v := range seq {
		if _, err := w.Write(Float64To8Bytes(v)); err != nil {
			return fmt.Errorf("書き込みに失敗しました。位置: %d, エラー詳細: %w", i, err)
		}
	}
	return nil
}
