package searcher

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yuya-isaka/chibisearch/bsearch"
	"github.com/yuya-isaka/chibisearch/config"
)

// 探索結果
type Result struct {
	Index int  // 見つからなかった場合はbsearch.NotFound
	Found bool
}

// 設定に従って探索方式を切り替える
// 呼び出し間で状態を持たないので、並行に使ってよい
type Searcher struct {
	mode   string
	strict bool
	logger *zap.Logger
}

// Searcherの生成
// loggerがnilの場合はログを出さない
func New(cfg config.Search, logger *zap.Logger) (*Searcher, error) {
	switch cfg.Mode {
	case config.ModeFaithful, config.ModeCanonical:
	default:
		return nil, fmt.Errorf("不明な探索方式です: %q", cfg.Mode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Searcher{
		mode:   cfg.Mode,
		strict: cfg.Strict,
		logger: logger.Named("searcher"),
	}, nil
}

// seqからtargetを探す
// strictの場合、昇順でない入力に対してbsearch.ErrInvalidInputを包んだエラーを返す
func (s *Searcher) Find(seq []float64, target float64) (Result, error) {
	if s.strict {
		if err := s.validate(seq); err != nil {
			return Result{Index: bsearch.NotFound}, err
		}
	}

	var index int
	var found bool
	if s.mode == config.ModeCanonical {
		index, found = bsearch.Canonical(seq, target)
	} else {
		index, found = bsearch.Search(seq, target)
	}

	s.logger.Debug("search finished",
		zap.String("mode", s.mode),
		zap.Int("len", len(seq)),
		zap.Float64("target", target),
		zap.Int("index", index),
		zap.Bool("found", found),
	)
	return Result{Index: index, Found: found}, nil
}

func (s *Searcher) validate(seq []float64) error {
	if err := bsearch.Validate(seq); err != nil {
		s.logger.Warn("input is not sorted", zap.Error(err))
		return fmt.Errorf("入力の検証に失敗しました: %w", err)
	}
	return nil
}
