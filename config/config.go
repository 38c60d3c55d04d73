package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 探索方式
const (
	ModeFaithful  = "faithful"  // 元の分岐をそのまま再現する
	ModeCanonical = "canonical" // 教科書どおりの二分探索
)

// 設定全体
type Config struct {
	Search  Search  `yaml:"search"`
	Input   Input   `yaml:"input"`
	Logging Logging `yaml:"logging"`
}

// 探索の設定
type Search struct {
	Mode   string `yaml:"mode"`
	Strict bool   `yaml:"strict"` // 昇順でない入力をエラーにする
}

// 入力の設定
type Input struct {
	Format string `yaml:"format"` // text | binary
}

// ログの設定
type Logging struct {
	Level    string `yaml:"level"`    // debug | info | warn | error
	Encoding string `yaml:"encoding"` // console | json
}

// デフォルト設定
func DefaultConfig() *Config {
	return &Config{
		Search: Search{
			Mode:   ModeFaithful,
			Strict: false,
		},
		Input: Input{
			Format: "text",
		},
		Logging: Logging{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// 設定ファイルの読み込み
// ファイルが存在しない場合はデフォルト設定を返す
// ファイルに書かれていない項目はデフォルト値のまま
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました。パス: %s, エラー詳細: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗しました。パス: %s, エラー詳細: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定ファイルが無効です。パス: %s, エラー詳細: %w", path, err)
	}
	return cfg, nil
}

// 設定値のバリデーション
func (c *Config) Validate() error {
	switch c.Search.Mode {
	case ModeFaithful, ModeCanonical:
	default:
		return fmt.Errorf("不明な探索方式です: %q", c.Search.Mode)
	}

	switch c.Input.Format {
	case "text", "binary":
	default:
		return fmt.Errorf("不明な入力形式です: %q", c.Input.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("不明なログレベルです: %q", c.Logging.Level)
	}

	switch c.Logging.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("不明なログ形式です: %q", c.Logging.Encoding)
	}
	return nil
}
