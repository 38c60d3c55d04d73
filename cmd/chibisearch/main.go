package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yuya-isaka/chibisearch/config"
	"github.com/yuya-isaka/chibisearch/searcher"
	"github.com/yuya-isaka/chibisearch/seqio"
)

// コマンド全体で共有する状態
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "chibisearch",
		Short: "Binary search over a sorted sequence of numbers",
		Long: `chibisearch looks up a number in an ascending sequence and prints its index.

The default "faithful" mode keeps its own narrowing rules, which may
report a different index than textbook binary search when the sequence
contains duplicates. Use --mode canonical for the textbook variant.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(a.newFindCmd(), a.newEncodeCmd())
	return rootCmd
}

// 設定の読み込みとロガーの初期化
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = cfg.Logging.Encoding
	if cfg.Logging.Encoding == "console" {
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) newFindCmd() *cobra.Command {
	var (
		target float64
		file   string
		format string
		mode   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "find --target X [values...]",
		Short: "Find the index of a value",
		Long: `Finds --target in an ascending sequence and prints its index, or "not found".

The sequence is taken from the positional values, else from --file, else from stdin.

Example:
  chibisearch find --target 7 1 3 5 7 9 11
  chibisearch find --target -3 -- -5 -3 0
  chibisearch find --target 7 --file seq.bin --format binary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// フラグが明示された場合だけ設定を上書きする
			if cmd.Flags().Changed("mode") {
				a.cfg.Search.Mode = mode
			}
			if cmd.Flags().Changed("strict") {
				a.cfg.Search.Strict = strict
			}
			if cmd.Flags().Changed("format") {
				a.cfg.Input.Format = format
			}

			seq, err := a.readSequence(cmd, args, file)
			if err != nil {
				return err
			}

			s, err := searcher.New(a.cfg.Search, a.logger)
			if err != nil {
				return err
			}
			res, err := s.Find(seq, target)
			if err != nil {
				return err
			}

			if !res.Found {
				fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Index)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&target, "target", "t", 0, "value to search for")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the sequence from a file")
	cmd.Flags().StringVar(&format, "format", "text", "input format: text | binary")
	cmd.Flags().StringVarP(&mode, "mode", "m", config.ModeFaithful, "search mode: faithful | canonical")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject sequences that are not ascending")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func (a *app) newEncodeCmd() *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "encode [values...]",
		Short: "Convert a text sequence to the binary format",
		Long: `Reads a text sequence (positional values, --file, or stdin) and writes it
as little-endian float64 values, 8 bytes each, for use with --format binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// encodeの入力は常にテキスト
			a.cfg.Input.Format = string(seqio.Text)
			seq, err := a.readSequence(cmd, args, file)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := seqio.WriteBinary(w, seq); err != nil {
				return err
			}
			a.logger.Debug("sequence encoded", zap.Int("len", len(seq)), zap.String("output", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the text sequence from a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

// 位置引数、ファイル、標準入力の順に列を探す
func (a *app) readSequence(cmd *cobra.Command, args []string, file string) ([]float64, error) {
	if len(args) > 0 {
		return seqio.ParseArgs(args)
	}

	format, err := seqio.ParseFormat(a.cfg.Input.Format)
	if err != nil {
		return nil, err
	}

	if file == "" {
		return seqio.Read(cmd.InOrStdin(), format)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	seq, err := seqio.Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	a.logger.Debug("sequence loaded", zap.String("file", file), zap.String("format", string(format)), zap.Int("len", len(seq)))
	return seq, nil
}
