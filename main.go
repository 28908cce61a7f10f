package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/bent101/go-puzzle-entropy/config"
	"github.com/bent101/go-puzzle-entropy/entropy"
	"github.com/bent101/go-puzzle-entropy/equation"
	"github.com/bent101/go-puzzle-entropy/filter"
	"github.com/bent101/go-puzzle-entropy/hint"
	"github.com/bent101/go-puzzle-entropy/logging"
	"github.com/bent101/go-puzzle-entropy/puzzle"
	"github.com/bent101/go-puzzle-entropy/wordlist"
)

var (
	configPath  string
	variantArg  string
	wordlistArg string
	workersArg  int
	logLevelArg string
	logJSONArg  bool
	quietArg    bool

	guessArgs []string
	topArg    int
	bottomArg int
	cacheArg  string

	equationLength int
	equationOps    int
	equationOut    string
)

const solveExample = `  puzzle-entropy solve -w words.txt -g tares:gyGgg -g cloud:ggyGg
  puzzle-entropy solve --variant nerdle -w nerdle.csv -g 2*4+5=13:GggyggyG`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "puzzle-entropy",
		Short:        "Rank word and equation puzzle guesses by expected information",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML session file")
	pf.StringVar(&variantArg, "variant", "", "puzzle variant (wordle, nerdle)")
	pf.StringVarP(&wordlistArg, "wordlist", "w", "", "vocabulary file (.txt or .csv)")
	pf.IntVar(&workersArg, "workers", 0, "concurrent scorers (0 = all CPUs)")
	pf.StringVar(&logLevelArg, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&logJSONArg, "log-json", false, "log as JSON")
	pf.BoolVarP(&quietArg, "quiet", "q", false, "hide progress bars")

	solve := &cobra.Command{
		Use:     "solve",
		Short:   "Apply guesses to the vocabulary and rank the remaining candidates",
		Example: solveExample,
		Args:    cobra.NoArgs,
		RunE:    runSolve,
	}
	solve.Flags().StringArrayVarP(&guessArgs, "guess", "g", nil, "guess and feedback as WORD:PATTERN (G exact, y present, g absent)")
	solve.Flags().IntVar(&topArg, "top", 0, "most useful words to print")
	solve.Flags().IntVar(&bottomArg, "bottom", 0, "least useful words to print")
	solve.Flags().StringVar(&cacheArg, "cache", "", "ranking cache file")

	feedback := &cobra.Command{
		Use:   "feedback GUESS ANSWER",
		Short: "Show the feedback a guess receives against an answer",
		Args:  cobra.ExactArgs(2),
		RunE:  runFeedback,
	}

	equations := &cobra.Command{
		Use:   "equations",
		Short: "Generate the equation puzzle vocabulary",
		Args:  cobra.NoArgs,
		RunE:  runEquations,
	}
	equations.Flags().IntVar(&equationLength, "length", puzzle.Nerdle.Length, "equation length including '='")
	equations.Flags().IntVar(&equationOps, "max-ops", 2, "operators allowed left of '='")
	equations.Flags().StringVarP(&equationOut, "out", "o", "", "output file (default stdout)")

	precompute := &cobra.Command{
		Use:   "precompute",
		Short: "Rank the full vocabulary and store it in the ranking cache",
		Args:  cobra.NoArgs,
		RunE:  runPrecompute,
	}
	precompute.Flags().StringVar(&cacheArg, "cache", "", "ranking cache file")

	root.AddCommand(solve, feedback, equations, precompute)
	return root
}

// loadConfig layers the session file and then explicitly set flags over the
// defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = variantArg
	}
	if flags.Changed("wordlist") {
		cfg.Wordlist = wordlistArg
	}
	if flags.Changed("workers") {
		cfg.Workers = workersArg
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelArg
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = logJSONArg
	}
	if flags.Changed("top") {
		cfg.Top = topArg
	}
	if flags.Changed("bottom") {
		cfg.Bottom = bottomArg
	}
	if flags.Changed("cache") {
		cfg.Cache = cacheArg
	}
	if flags.Changed("guess") {
		guesses, err := parseGuessArgs(guessArgs)
		if err != nil {
			return cfg, err
		}
		cfg.Guesses = append(cfg.Guesses, guesses...)
	}

	return cfg, cfg.Validate()
}

func parseGuessArgs(args []string) ([]config.Guess, error) {
	guesses := make([]config.Guess, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndexByte(arg, ':')
		if i <= 0 || i == len(arg)-1 {
			return nil, fmt.Errorf("guess %q: want WORD:PATTERN", arg)
		}
		guesses = append(guesses, config.Guess{Word: arg[:i], Feedback: arg[i+1:]})
	}
	return guesses, nil
}

type session struct {
	cfg     config.Config
	variant puzzle.Variant
	vocab   []puzzle.Word
	logger  *slog.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logCfg := cfg.Logging()
	logCfg.Writer = cmd.ErrOrStderr()
	logger := logging.New(logCfg)

	variant, err := cfg.PuzzleVariant()
	if err != nil {
		return nil, err
	}
	if cfg.Wordlist == "" {
		return nil, fmt.Errorf("no word list given: use --wordlist or set wordlist in the config")
	}

	start := time.Now()
	vocab, err := wordlist.Load(cfg.Wordlist, variant)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded vocabulary",
		"variant", variant.Name,
		"path", cfg.Wordlist,
		"words", len(vocab),
		"elapsed", time.Since(start))

	return &session{cfg: cfg, variant: variant, vocab: vocab, logger: logger}, nil
}

func (s *session) rank(ctx context.Context, candidates []puzzle.Word) (*entropy.Ranking, error) {
	opts := []entropy.Option{
		entropy.WithWorkers(s.cfg.Workers),
		entropy.WithLogger(s.logger),
	}
	if !quietArg && len(candidates) > 1 {
		bar := progressbar.Default(int64(len(candidates)), "ranking")
		defer bar.Finish()
		opts = append(opts, entropy.WithProgress(func() { bar.Add(1) }))
	}
	return entropy.NewRanker(opts...).Rank(ctx, candidates)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	rounds, err := s.cfg.Rounds(s.variant)
	if err != nil {
		return err
	}
	state, steps, err := filter.Replay(s.vocab, rounds)
	if err != nil {
		return err
	}
	for i, step := range steps {
		s.logger.Debug("applied guess",
			"round", i+1,
			"guess", string(step.Round.Guess),
			"pattern", step.Round.Pattern.Letters(),
			"before", step.Before,
			"after", step.After)
		if step.Inconsistent {
			s.logger.Warn("feedback is inconsistent with the vocabulary",
				"round", i+1,
				"guess", string(step.Round.Guess),
				"pattern", step.Round.Pattern.Letters())
		}
	}

	out := cmd.OutOrStdout()
	candidates := state.Candidates()
	printRemaining(out, len(candidates))
	if len(candidates) == 0 {
		return nil
	}

	cache := loadRankCache(s.cfg.Cache, s.logger)
	key := fingerprint(s.variant, candidates)
	ranking, ok := cache.get(key)
	if !ok {
		if ranking, err = s.rank(cmd.Context(), candidates); err != nil {
			return err
		}
		cache.put(key, ranking)
		if err := cache.save(); err != nil {
			s.logger.Warn("could not save ranking cache", "path", s.cfg.Cache, "error", err)
		}
	}

	printRanking(out, ranking, s.cfg.Top, s.cfg.Bottom)
	return nil
}

func runFeedback(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	variant, err := cfg.PuzzleVariant()
	if err != nil {
		return err
	}
	words, err := variant.ParseWords(args)
	if err != nil {
		return err
	}
	p := hint.New(words[0], words[1])
	printFeedback(cmd.OutOrStdout(), words[0], p)
	return nil
}

func runEquations(cmd *cobra.Command, _ []string) error {
	words := equation.Generate(equation.Options{Length: equationLength, MaxOperators: equationOps})

	var w io.Writer = cmd.OutOrStdout()
	if equationOut != "" {
		f, err := os.Create(equationOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := wordlist.Write(w, words); err != nil {
		return err
	}
	if equationOut != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d equations to %s\n", len(words), equationOut)
	}
	return nil
}
