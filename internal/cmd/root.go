package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/on-the-ground/allsums/allsums"
	"github.com/on-the-ground/allsums/config"
	"github.com/on-the-ground/allsums/configkeys"
	"github.com/on-the-ground/allsums/log"
	"github.com/on-the-ground/allsums/partition"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the allsums command with its own viper instance
func NewRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "allsums [n] [step]",
		Short: "List every way to write n as a sum of parts no smaller than step",
		Long: `allsums prints every multiset of two or more integers, each at least step,
that sums to n. Order does not matter, so (1, 3) and (3, 1) are one result.
Results are printed one per line in lexicographic order.

n defaults to 10 and step to 1. Put -- before a negative argument so it is
not read as a flag, e.g. allsums -- -4 1.

--max-n rejects larger targets, since the number of partitions grows
exponentially in n. --max-n 0 disables the limit.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	flags := rootCmd.Flags()
	flags.Bool("pairs", defaults.Output.Pairs, "print only the two-part partitions")
	flags.Bool("count", defaults.Output.Count, "print only the number of partitions")
	flags.Bool("stats", defaults.Output.Stats, "log a run report to stderr")
	flags.Int("max-n", defaults.MaxN, "largest accepted n, 0 for no limit")
	flags.String("table", defaults.Table.Backend, "memo table backend: trie, memdb or tiered")
	flags.Int("hot-entries", defaults.Table.HotEntries, "hot tier size of the tiered backend")
	flags.String("log-level", defaults.Log.Level, "log level: debug, info, warn or error")

	_ = v.BindPFlag(configkeys.ConfigOutputPairs, flags.Lookup("pairs"))
	_ = v.BindPFlag(configkeys.ConfigOutputCount, flags.Lookup("count"))
	_ = v.BindPFlag(configkeys.ConfigOutputStats, flags.Lookup("stats"))
	_ = v.BindPFlag(configkeys.ConfigMaxN, flags.Lookup("max-n"))
	_ = v.BindPFlag(configkeys.ConfigTableBackend, flags.Lookup("table"))
	_ = v.BindPFlag(configkeys.ConfigTableHotEntries, flags.Lookup("hot-entries"))
	_ = v.BindPFlag(configkeys.ConfigLogLevel, flags.Lookup("log-level"))

	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if err := bindArgs(v, args); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := log.New(cmd.ErrOrStderr(), log.LogLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	defer log.Sync(logger)

	cache, closeCache, err := newCache(cfg.Table)
	if err != nil {
		return fmt.Errorf("failed to create %s memo table: %w", cfg.Table.Backend, err)
	}
	defer closeCache()

	e := allsums.New(cache, allsums.WithLogger(logger), allsums.WithMaxN(cfg.MaxN))
	logger.Debug("enumerator ready",
		zap.String("table", cfg.Table.Backend),
		zap.Int("n", cfg.N),
		zap.Int("step", cfg.Step),
	)

	enumerate := e.Enumerate
	if cfg.Output.Pairs {
		enumerate = e.EnumeratePairs
	}
	set, report, err := enumerate(cfg.N, cfg.Step)
	if err != nil {
		return err
	}
	if cfg.Output.Stats {
		// stats are requested output, so they bypass --log-level
		statsLogger, err := log.New(cmd.ErrOrStderr(), log.LogInfo)
		if err != nil {
			return err
		}
		statsLogger.Info("enumeration finished", report.Fields()...)
		log.Sync(statsLogger)
	}
	return render(cmd.OutOrStdout(), set, cfg.Output.Count)
}

// bindArgs overrides n and step with the positional arguments
func bindArgs(v *viper.Viper, args []string) error {
	keys := []struct {
		name string
		key  string
	}{
		{"n", configkeys.ConfigTarget},
		{"step", configkeys.ConfigStep},
	}
	for i, arg := range args {
		val, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", keys[i].name, arg, err)
		}
		v.Set(keys[i].key, val)
	}
	return nil
}

func newCache(tc config.TableConfig) (allsums.Cache, func(), error) {
	noop := func() {}
	switch tc.Backend {
	case config.TableMemDB:
		cache, err := allsums.NewMemDBCache()
		return cache, noop, err
	case config.TableTiered:
		return allsums.NewTieredCache(tc.HotEntries)
	default:
		return allsums.NewCache(), noop, nil
	}
}

func render(w io.Writer, set partition.Set, countOnly bool) error {
	if countOnly {
		_, err := fmt.Fprintln(w, set.Len())
		return err
	}
	bw := bufio.NewWriter(w)
	for _, p := range set.Sorted() {
		if _, err := fmt.Fprintln(bw, p.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
