package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/config"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/csv"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/parser"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/plan"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/report"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
	debugDump  bool
)

var rootCmd = &cobra.Command{
	Use:   "mei-cli",
	Short: "ContabilidadeMEI command-line interface",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "mei-cli",
		Level:           log.DebugLevel,
	})
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input_path>",
	Short: "Convert bank statements to classified CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		processor := service.NewProcessor(cfg, logger)

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		for _, match := range matches {
			fileInfo, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}
			if fileInfo.IsDir() {
				entries, err := os.ReadDir(match)
				if err != nil {
					logger.Warn("failed to read directory", "error", err, "dir", match)
					continue
				}
				for _, entry := range entries {
					if entry.IsDir() {
						continue
					}
					printFile(processor, logger, filepath.Join(match, entry.Name()))
				}
			} else {
				printFile(processor, logger, match)
			}
		}
		return nil
	},
}

func printFile(processor *service.Processor, logger *log.Logger, path string) {
	txs, err := processor.ProcessFile(path, "", 0)
	if err != nil {
		if errors.Is(err, parser.ErrNoTransactions) {
			logger.Warn("no transactions found", "file", path)
			return
		}
		logger.Warn("failed to process file", "error", err, "file", path)
		return
	}
	if debugDump {
		fmt.Fprintln(os.Stderr, pp.Sprint(txs))
	}
	fmt.Print(string(csv.Create(txs, cliFilters.toFilterFunc())))
}

var reportCmd = &cobra.Command{
	Use:   "report [flags] <input_path>",
	Short: "Print cash-flow and monthly reports for one statement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		processor := service.NewProcessor(cfg, logger)

		txs, err := processor.ProcessFile(args[0], "", 0)
		if err != nil {
			return err
		}

		fmt.Println("--- Fluxo de Caixa Geral ---")
		report.CashFlow(txs).Write(os.Stdout)
		fmt.Println()
		fmt.Println("--- Fluxo de Caixa Mensal ---")
		report.WriteMonthly(os.Stdout, report.Monthly(txs))
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Process a YAML plan of statements and print the consolidated report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Plan %s\n", args[0])
		p.Print()

		processor := service.NewProcessor(cfg, logger)
		flow, monthly, err := processor.ProcessPlan(p)
		if err != nil {
			return err
		}

		fmt.Println("--- Fluxo de Caixa Geral ---")
		flow.Write(os.Stdout)
		fmt.Println()
		fmt.Println("--- Fluxo de Caixa Mensal ---")
		report.WriteMonthly(os.Stdout, monthly)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().String("layout", "", "Default statement layout (bb, caixa, mlgita, mlgsan)")
	rootCmd.PersistentFlags().Int("year", 0, "Reference year for layouts without one (mlgita)")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.startDate, "start", "", "Start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.endDate, "end", "", "End date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum amount")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum amount")
	rootCmd.PersistentFlags().StringVar(&cliFilters.category, "category", "", "Filter by category (case insensitive)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.description, "descr", "", "Filter by description substring (case insensitive)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.txType, "type", "", "Filter by type (credit or debit)")

	convertCmd.Flags().BoolVar(&debugDump, "debug", false, "Dump parsed transactions to stderr")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
