package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/theonehub/taxcalc/internal/calculation"
	"github.com/theonehub/taxcalc/internal/compare"
	"github.com/theonehub/taxcalc/internal/config"
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/output"
	"github.com/theonehub/taxcalc/internal/payroll"
	"github.com/theonehub/taxcalc/internal/store"
	"github.com/theonehub/taxcalc/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "Indian income tax calculator",
	Long:  "Computes Indian income tax liability from an employee declaration, under the old and new regimes",
}

func newCalcService(debugLog bool) *calculation.TaxCalculationService {
	svc := calculation.NewTaxCalculationService()
	if debugLog {
		svc.SetLogger(simpleCLILogger{})
	}
	return svc
}

// resultCache picks Redis when TAXCALC_REDIS_ADDR is set, a no-op cache
// otherwise. A .env file in the working directory is honoured.
func resultCache() store.ResultCache {
	_ = godotenv.Load()
	if addr := os.Getenv("TAXCALC_REDIS_ADDR"); addr != "" {
		return store.NewRedisResultCache(addr, 0)
	}
	return store.NopResultCache{}
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [declaration-file]",
	Short: "Calculate tax liability from a declaration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debugLog, _ := cmd.Flags().GetBool("debug")
		outputFormat, _ := cmd.Flags().GetString("format")

		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("Unknown output format: %s (valid: %v)", outputFormat, output.FormatterNames())
		}

		decl, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		svc := newCalcService(debugLog)
		res, err := svc.Calculate(decl.ToInput(time.Now()))
		if err != nil {
			log.Fatal(err)
		}

		cacheResult(decl, res)

		text, err := formatter.FormatResult(res)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
	},
}

// cacheResult stores the computed result keyed by the declaration identity,
// best-effort. Version 1: a CLI run has no persisted record to version
// against.
func cacheResult(decl *config.Declaration, res *domain.TaxCalculationResult) {
	cache := resultCache()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = cache.Set(ctx, decl.Employee.ID, decl.Employee.TaxYear, 1, res)
}

var compareCmd = &cobra.Command{
	Use:   "compare [declaration-file]",
	Short: "Compare tax liability under both regimes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debugLog, _ := cmd.Flags().GetBool("debug")
		outputFormat, _ := cmd.Flags().GetString("format")
		showBreakEven, _ := cmd.Flags().GetBool("break-even")

		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("Unknown output format: %s (valid: %v)", outputFormat, output.FormatterNames())
		}

		decl, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := compare.NewEngine(newCalcService(debugLog))
		in := decl.ToInput(time.Now())

		rc, err := engine.Compare(context.Background(), in)
		if err != nil {
			log.Fatal(err)
		}
		text, err := formatter.FormatComparison(rc)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)

		if showBreakEven {
			be, err := engine.BreakEven(context.Background(), in, compare.DefaultSolverOptions())
			if err != nil {
				log.Fatal(err)
			}
			if be.Converged && be.ExtraDeduction.IsPositive() {
				fmt.Printf("Break-even: %s of additional deductions would level the regimes (%d iterations)\n",
					be.ExtraDeduction.Display(), be.Iterations)
			} else if !be.Converged {
				fmt.Printf("Break-even: not reachable within %s of additional deductions\n",
					compare.DefaultSolverOptions().MaxExtraDeduction.Display())
			}
		}
	},
}

var projectCmd = &cobra.Command{
	Use:   "project [declaration-file]",
	Short: "Project one payroll month adjusted for leave without pay",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lwpDays, _ := cmd.Flags().GetInt("lwp-days")
		workingDays, _ := cmd.Flags().GetInt("working-days")

		decl, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		annual := calculation.ComputeSalary(decl.Salary)
		p, err := payroll.ProjectMonth(annual, payroll.MonthlyInput{
			LWPDays:     lwpDays,
			WorkingDays: workingDays,
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("LWP factor:      %s\n", p.LWPFactor.StringFixed(4))
		fmt.Printf("Monthly gross:   %s\n", p.Gross.Display())
		fmt.Printf("Exemptions:      %s\n", p.Exemptions.Display())
		fmt.Printf("Taxable salary:  %s\n", p.TaxableSalary.Display())
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [declaration-file]",
	Short: "Validate a declaration file without calculating",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		decl, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Declaration for %s (%s) is valid\n", decl.Employee.ID, decl.Employee.TaxYear)
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Explore both regimes interactively",
	Run: func(cmd *cobra.Command, args []string) {
		model := tui.NewModel(compare.NewEngine(nil))
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	compareCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	compareCmd.Flags().Bool("break-even", false, "Estimate the extra deductions that level the regimes")

	projectCmd.Flags().Int("lwp-days", 0, "Leave-without-pay days in the month")
	projectCmd.Flags().Int("working-days", 22, "Working days in the month")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
