// Command advisor is the California auto coverage advisor CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	httpadapter "github.com/calrisk/coverage-advisor/internal/adapter/http"
	"github.com/calrisk/coverage-advisor/internal/config"
	"github.com/calrisk/coverage-advisor/internal/observability"
	"github.com/calrisk/coverage-advisor/internal/recent"
	"github.com/calrisk/coverage-advisor/internal/refdata"
	"github.com/calrisk/coverage-advisor/internal/scoring"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	store   = refdata.Default()
	jsonOut bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "California auto insurance risk analysis and coverage recommendations",
	Long: `advisor scores California zip codes for auto insurance risk from a
curated table of county and zip risk factors, recommends a coverage tier,
estimates premiums, and illustrates local accident costs.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON instead of human-readable output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(premiumCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(serveCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("advisor %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze <zip>",
	Short: "Show the risk analysis for a zip code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := scoring.AnalyzeZip(store, args[0])
		if err != nil {
			return err
		}
		rememberSearch(data.Zip)

		if jsonOut {
			return printJSON(data)
		}

		fmt.Printf("%s — %s, %s County\n", data.Zip, data.Area, data.County)
		fmt.Printf("  Risk level:       %s %s\n", data.RiskLevel.Level, strings.Repeat("★", data.RiskLevel.Stars))
		fmt.Printf("  Effective risk:   %.3f (county %.2f × local %.2f)\n", data.EffectiveRisk, data.CountyRiskFactor, data.LocalRisk)
		fmt.Printf("  Uninsured rate:   %s\n", data.UninsuredPct)
		fmt.Printf("  Theft risk:       %s\n", data.TheftRisk.Display())
		fmt.Printf("  Accident rate:    %.1f per 1000 drivers\n", data.AccidentRate)
		fmt.Printf("  Avg premium:      $%d/yr\n", data.AvgAnnualPremium)
		fmt.Println("  Average claims:")
		fmt.Printf("    Bodily injury:    $%d\n", data.AvgClaims.BodilyInjury)
		fmt.Printf("    Property damage:  $%d\n", data.AvgClaims.PropertyDamage)
		fmt.Printf("    Collision:        $%d\n", data.AvgClaims.Collision)
		fmt.Printf("    Comprehensive:    $%d\n", data.AvgClaims.Comprehensive)
		fmt.Printf("    Medical payments: $%d\n", data.AvgClaims.MedicalPayments)
		return nil
	},
}

// --- Recommend Command ---

var recommendCmd = &cobra.Command{
	Use:   "recommend <zip>",
	Short: "Recommend a coverage tier for a zip code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicleValue, _ := cmd.Flags().GetInt("vehicle-value")
		rec, err := scoring.Recommend(store, args[0], vehicleValue)
		if err != nil {
			return err
		}
		rememberSearch(rec.ZipData.Zip)

		if jsonOut {
			return printJSON(rec)
		}

		fmt.Printf("Recommended tier for %s: %s\n", rec.ZipData.Zip, rec.TierData.Label)
		for _, reason := range rec.Reasons {
			fmt.Printf("  - %s\n", reason)
		}
		fmt.Println("Coverage:")
		fmt.Printf("  Bodily injury:     $%d/$%d\n", rec.TierData.BodilyInjury.PerPerson, rec.TierData.BodilyInjury.PerAccident)
		fmt.Printf("  Property damage:   $%d\n", rec.TierData.PropertyDamage)
		fmt.Printf("  UM/UIM:            $%d/$%d\n", rec.TierData.UninsuredMotorist.PerPerson, rec.TierData.UninsuredMotorist.PerAccident)
		fmt.Printf("  Medical payments:  %s\n", dollarsOrNone(rec.TierData.MedicalPayments))
		fmt.Printf("  Comprehensive:     %s\n", deductibleOrNone(rec.TierData.Comprehensive))
		fmt.Printf("  Collision:         %s\n", deductibleOrNone(rec.TierData.Collision))
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("vehicle-value", httpadapter.DefaultVehicleValue, "vehicle value in dollars")
	scenariosCmd.Flags().Int("vehicle-value", httpadapter.DefaultVehicleValue, "vehicle value in dollars")
}

// --- Premium Command ---

var premiumCmd = &cobra.Command{
	Use:   "premium <zip> <tier>",
	Short: "Estimate the annual premium for a tier in a zip code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		zip, tier := args[0], refdata.TierKey(args[1])
		premium, err := scoring.EstimatePremium(store, zip, tier)
		if err != nil {
			return err
		}

		if jsonOut {
			return printJSON(map[string]any{"zip": zip, "tier": tier, "annualPremium": premium})
		}
		fmt.Printf("Estimated annual premium for %s (%s): $%d\n", zip, tier, premium)
		return nil
	},
}

// --- Scenarios Command ---

var scenariosCmd = &cobra.Command{
	Use:   "scenarios <zip>",
	Short: "Show illustrative accident scenarios for a zip code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicleValue, _ := cmd.Flags().GetInt("vehicle-value")
		data, err := scoring.AnalyzeZip(store, args[0])
		if err != nil {
			return err
		}
		scenarios := scoring.BuildScenarios(data, vehicleValue)

		if jsonOut {
			return printJSON(scenarios)
		}

		for _, s := range scenarios {
			fmt.Printf("%s %s — total $%d\n", s.Icon, s.Title, s.Total)
			fmt.Printf("  %s\n", s.Description)
			for _, c := range s.Costs {
				fmt.Printf("    %-40s $%d\n", c.Label, c.Amount)
			}
			fmt.Printf("  Coverage needed: %s\n\n", strings.Join(s.CoverageNeeded, ", "))
		}
		return nil
	},
}

// --- Search Command ---

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search covered zip codes by prefix or area name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := scoring.SearchZips(store, args[0])

		if jsonOut {
			return printJSON(results)
		}
		if len(results) == 0 {
			fmt.Println("No matching zip codes found.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s  %s, %s Co. (theft: %s)\n", r.Zip, r.Area, r.County, r.TheftRisk)
		}
		return nil
	},
}

// --- Recent Command ---

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently analyzed zip codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rs := openRecentStore()
		if rs == nil {
			fmt.Println("Recent-search persistence is disabled.")
			return nil
		}
		entries := rs.List()

		if jsonOut {
			return printJSON(entries)
		}
		if len(entries) == 0 {
			fmt.Println("No recent searches.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s\n", e.Zip, e.SearchedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the advisor JSON API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := observability.NewLogger(cfg)
		metrics := observability.NewMetrics()

		var recentStore *recent.Store
		if cfg.RecentFile != "" {
			recentStore, err = recent.New(cfg.RecentFile, cfg.RecentLimit)
			if err != nil {
				logger.Warn("recent-search store unavailable", "error", err)
			}
		}

		srv := httpadapter.NewServer(cfg.HTTPAddr, store, recentStore, logger, metrics)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
				stop()
			}
		}()

		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
		logger.Info("shutdown complete")
		return nil
	},
}

// --- Helpers ---

// rememberSearch records a successful lookup, best effort.
func rememberSearch(zip string) {
	if rs := openRecentStore(); rs != nil {
		_ = rs.Record(zip)
	}
}

func openRecentStore() *recent.Store {
	cfg, err := config.Load()
	if err != nil || cfg.RecentFile == "" {
		return nil
	}
	rs, err := recent.New(cfg.RecentFile, cfg.RecentLimit)
	if err != nil {
		return nil
	}
	return rs
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func dollarsOrNone(n int) string {
	if n == 0 {
		return "not included"
	}
	return fmt.Sprintf("$%d", n)
}

func deductibleOrNone(d *refdata.Deductible) string {
	if d == nil {
		return "not included"
	}
	return fmt.Sprintf("$%d deductible", d.Amount)
}
