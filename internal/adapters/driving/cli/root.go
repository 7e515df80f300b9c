package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driving"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// annotationNoServices marks commands that run without core services.
const annotationNoServices = "no-services"

// Services holds the core services the commands drive.
type Services struct {
	Pipeline      driving.PipelineService
	Documents     driving.DocumentService
	Discrepancies driving.DiscrepancyService

	// Rules is the active rule set in evaluation order.
	Rules []driven.Rule

	// RulesSource describes where the rule set came from.
	RulesSource string
}

// Options are the persistent flag values handed to a Bootstrap.
type Options struct {
	Verbose   bool
	RulesFile string
}

// Bootstrap builds the services once flags are known. The returned close
// function releases the resources behind them and may be nil.
type Bootstrap func(ctx context.Context, opts Options) (*Services, func() error, error)

var (
	pipelineService    driving.PipelineService
	documentService    driving.DocumentService
	discrepancyService driving.DiscrepancyService
	ruleSet            []driven.Rule
	ruleSetSource      string
)

var (
	bootstrap     Bootstrap
	closeServices func() error
)

// Persistent flags.
var (
	verboseFlag   bool
	rulesFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "discrepancy-finder",
	Short: "Find discrepancies in table reports",
	Long: `discrepancy-finder parses HTML table reports, stores them as documents,
validates every document against a rule set and records the discrepancies found.`,
	SilenceUsage:      true,
	PersistentPreRunE: prepareServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&rulesFileFlag, "rules", "", "Rule set file (TOML)")
}

// SetServices installs the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	pipelineService = s.Pipeline
	documentService = s.Documents
	discrepancyService = s.Discrepancies
	ruleSet = s.Rules
	ruleSetSource = s.RulesSource
}

// Execute runs the root command. boot is called before any command that
// needs services; it may be nil when SetServices was called beforehand.
func Execute(ctx context.Context, boot Bootstrap) error {
	bootstrap = boot
	defer func() {
		bootstrap = nil
		if closeServices != nil {
			if err := closeServices(); err != nil {
				logger.Warn("Failed to close storage: %v", err)
			}
			closeServices = nil
		}
	}()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func prepareServices(cmd *cobra.Command, _ []string) error {
	if verboseFlag {
		logger.SetVerbose(true)
	}
	if bootstrap == nil || cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}

	svc, closeFn, err := bootstrap(cmd.Context(), Options{
		Verbose:   verboseFlag,
		RulesFile: rulesFileFlag,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	if svc == nil {
		return errors.New("bootstrap returned no services")
	}

	SetServices(svc)
	closeServices = closeFn
	return nil
}
