package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/config/file"
	"github.com/custodia-labs/discrepancy-finder/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage the rule set",
	Long:  `List the active rules or write the default rule set to a file.`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active rules",
	Args:  cobra.NoArgs,
	RunE:  runRulesList,
}

var rulesInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default rule set to a file",
	Long: `Writes the default rule set as TOML. The path defaults to the --rules
flag, then to ~/.discrepancy-finder/rules.toml.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runRulesInit,
}

// rulesInitForce is a flag for the init command.
var rulesInitForce bool

func init() {
	rulesInitCmd.Flags().BoolVarP(&rulesInitForce, "force", "f", false, "Overwrite an existing file")

	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesInitCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRulesList(cmd *cobra.Command, _ []string) error {
	if len(ruleSet) == 0 {
		cmd.Println("No rules configured.")
		return nil
	}

	if ruleSetSource != "" {
		cmd.Printf("Rules from %s:\n\n", ruleSetSource)
	}

	rows := make([][]string, 0, len(ruleSet))
	for _, rule := range ruleSet {
		rows = append(rows, []string{rule.Name(), formatParams(rule.Parameters())})
	}
	return writeTable(cmd.OutOrStdout(), []string{"NAME", "PARAMETERS"}, rows)
}

func runRulesInit(cmd *cobra.Command, args []string) error {
	path := rulesFileFlag
	if len(args) == 1 {
		path = args[0]
	}

	f, err := file.NewRuleSetFile(path)
	if err != nil {
		return fmt.Errorf("failed to resolve rule set file: %w", err)
	}

	if err := f.Save(rules.DefaultConfigs(), rulesInitForce); err != nil {
		if errors.Is(err, file.ErrFileExists) {
			return fmt.Errorf("rule set file already exists: %s (use --force to overwrite)", f.Path())
		}
		return fmt.Errorf("failed to write rule set: %w", err)
	}

	cmd.Printf("Default rule set written to %s\n", f.Path())
	return nil
}
