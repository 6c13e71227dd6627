package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"compose-mode/internal/app"
	"compose-mode/internal/color"
	"compose-mode/internal/modes"
)

var (
	modesFileFlag      string
	outputFlag         string
	machineReadableArg bool
	jsonArg            bool
	debugArg           bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "compose-mode [mode]",
	Short: "Switch between named stacks of docker compose files",
	Long: `compose-mode switches a project between "modes": named lists of docker compose
files defined in compose-modes.yml. Switching merges the mode's files with
docker compose and writes the result to docker-compose.yml, then records the
active mode.

The modes file is searched for in the current directory and every directory
above it, stopping at the root of the enclosing git repository.

Examples:
  compose-mode              # list modes, marking the active one
  compose-mode dev          # switch to the "dev" mode
  compose-mode --json       # print {"mode": ..., "dirty": ...} for scripts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. an unknown mode or a failing compose merge)
	SilenceUsage:  true,
	SilenceErrors: true,
}

// runRoot switches to, lists, or reports the status of modes
func runRoot(cmd *cobra.Command, args []string) error {
	mode := app.ListMode
	if len(args) == 1 {
		mode = args[0]
	}

	cfg := app.NewConfig(mode, debugArg)
	cfg.ModesFile = modesFileFlag
	cfg.Output = outputFlag
	cfg.MachineReadable = machineReadableArg
	cfg.JSON = jsonArg
	cfg.Stdout = cmd.OutOrStdout()

	cfg.Color = cfg.Stdout == os.Stdout && color.Enabled(os.Stdout)
	color.Configure(cfg.Color)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}

	return application.Run(cmd.Context())
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "compose-mode version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(rootCmd, err)
		stop()
		os.Exit(1)
	}
}

// reportError prints err to stderr. A missing modes file is a usage problem,
// so the usage text follows it.
func reportError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	if errors.Is(err, modes.ErrModesFileNotFound) {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s", cmd.UsageString())
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.Flags().StringVar(&modesFileFlag, "modes-file", "", "The name or path of the modes file, will search in containing directories if a relative name is given (default \"compose-modes.yml\")")
	rootCmd.Flags().StringVar(&outputFlag, "output", "", "The file to output the effective configuration to (default \"docker-compose.yml\")")
	rootCmd.Flags().BoolVar(&machineReadableArg, "machine-readable", false, "Output the status in easy machine parseable format then exit")
	rootCmd.Flags().BoolVar(&jsonArg, "json", false, "Output the status in json then exit")
	rootCmd.PersistentFlags().BoolVar(&debugArg, "debug", false, "Enable debug logging on stderr")

	// cobra only adds its own --version flag when none exists, so this one also gets -V
	rootCmd.Flags().BoolP("version", "V", false, "Print the version and exit")
}
