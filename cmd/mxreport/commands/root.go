package commands

import (
	"context"
	"os"

	"github.com/Dynom/mxreport/cmd/mxreport/config"
	"github.com/spf13/cobra"
)

var (
	runSettings = &RunSettings{}
)

var rootCmd = &cobra.Command{
	Use:   "mxreport",
	Short: "Report the preferred mail exchange of every domain in a list of e-mail addresses",
	Long: `Reads one e-mail address per line, resolves the MX records of every unique and syntactically valid domain and
writes the most preferred mail exchange per domain to a report. Addresses with an invalid domain end up in a second
report.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, runSettings)
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&runSettings.ConfigFile, "config", config.DefaultFileName, "TOML configuration file, optional unless set explicitly")
	flags.StringVar(&runSettings.Input, "input", "", "File with one e-mail address per line (default \"emails.txt\")")
	flags.StringVar(&runSettings.Valid, "output", "", "Report of resolved domains (default \"output.txt\")")
	flags.StringVar(&runSettings.Invalid, "invalid-output", "", "Report of addresses with an invalid domain (default \"invalid-domains.txt\")")
	flags.IntVar(&runSettings.Workers, "workers", 0, "Number of concurrent lookups (default 1)")
	flags.StringVar(&runSettings.Resolver, "resolver", "", "Custom resolver to use as ip or ip:port, otherwise system default is used")
	flags.Var(&runSettings.Client, "client", "\"system\" uses the Go resolver, \"direct\" queries the resolver with its own DNS client")
	flags.Var(&runSettings.Timeout, "timeout", "Timeout per lookup, e.g. 5s. By default the resolver decides")
	flags.StringVar(&runSettings.LogLevel, "log-level", "", "Log level (default \"warn\")")
	flags.Var(&runSettings.LogFormat, "log-format", "The log output format \"json\" or \"text\"")
}
