package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/staffdesk/staffdesk/internal/config"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

// errCallFailed is returned once a failed envelope has been printed
var errCallFailed = errors.New("call failed")

// rootOptions are the persistent flags shared by every command
type rootOptions struct {
	backend    string
	mockDelay  time.Duration
	verbose    bool
	timeout    time.Duration
	loadConfig func() (*config.Configuration, error)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hrctl",
		Short: "Inspect the staffdesk backend from a terminal",
		Long: `hrctl runs the same services as the HTTP API against the configured
backend and prints the response envelope as JSON.

Filters use the column:operator:value form, for example
  hrctl employees list --filter department:eq:Engineering --filter name:ilike:%an%`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "Override the configured backend (supabase or mock)")
	rootCmd.PersistentFlags().DurationVar(&opts.mockDelay, "mock-delay", -1, "Override the mock backend latency")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable logging to stderr")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Operation timeout")

	rootCmd.AddCommand(
		employeesCmd(opts),
		jobsCmd(opts),
		candidatesCmd(opts),
		applicationsCmd(opts),
		leaveCmd(opts),
		assetsCmd(opts),
		onboardingCmd(opts),
		trainingsCmd(opts),
		reviewsCmd(opts),
		analyticsCmd(opts),
	)
	return rootCmd
}

func main() {
	time.Local = time.UTC

	opts := &rootOptions{loadConfig: config.NewConfig}
	if err := newRootCmd(opts).Execute(); err != nil {
		if !errors.Is(err, errCallFailed) {
			fmt.Fprintln(os.Stderr, "Error:", ierr.Describe(err))
		}
		os.Exit(1)
	}
}

// applyOverrides folds the persistent flags into the loaded configuration
func (o *rootOptions) applyOverrides(cfg *config.Configuration) error {
	if o.backend != "" {
		cfg.Backend.Type = types.BackendType(o.backend)
	}
	if o.mockDelay >= 0 {
		cfg.Mock.Delay = o.mockDelay
	}
	return cfg.Validate()
}
