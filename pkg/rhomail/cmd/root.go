package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/runrho/rhomail/pkg/mail"
	"github.com/runrho/rhomail/pkg/rhomail/config"
)

// SenderFactory builds the mail sender for one invocation. Tests swap it
// for a fake so no network connection is ever attempted.
type SenderFactory func(cfg *config.Config, user, password string, log *zap.SugaredLogger) mail.Sender

type Config struct {
	ConfigPath   string
	OutputWriter io.Writer
	NewSender    SenderFactory
}

type runtimeState struct {
	configPath       string
	cfg              *config.Config
	hostOverride     string
	portOverride     int
	domainOverride   string
	fromNameOverride string
	dryRun           bool
	verbose          bool
	writer           io.Writer
	log              *zap.SugaredLogger
	newSender        SenderFactory
}

type runtimeKey struct{}

func DefaultConfig() Config {
	return Config{
		ConfigPath:   config.DefaultConfigPath(),
		OutputWriter: os.Stdout,
		NewSender: func(cfg *config.Config, user, password string, log *zap.SugaredLogger) mail.Sender {
			return mail.NewSender(cfg.RelayHost, cfg.RelayPort, user, password, log)
		},
	}
}

func NewRootCommand(cfg Config) *cobra.Command {
	rt := &runtimeState{
		configPath: cfg.ConfigPath,
		writer:     cfg.OutputWriter,
		newSender:  cfg.NewSender,
	}

	root := &cobra.Command{
		Use:   "rhomail <handle> [subject] [body]",
		Short: "Send a test mail to a runrho.dev onboarding address",
		Args:  cobra.ArbitraryArgs,
		// Errors are printed by the commands themselves so they land on
		// the output writer, not cobra's stderr.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if rt.writer == nil {
				rt.writer = os.Stdout
			}
			if rt.newSender == nil {
				rt.newSender = DefaultConfig().NewSender
			}
			if rt.configPath == "" {
				rt.configPath = config.DefaultConfigPath()
			}
			if rt.domainOverride == "" {
				rt.domainOverride = os.Getenv("RHOMAIL_DOMAIN")
			}
			if !rt.verbose {
				rt.verbose = strings.EqualFold(os.Getenv("RHOMAIL_VERBOSE"), "true")
			}
			rt.log = setupLogger(rt.verbose)

			// Commands that never touch the relay don't need config
			if cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}

			loaded, err := config.Load(rt.configPath)
			if err != nil {
				fmt.Fprintf(rt.writer, "ERROR: %v\n", err)
				return err
			}
			if rt.hostOverride != "" {
				loaded.RelayHost = rt.hostOverride
			}
			if rt.portOverride != 0 {
				loaded.RelayPort = rt.portOverride
			}
			if rt.domainOverride != "" {
				loaded.Domain = rt.domainOverride
			}
			if rt.fromNameOverride != "" {
				loaded.SenderName = rt.fromNameOverride
			}
			if err := loaded.Validate(); err != nil {
				fmt.Fprintf(rt.writer, "ERROR: %v\n", err)
				return err
			}
			rt.cfg = loaded
			return nil
		},
		RunE: runSend,
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", rt.configPath, "Path to config file")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "Enable verbose debug logging on stderr")
	root.Flags().StringVar(&rt.hostOverride, "relay-host", "", "Mail relay host override")
	root.Flags().IntVar(&rt.portOverride, "relay-port", 0, "Mail relay port override")
	root.Flags().StringVar(&rt.domainOverride, "domain", "", "Recipient domain override")
	root.Flags().StringVar(&rt.fromNameOverride, "from-name", "", "Display name for the From header")
	root.Flags().BoolVar(&rt.dryRun, "dry-run", false, "Print the composed message instead of sending it")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewCompletionCommand(),
		NewVersionCommand(),
	)

	return root
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}

func (rt *runtimeState) Writer() io.Writer {
	if rt.writer != nil {
		return rt.writer
	}
	return os.Stdout
}

func setupLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	zlog, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return zlog.Sugar()
}
