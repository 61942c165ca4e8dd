package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/deliverability-scorer/internal/adapters/message"
	"github.com/mikey/deliverability-scorer/internal/config"
	"github.com/mikey/deliverability-scorer/internal/core"
	"github.com/mikey/deliverability-scorer/internal/di"
	"github.com/mikey/deliverability-scorer/internal/logging"
	"github.com/mikey/deliverability-scorer/internal/ports"
	"github.com/mikey/deliverability-scorer/internal/utils"
)

// ErrUnknownPhrase is returned by lookup when no rule matches
var ErrUnknownPhrase = errors.New("phrase is not in the dictionary")

type options struct {
	// Input flags
	subject         string
	body            string
	file            string
	message         bool
	personalization int

	// Output and setup flags
	format     string
	noColor    bool
	rulesFile  string
	configFile string
	verbose    bool
	jsonLog    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "deliverability-scorer",
		Short: "Score an outreach email for spam risk, quality and warmth",
		Long: `Scores an email draft against a dictionary of risky phrases and reports
the spam, quality and warmth scores along with every flagged phrase.

The body is taken from --body, from --file (use "-" for stdin) or from stdin
when neither is given. With --message the input is parsed as an RFC 5322
message and the subject is taken from its headers.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, opts, func(c *dig.Container) error {
				return c.Invoke(func(
					logger *zap.Logger,
					service *core.ScoringService,
					processor *utils.TextProcessor,
					reporter ports.Reporter,
					cfg *config.Config,
				) error {
					email, err := readEmail(cmd.InOrStdin(), opts)
					if err != nil {
						return err
					}
					email.Subject = processor.ProcessText(email.Subject, 0)
					email.Body = processor.ProcessText(email.Body, cfg.GetScoring().MaxBodySize)
					email.PersonalizationLength = opts.personalization

					result := service.Score(email)
					logger.Debug("Email scored",
						zap.Int("spam_score", result.SpamScore),
						zap.Int("matches", len(result.Matches)))
					return reporter.Report(cmd.OutOrStdout(), email, result)
				})
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.subject, "subject", "", "Email subject")
	flags.StringVar(&opts.body, "body", "", "Email body")
	flags.StringVar(&opts.file, "file", "", "Read the body (or the whole message with --message) from a file, \"-\" for stdin")
	flags.BoolVar(&opts.message, "message", false, "Parse the input as an RFC 5322 message")
	flags.IntVar(&opts.personalization, "personalization", 0, "Length in characters of the personal-connection text")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.format, "format", "text", "Output format (text, json)")
	persistent.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	persistent.StringVar(&opts.rulesFile, "rules", "", "YAML file with additional phrase rules")
	persistent.StringVar(&opts.configFile, "config", "", "Path to config file")
	persistent.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	persistent.BoolVar(&opts.jsonLog, "json-log", false, "Output logs in JSON format")

	cmd.AddCommand(newRulesCmd(opts), newLookupCmd(opts))
	return cmd
}

func newRulesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the phrase dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, opts, func(c *dig.Container) error {
				return c.Invoke(func(dict *core.Dictionary) error {
					tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "PHRASE\tSEVERITY\tRATIONALE")
					for _, rule := range dict.Rules() {
						fmt.Fprintf(tw, "%s\t%s\t%s\n", rule.Phrase, rule.Severity, rule.Rationale)
					}
					return tw.Flush()
				})
			})
		},
	}
}

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup PHRASE",
		Short: "Show the rule for a phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, opts, func(c *dig.Container) error {
				return c.Invoke(func(dict *core.Dictionary) error {
					rule, ok := dict.Lookup(args[0])
					if !ok {
						return fmt.Errorf("%w: %q", ErrUnknownPhrase, args[0])
					}
					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "Phrase:     %s\n", rule.Phrase)
					fmt.Fprintf(out, "Severity:   %s\n", rule.Severity)
					fmt.Fprintf(out, "Rationale:  %s\n", rule.Rationale)
					fmt.Fprintf(out, "Suggestion: %s\n", rule.Suggestion)
					return nil
				})
			})
		},
	}
}

// withContainer loads configuration, applies flag overrides, builds the
// container and releases its resources once fn returns.
func withContainer(cmd *cobra.Command, opts *options, fn func(*dig.Container) error) error {
	cfg, err := config.New(opts.configFile)
	if err != nil {
		return err
	}

	v := cfg.GetViper()
	if cmd.Flags().Changed("format") {
		v.Set("output.format", opts.format)
	}
	if cmd.Flags().Changed("rules") {
		v.Set("scoring.rules_file", opts.rulesFile)
	}
	if opts.noColor {
		v.Set("output.color", false)
	}

	var logger *zap.Logger
	if opts.verbose || opts.jsonLog {
		logger, err = logging.InitConsoleLogger(opts.verbose, opts.jsonLog)
	} else {
		logger, err = logging.InitLogger(cfg)
	}
	if err != nil {
		return err
	}
	defer logger.Sync()

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("Loaded configuration from file", zap.String("file", used))
	}

	container, err := di.BuildContainer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build dependency container: %w", err)
	}

	runErr := fn(container)

	// Stop the cache if one was created
	_ = container.Invoke(func(cache core.ScoreCache) {
		if stopper, ok := cache.(interface{ Stop() }); ok {
			stopper.Stop()
		}
	})

	return dig.RootCause(runErr)
}

// readEmail assembles the email from flags, a file or stdin
func readEmail(stdin io.Reader, opts *options) (*core.Email, error) {
	var input io.Reader
	switch {
	case opts.file == "-":
		input = stdin
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		input = f
	case opts.body == "" && (opts.message || opts.subject == ""):
		input = stdin
	}

	if opts.message {
		if input == nil {
			return nil, errors.New("--message needs input from --file or stdin")
		}
		email, err := message.Read(input)
		if err != nil {
			return nil, err
		}
		if opts.subject != "" {
			email.Subject = opts.subject
		}
		return email, nil
	}

	email := &core.Email{Subject: opts.subject, Body: opts.body}
	if input != nil {
		data, err := io.ReadAll(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		email.Body = string(data)
	}
	return email, nil
}
