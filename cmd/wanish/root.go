package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neegor/wanish"
	"github.com/neegor/wanish/internal/config"
)

// rootFlags collects the command-line options before they are merged with
// the optional config file.
type rootFlags struct {
	htmlFile   string
	configFile string
	sentences  int
	positive   []string
	negative   []string
	headers    []string
	userAgent  string
	format     string
	timeout    time.Duration
	verbose    bool
}

// NewRootCmd builds the wanish command.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "wanish [url]",
		Short: "Extract and summarize the article from a web page",
		Long: `wanish fetches a web page, isolates the article content from
boilerplate, detects its language and prints an extractive summary together
with the title, canonical URL and lead image.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.htmlFile, "html", "", "read HTML from a file instead of fetching a URL ('-' for stdin)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "YAML config file")
	cmd.Flags().IntVarP(&flags.sentences, "sentences", "n", 0, "maximum summary sentences (default 5)")
	cmd.Flags().StringSliceVar(&flags.positive, "positive", nil, "positive class/id keywords")
	cmd.Flags().StringSliceVar(&flags.negative, "negative", nil, "negative class/id keywords")
	cmd.Flags().StringArrayVarP(&flags.headers, "header", "H", nil, "extra request header, key=value (repeatable)")
	cmd.Flags().StringVar(&flags.userAgent, "user-agent", "", "override the User-Agent header")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "output format: json, html or text")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "fetch timeout (default 30s)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func run(cmd *cobra.Command, args []string, flags *rootFlags) error {
	if flags.htmlFile == "" && len(args) == 0 {
		return fmt.Errorf("either a url argument or --html is required")
	}
	if flags.format != "json" && flags.format != "html" && flags.format != "text" {
		return fmt.Errorf("invalid format %q: must be json, html or text", flags.format)
	}

	cfg := config.Default()
	if flags.configFile != "" {
		loaded, err := config.Load(flags.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(&cfg, flags)

	headers, err := parseHeaders(flags.headers)
	if err != nil {
		return err
	}
	for k, v := range headers {
		if cfg.Headers == nil {
			cfg.Headers = map[string]string{}
		}
		cfg.Headers[k] = v
	}

	logger := zerolog.Nop()
	if flags.verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	w := wanish.New(
		wanish.WithPositiveKeywords(cfg.PositiveKeywords),
		wanish.WithNegativeKeywords(cfg.NegativeKeywords),
		wanish.WithSummarySentences(cfg.SummarySentences),
		wanish.WithHeaders(cfg.Headers),
		wanish.WithUserAgent(cfg.UserAgent),
		wanish.WithTimeout(cfg.Timeout.Std()),
		wanish.WithLogger(logger),
	)

	ctx := cmd.Context()
	var report *wanish.Report
	if flags.htmlFile != "" {
		src, err := readHTML(flags.htmlFile, cmd)
		if err != nil {
			return err
		}
		baseURL := ""
		if len(args) == 1 {
			baseURL = args[0]
		}
		report, err = w.RunHTML(ctx, src, baseURL)
		if err != nil {
			return err
		}
	} else {
		report, err = w.Run(ctx, args[0])
		if err != nil {
			return err
		}
	}

	return writeReport(cmd, report, flags.format)
}

// applyFlags lets explicit flags win over the config file.
func applyFlags(cfg *config.Config, flags *rootFlags) {
	if flags.sentences > 0 {
		cfg.SummarySentences = flags.sentences
	}
	if len(flags.positive) > 0 {
		cfg.PositiveKeywords = flags.positive
	}
	if len(flags.negative) > 0 {
		cfg.NegativeKeywords = flags.negative
	}
	if flags.userAgent != "" {
		cfg.UserAgent = flags.userAgent
	}
	if flags.timeout > 0 {
		cfg.Timeout = config.Duration(flags.timeout)
	}
}

// parseHeaders turns repeated key=value flags into a header map.
func parseHeaders(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid header %q: expected key=value", pair)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers, nil
}

func readHTML(path string, cmd *cobra.Command) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func writeReport(cmd *cobra.Command, report *wanish.Report, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "html":
		_, err := fmt.Fprintln(out, report.ArticleHTML())
		return err
	default:
		_, err := fmt.Fprintln(out, report.Description)
		return err
	}
}
