// Package main provides the CLI entrypoint for cats.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/cats/internal/autocorrect"
	"github.com/verte-zerg/cats/internal/config"
	"github.com/verte-zerg/cats/internal/diff"
	"github.com/verte-zerg/cats/internal/model"
	"github.com/verte-zerg/cats/internal/paragraph"
	"github.com/verte-zerg/cats/internal/practice"
	"github.com/verte-zerg/cats/internal/prompt"
	"github.com/verte-zerg/cats/internal/race"
	"github.com/verte-zerg/cats/internal/stats"
	"github.com/verte-zerg/cats/internal/tui"
	"github.com/verte-zerg/cats/internal/upload"
)

const (
	defaultMetric = diff.NameMewtations
	defaultLimit  = 2
)

var (
	runTest         bool
	practicePath    string
	practiceDict    string
	practiceAuto    bool
	practiceMetric  string
	practiceLimit   int
	practiceUserID  int
	practiceReport  bool
	practiceUpload  string
	correctMetric   string
	correctLimit    int
	correctDict     string
	correctShowCost bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cats [topic...]",
		Short:         "Typing Test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().BoolVarP(&runTest, "test", "t", false, "run typing test")
	rootCmd.Flags().StringVar(&practicePath, "paragraphs", config.DefaultParagraphsPath(), "paragraph file, one paragraph per line")
	rootCmd.Flags().StringVar(&practiceDict, "dictionary", "", "word list for autocorrect (default: words of the paragraph)")
	rootCmd.Flags().BoolVar(&practiceAuto, "autocorrect", false, "autocorrect each word when space is pressed")
	rootCmd.Flags().StringVar(&practiceMetric, "metric", defaultMetric, "autocorrect metric ("+strings.Join(diff.Names(), ", ")+")")
	rootCmd.Flags().IntVar(&practiceLimit, "limit", defaultLimit, "largest difference autocorrect will fix")
	rootCmd.Flags().IntVar(&practiceUserID, "user-id", 0, "id sent with progress reports")
	rootCmd.Flags().BoolVar(&practiceReport, "report", false, "write progress reports as JSON lines to stderr")
	rootCmd.Flags().StringVar(&practiceUpload, "upload-url", "", "WebSocket URL that receives progress reports")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCorrectCmd())
	rootCmd.AddCommand(newRaceCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, args []string) error {
	if !runTest {
		return cmd.Help()
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "paragraphs", &practicePath, fileCfg.Practice.Paragraphs)
	applyConfig(cmd, "dictionary", &practiceDict, fileCfg.Practice.Dictionary)
	applyConfig(cmd, "autocorrect", &practiceAuto, fileCfg.Practice.Autocorrect)
	applyConfig(cmd, "metric", &practiceMetric, fileCfg.Practice.Metric)
	applyConfig(cmd, "limit", &practiceLimit, fileCfg.Practice.Limit)
	applyConfig(cmd, "user-id", &practiceUserID, fileCfg.Race.UserID)
	applyConfig(cmd, "report", &practiceReport, fileCfg.Race.Report)
	applyConfig(cmd, "upload-url", &practiceUpload, fileCfg.Race.UploadURL)

	cfg := model.Config{
		Paragraphs:  practicePath,
		Dictionary:  practiceDict,
		Topics:      args,
		Autocorrect: practiceAuto,
		Metric:      practiceMetric,
		Limit:       practiceLimit,
		UserID:      practiceUserID,
		Report:      practiceReport,
		UploadURL:   practiceUpload,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	paragraphs, err := paragraph.LoadLines(cfg.Paragraphs)
	if err != nil {
		return fmt.Errorf("failed to load paragraphs: %w", err)
	}
	paragraphs = paragraph.NewShuffler().Shuffle(paragraphs)

	opts := []practice.Option{practice.WithTopics(cfg.Topics)}
	if cfg.Autocorrect {
		metric, err := diff.Lookup(cfg.Metric)
		if err != nil {
			return err
		}
		var dictionary []string
		if cfg.Dictionary != "" {
			dictionary, err = paragraph.LoadLines(cfg.Dictionary)
			if err != nil {
				return fmt.Errorf("failed to load dictionary: %w", err)
			}
		}
		limit := cfg.Limit
		opts = append(opts, practice.WithAutocorrect(dictionary, func(words []string) *autocorrect.Corrector {
			return autocorrect.New(words, metric, limit)
		}))
	}

	ctx := context.Background()
	switch {
	case cfg.UploadURL != "":
		ws, err := upload.Dial(ctx, cfg.UploadURL)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := ws.Close(); cerr != nil {
				logErrf("failed to close upload connection: %v\n", cerr)
			}
		}()
		opts = append(opts, practice.WithUploader(ws, cfg.UserID))
	case cfg.Report:
		opts = append(opts, practice.WithUploader(upload.NewWriter(os.Stderr), cfg.UserID))
	}

	session := practice.New(paragraphs, opts...)
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return prompt.Run(ctx, session, os.Stdin, os.Stdout, nil)
	}

	m := tui.NewModel(session)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if msg := m.Message(); msg != "" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), msg); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newCorrectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correct word...",
		Short: "Autocorrect words against a dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCorrectCmd,
	}
	cmd.Flags().StringVar(&correctMetric, "metric", defaultMetric, "difference metric ("+strings.Join(diff.Names(), ", ")+")")
	cmd.Flags().IntVar(&correctLimit, "limit", defaultLimit, "largest difference to correct")
	cmd.Flags().StringVar(&correctDict, "dictionary", "", "word list, one word per line")
	cmd.Flags().BoolVar(&correctShowCost, "count", false, "print the number of edit-distance subproblems evaluated")
	return cmd
}

func runCorrectCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "metric", &correctMetric, fileCfg.Practice.Metric)
	applyConfig(cmd, "limit", &correctLimit, fileCfg.Practice.Limit)
	applyConfig(cmd, "dictionary", &correctDict, fileCfg.Practice.Dictionary)
	if correctDict == "" {
		return fmt.Errorf("--dictionary is required")
	}
	if correctLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	words, err := paragraph.LoadLines(correctDict)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	var counter *diff.Mewtations
	var metric diff.Metric
	if strings.EqualFold(correctMetric, diff.NameMewtations) {
		counter = diff.NewMewtations()
		metric = counter.Distance
	} else {
		metric, err = diff.Lookup(correctMetric)
		if err != nil {
			return err
		}
	}

	c := autocorrect.New(words, metric, correctLimit)
	out := cmd.OutOrStdout()
	for _, word := range args {
		if _, err := fmt.Fprintf(out, "%s -> %s\n", word, c.Correct(word)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if correctShowCost && counter != nil {
		if _, err := fmt.Fprintf(out, "subproblems: %d\n", counter.Calls()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newRaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "race file",
		Short: "Show per-word times and fastest words for a recorded race",
		Args:  cobra.ExactArgs(1),
		RunE:  runRaceCmd,
	}
}

func runRaceCmd(cmd *cobra.Command, args []string) error {
	r, err := race.LoadRace(args[0])
	if err != nil {
		return err
	}
	wt := r.WordsAndTimes()
	fastest, err := race.FastestWords(wt)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	players := r.PlayerNames()
	if err := stats.RenderTimes(out, players, wt); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderFastest(out, players, fastest); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// applyConfig copies a config file value into target unless the flag was set.
func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# cats configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# paragraphs = %q
# dictionary = ""          # Word list for autocorrect (default: words of the paragraph)
# autocorrect = false      # Autocorrect each word when space is pressed
# metric = %q     # One of: %s
# limit = %d               # Largest difference autocorrect will fix

[race]
# user-id = 0              # Id sent with progress reports
# report = false           # Write progress reports as JSON lines to stderr
# upload-url = ""          # WebSocket URL that receives progress reports
`,
		config.DefaultParagraphsPath(),
		defaultMetric,
		strings.Join(diff.Names(), ", "),
		defaultLimit,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Paragraphs == "" {
		return fmt.Errorf("--paragraphs must not be empty")
	}
	for _, topic := range cfg.Topics {
		if strings.ToLower(topic) != topic {
			return fmt.Errorf("topics should be lowercase: %q", topic)
		}
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	if cfg.Autocorrect {
		if _, err := diff.Lookup(cfg.Metric); err != nil {
			return err
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
