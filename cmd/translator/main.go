package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hausa-translate/internal/config"
	"hausa-translate/internal/engine"
	"hausa-translate/internal/server"
	"hausa-translate/internal/service"
	"hausa-translate/internal/storage"
)

var (
	cfgFile string
	cfg     *config.Config
	archive *storage.SQLiteArchive
	svc     *service.Service
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "translator",
	Short: "Hausa-English translation service",
	Long: `Hausa-English translation service for NGO field teams:
- Bidirectional en/ha text translation with confidence scoring
- HTTP API and web interface (serve)
- Queryable translation history, archived to SQLite
- Markdown export of past translations`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		strategy, err := createStrategy(cfg)
		if err != nil {
			return err
		}

		if cfg.Database.Path != "" {
			archive, err = storage.NewSQLiteArchive(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
		}

		svc = service.NewService(cfg, engine.New(strategy), archive)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if archive != nil {
			archive.Close()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server and web interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		srv := server.New(cfg, svc, logger)
		return srv.Run()
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate TEXT",
	Short: "Translate one text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		result, err := svc.Translate(args[0], from, to)
		if err != nil {
			return err
		}

		fmt.Println(result.TranslatedText)
		fmt.Printf("(%s -> %s, confidence %.2f, %s)\n",
			result.SourceLanguage, result.TargetLanguage, result.ConfidenceScore, result.ModelUsed)
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Translate stdin lines as a batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		var texts []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				texts = append(texts, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(texts) == 0 {
			return fmt.Errorf("no input lines")
		}

		results, err := svc.BatchTranslate(texts, from, to)
		if err != nil {
			return err
		}

		for _, r := range results {
			fmt.Printf("%s\t%s\t%.2f\n", r.OriginalText, r.TranslatedText, r.ConfidenceScore)
		}
		return nil
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Run: func(cmd *cobra.Command, args []string) {
		for _, lang := range svc.Languages() {
			fmt.Printf("%s  %s (%s)\n", lang.Code, lang.Name, lang.NativeName)
		}
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived translation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		history, err := svc.ArchivedHistory(limit)
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Println("No translations recorded yet.")
			return nil
		}

		for _, r := range history {
			fmt.Printf("[%s] %s->%s  %q -> %q  (%.2f, %s)\n",
				r.Timestamp.Format("2006-01-02 15:04:05"),
				r.SourceLanguage, r.TargetLanguage,
				r.OriginalText, r.TranslatedText,
				r.ConfidenceScore, r.ModelUsed)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show translation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := svc.Stats()
		if err != nil {
			return err
		}

		fmt.Println("=== Translation Statistics ===")
		fmt.Printf("Total translations:  %d\n", stats.Total)
		fmt.Printf("English -> Hausa:    %d\n", stats.EnglishToHausa)
		fmt.Printf("Hausa -> English:    %d\n", stats.HausaToEnglish)
		fmt.Printf("Average confidence:  %.2f\n", stats.AvgConfidence)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archived history to a markdown report",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		result, err := svc.Export(limit)
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d translations to %s\n", result.Entries, result.Path)
		return nil
	},
}

func createStrategy(cfg *config.Config) (engine.Strategy, error) {
	switch cfg.Engine.Provider {
	case "dictionary":
		var extra []engine.Entry
		if cfg.Engine.DictionaryPath != "" {
			var err error
			extra, err = engine.LoadEntries(cfg.Engine.DictionaryPath)
			if err != nil {
				return nil, err
			}
		}
		return engine.NewDictionaryStrategy(extra, cfg.Engine.ConfidenceFloor), nil
	default:
		return nil, fmt.Errorf("unknown engine provider: %s", cfg.Engine.Provider)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	translateCmd.Flags().String("from", "en", "source language code")
	translateCmd.Flags().String("to", "ha", "target language code")
	batchCmd.Flags().String("from", "en", "source language code")
	batchCmd.Flags().String("to", "ha", "target language code")
	historyCmd.Flags().IntP("limit", "l", 50, "maximum number of entries to show")
	exportCmd.Flags().IntP("limit", "l", 100, "maximum number of entries to export")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
}
