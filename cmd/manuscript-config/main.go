package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/chainbase-labs/manuscript-settings/internal/application"
	"github.com/chainbase-labs/manuscript-settings/internal/config"
	"github.com/chainbase-labs/manuscript-settings/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "manuscript-config: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, opts ...config.Option) error {
	kingpinApp := kingpin.New("manuscript-config", "Resolves Manuscript settings and prints the values derived from them")
	verbose := kingpinApp.Flag("verbose", "Enable debug logging").Short('v').Bool()

	chainsCmd := kingpinApp.Command("chains-url", "Print the network chains metadata URL")
	statusCmd := kingpinApp.Command("status", "Print the status bar text")
	imagesCmd := kingpinApp.Command("images", "Print the job manager and GraphQL engine images for this architecture")
	baseURLCmd := kingpinApp.Command("base-url", "Print the Chainbase API base URL")
	reportCmd := kingpinApp.Command("report", "Print every derived value as YAML")
	showCmd := kingpinApp.Command("show", "Print the resolved settings as YAML; fails if they cannot be resolved")
	manuscriptsCmd := kingpinApp.Command("manuscripts", "Summarize a manuscript pipeline file")
	manuscriptsFile := manuscriptsCmd.Arg("file", "Path to the pipeline YAML file").Required().String()

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	logger, err := logging.New(logging.WithLevel(level))
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(logger, opts...)
	provider := app.Provider()

	switch command {
	case chainsCmd.FullCommand():
		_, err = fmt.Fprintln(out, provider.ChainsURL())
	case statusCmd.FullCommand():
		_, err = fmt.Fprintln(out, provider.StatusText())
	case imagesCmd.FullCommand():
		jobManager, graphQLEngine := provider.DockerImages()
		_, err = fmt.Fprintf(out, "%s\n%s\n", jobManager, graphQLEngine)
	case baseURLCmd.FullCommand():
		_, err = fmt.Fprintln(out, provider.BaseURL())
	case reportCmd.FullCommand():
		err = writeYAML(out, app.Report())
	case showCmd.FullCommand():
		s, resolveErr := provider.Settings()
		if resolveErr != nil {
			return fmt.Errorf("resolve settings: %w", resolveErr)
		}
		err = writeYAML(out, s)
	case manuscriptsCmd.FullCommand():
		err = printManuscripts(out, *manuscriptsFile)
	}
	return err
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}

func printManuscripts(out io.Writer, path string) error {
	configs, err := config.LoadManuscripts(path)
	if err != nil {
		return err
	}

	for _, m := range configs.Manuscripts {
		if _, err := fmt.Fprintf(out, "%s\tchain=%s table=%s sources=%d transforms=%d sinks=%d\n",
			m.Name, m.Chain, m.Table, len(m.Sources), len(m.Transforms), len(m.Sinks)); err != nil {
			return err
		}
	}
	return nil
}
