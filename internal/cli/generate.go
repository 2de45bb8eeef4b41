package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/zbx-tools/zbxdoc/internal/docgen"
	"github.com/zbx-tools/zbxdoc/internal/export"
	"github.com/zbx-tools/zbxdoc/internal/translate"
)

const defaultOutput = "README_template.md"

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Bool("translate", false, "append a translation above each original description")
	generateCmd.Flags().String("lang", "ru", "translation target language code")
	generateCmd.Flags().Duration("timeout", 10*time.Second, "translation request timeout")

	_ = viper.BindPFlag("translate", generateCmd.Flags().Lookup("translate"))
	_ = viper.BindPFlag("lang", generateCmd.Flags().Lookup("lang"))
	_ = viper.BindPFlag("timeout", generateCmd.Flags().Lookup("timeout"))
}

var generateCmd = &cobra.Command{
	Use:   "generate <template.yaml> [output.md]",
	Short: "Render a template export as Markdown",
	Long: "Render a Zabbix template export as a Markdown document. The output file\n" +
		"defaults to " + defaultOutput + "; pass \"-\" to write to stdout.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), args)
	},
}

func runGenerate(ctx context.Context, args []string) error {
	input := args[0]
	output := defaultOutput
	if len(args) == 2 {
		output = args[1]
	}

	logger := newLogger()

	// Fail before parsing when the input is missing.
	if _, err := os.Stat(input); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("template file %s not found", input)
		}
		return fmt.Errorf("stat template %s: %w", input, err)
	}

	doc, err := export.Load(input)
	if err != nil {
		return err
	}
	logger.Debug().Str("input", input).Int("templates", len(doc.Export.Templates)).Msg("template export loaded")

	translateEnabled := viper.GetBool("translate")
	var translator translate.Translator
	if translateEnabled {
		translator = translate.NewGoogleTranslator(
			viper.GetString("lang"),
			translate.WithTimeout(viper.GetDuration("timeout")),
		)
	}
	augmenter := translate.NewAugmenter(translator, translateEnabled, logger)

	rendered := docgen.New(augmenter).Generate(ctx, doc)

	if output == "-" {
		_, err := io.WriteString(os.Stdout, rendered)
		return err
	}

	if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printDone(output)
	return nil
}

func printDone(path string) {
	message := fmt.Sprintf("Documentation written to %s", path)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		color.Green(message)
		return
	}
	fmt.Println(message)
}
