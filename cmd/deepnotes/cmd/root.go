package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"deepnotes/cmd/deepnotes/cmd/extract"
	"deepnotes/cmd/deepnotes/cmd/generate"
	"deepnotes/cmd/deepnotes/cmd/transcribe"
	"deepnotes/cmd/deepnotes/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deepnotes",
	Short: "Generate structured lecture notes from recordings and slides",
	Long: `Generate structured lecture notes from lecture recordings and slide decks.
- Videos are transcribed locally with Whisper
- PDFs are read directly, with an OCR fallback for scanned decks
- The combined text is summarized into markdown notes by an AI provider`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(extract.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolP("verbose", "V", false, "verbose output")
}
