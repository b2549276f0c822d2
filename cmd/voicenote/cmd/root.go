package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"voicenote/cmd/voicenote/cmd/serve"
	"voicenote/cmd/voicenote/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voicenote",
	Short: "A voice note transcription API",
	Long: `VoiceNote Transcriber exposes an HTTP endpoint that accepts an audio
upload, transcribes it with a speech recognizer and asks a locally hosted
language model to reformat the transcript into titled markdown.`,
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
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
