package main

import (
	"fmt"
	"os"

	"voicenote/cmd/voicenote/cmd"
	"voicenote/internal/config"

	// Import providers to register them
	_ "voicenote/internal/app/stt/openai"
	_ "voicenote/internal/app/stt/whisper_server"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
		// Continue execution - environment variables may be set system-wide
	}

	cmd.Execute()
}
