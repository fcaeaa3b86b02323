package main

import (
	"os"

	factbotcmder "github.com/luggagemoose/factbot/cmd/factbot"
)

func main() {
	cmd := factbotcmder.NewFactbotCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
