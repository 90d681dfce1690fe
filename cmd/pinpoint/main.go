package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pinpoint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pinpoint",
	Short: "Render source diagnostics as box-drawn terminal diagrams",
	Long:  `pinpoint renders diagnostic reports (a message plus labeled source ranges) as box-drawn terminal diagrams`,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
