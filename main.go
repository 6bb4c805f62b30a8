package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/reem-012/gpg-checker/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "gpg-checker",
	Short: "gpg-checker - Finds GPG encrypted files and their recipients.",
	Long: `gpg-checker scans a directory and reports which files are OpenPGP (GPG)
encrypted and which key they are encrypted to, without decrypting anything.

Features:
  - Identify encrypted files by their binary OpenPGP packet framing
  - Extract the recipient key ID from each encrypted file
  - Render the results as a terminal table and/or a CSV report

Usage:
  gpg-checker <command> [flags]

Available Commands:
  scan       Scan a directory for GPG encrypted files

Run 'gpg-checker help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		banner := figure.NewColorFigure("gpg-checker", "", "green", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Run 'gpg-checker --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.ScanCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
