package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zplane/zexpr"
)

var funcsCmd = &cobra.Command{
	Use:   "funcs",
	Short: "List the functions and constants usable in expressions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "variable:  z")
		fmt.Fprintf(w, "constants: %s\n", strings.Join(zexpr.Constants(), " "))
		fmt.Fprintf(w, "functions: %s\n", strings.Join(zexpr.Builtins(), " "))
		fmt.Fprintln(w, "operators: + - * / ^ (also **), unary -, parentheses; 2i is an imaginary literal")
	},
}

func init() {
	rootCmd.AddCommand(funcsCmd)
}
