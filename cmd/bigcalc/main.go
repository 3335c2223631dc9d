// Command bigcalc is a small arbitrary-precision calculator built on top
// of the bigint package, exercising its operator surface end-to-end. It
// is a cobra root command with eval and repl subcommands, a persistent
// --grouped display flag, and RunE handlers that return errors instead
// of calling os.Exit directly.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FireF0xIl/bigint"
	"github.com/FireF0xIl/bigint/internal/bigintconv"
)

func main() {
	var grouped bool

	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
	}
	rootCmd.PersistentFlags().BoolVar(&grouped, "grouped", false, "print results with thousands separators")

	evalCmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate one expression: LHS OP RHS",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := evalExpr(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			printResult(result, grouped)
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions from stdin, one per line, until EOF",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(os.Stdin, os.Stdout, grouped)
		},
	}

	rootCmd.AddCommand(evalCmd, replCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printResult(result string, grouped bool) {
	if grouped {
		if g, err := bigintconv.Comma(result); err == nil {
			fmt.Println(g)
			return
		}
	}
	fmt.Println(result)
}

func runREPL(in *os.File, out *os.File, grouped bool) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			fmt.Fprintf(out, "error: expected \"LHS OP RHS\", got %q\n", line)
			continue
		}
		result, err := evalExpr(fields[0], fields[1], fields[2])
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if grouped {
			if g, gerr := bigintconv.Comma(result); gerr == nil {
				result = g
			}
		}
		fmt.Fprintln(out, result)
	}
	return scanner.Err()
}

// evalExpr parses two decimal literals and applies the named operator,
// returning the decimal rendering of the result.
func evalExpr(lhs, op, rhs string) (string, error) {
	a, err := bigint.FromString(lhs)
	if err != nil {
		return "", fmt.Errorf("left operand: %w", err)
	}

	switch op {
	case "~":
		return a.Not().String(), nil
	case "abs":
		return a.Abs().String(), nil
	}

	b, err := bigint.FromString(rhs)
	if err != nil {
		return "", fmt.Errorf("right operand: %w", err)
	}

	switch op {
	case "+":
		return a.Add(b).String(), nil
	case "-":
		return a.Sub(b).String(), nil
	case "*":
		return a.Mul(b).String(), nil
	case "/":
		return a.Div(b).String(), nil
	case "%":
		return a.Mod(b).String(), nil
	case "&":
		return a.And(b).String(), nil
	case "|":
		return a.Or(b).String(), nil
	case "^":
		return a.Xor(b).String(), nil
	case "<<":
		n, err := shiftAmount(rhs)
		if err != nil {
			return "", err
		}
		return a.Lsh(n).String(), nil
	case ">>":
		n, err := shiftAmount(rhs)
		if err != nil {
			return "", err
		}
		return a.Rsh(n).String(), nil
	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
}

// shiftAmount parses a shift count. Shift amounts are plain non-negative
// machine integers, not arbitrary-precision values, so this uses strconv
// directly rather than round-tripping through bigint.FromString.
func shiftAmount(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("shift amount: %w", err)
	}
	return uint(n), nil
}
