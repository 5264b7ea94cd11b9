package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/soorj-lang/soorj/internal/ast"
	"github.com/soorj-lang/soorj/internal/interp"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Soorj session",
	RunE: func(_ *cobra.Command, _ []string) error {
		runREPL(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runREPL owns one long-lived *interp.Interpreter across every line, so
// variable and function bindings persist between inputs — this is the
// "evaluate a statement list against a persistent environment" entry point
// the language spec names in §1, shared with the file runner's
// interp.RunSource through the same Interpreter.Eval/execStatement core.
func runREPL(in io.Reader, out io.Writer) {
	it := interp.New(out)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Սուրճ (Soorj) Armenian Programming Language")
	fmt.Fprintln(out, "Type .help for help, .exit to quit")
	fmt.Fprintln(out, "=========================================")

	for {
		fmt.Fprint(out, "soorj> ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nցտեսություն! (Goodbye!)")
			return
		}

		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch trimmed {
		case ".exit":
			fmt.Fprintln(out, "Ցտեսություն! (Goodbye!)")
			return
		case ".help":
			printHelp(out)
			continue
		case ".clear":
			fmt.Fprint(out, "\x1b[2J\x1b[H")
			continue
		case ".example":
			printExamples(out)
			continue
		case "":
			continue
		}

		statements, diags := interp.ParseLine(line)
		if len(diags) > 0 {
			for _, d := range diags {
				fmt.Fprintln(out, d.Format(false))
			}
			continue
		}

		value, err := it.EvalStatements(statements)
		if err != nil {
			fmt.Fprintln(out, "Runtime error: "+err.Error())
			continue
		}

		if value != nil && len(statements) == 1 {
			if _, ok := statements[0].(*ast.ExpressionStmt); ok {
				fmt.Fprintln(out, value.Display())
			}
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `
Սուրճ (Soorj) - Armenian Programming Language REPL
===================================================

Commands:
  .help     - Show this help message
  .exit     - Exit the REPL
  .clear    - Clear the screen
  .example  - Show example code

Armenian Keywords:
  եթե        - if
  հպ         - else
  մինչև      - while
  գործ       - function
  տուր       - return
  այո        - true
  ոչ         - false
  հեչ        - null
  և          - and
  կամ        - or
  չի         - not

Built-in Functions:
  գրէ(...)   - Print values (write)
  թիվ(x)     - Convert to number
  բառ(x)     - Convert to string (word)

Example: գրէ("Բարեւ աշխարգ!")
`)
}

func printExamples(out io.Writer) {
	fmt.Fprint(out, `
Example Soorj Programs:
========================

1. Hello World:
   գրէ("Բարեւ աշխարգ!")

2. Variables and arithmetic:
   ա = 10
   բ = 20
   գումար = ա + բ
   գրէ("Գումարը:", գումար)

3. Conditional (if-else):
   ա = 15
   եթե ա > 10 {
       գրէ("Ա-ն մեծ է 10-ից")
   } հպ {
       գրէ("Ա-ն փոքր է կամ հավասար 10-ին")
   }

4. Loop (while):
   ի = 1
   մինչև ի <= 5 {
       գրէ("Հաշվարկ:", ի)
       ի = ի + 1
   }

5. Function definition:
   գործ ողջունել(անուն) {
       գրէ("Բարեւ,", անուն, "!")
       տուր "Ողջունեցի " + անուն
   }

   արդյունք = ողջունել("Հայաստան")
   գրէ("Գործառույթը վերադարձրեց:", արդյունք)
`)
}
