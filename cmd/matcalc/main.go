// Command matcalc is a small matrix calculator.
//
//	matcalc -op mul -a "1,2;3,4" -b "5,6;7,8"
//	matcalc -op inverse -a "4,7;2,6" -verify
//	matcalc -i
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/matcalc/internal/calc"
	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/render"
	"github.com/katalvlaran/matcalc/internal/tui"
	"github.com/katalvlaran/matcalc/matrix"
)

type options struct {
	op          string
	a, b        string
	interactive bool
	verify      bool
	configPath  string
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&o.op, "op", "", "operation: add, sub, mul, transpose, det, inverse")
	fs.StringVar(&o.a, "a", "", `matrix A literal, e.g. "1,2;3,4"`)
	fs.StringVar(&o.b, "b", "", "matrix B literal (add, sub, mul)")
	fs.BoolVar(&o.interactive, "i", false, "start the interactive grid editor")
	fs.BoolVar(&o.verify, "verify", false, "with -op inverse, check A×A⁻¹ ≈ I")
	fs.StringVar(&o.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or ~/.config/matcalc/config.toml)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if o.interactive {
		if _, err := tea.NewProgram(tui.New(cfg), tea.WithAltScreen()).Run(); err != nil {
			log.Fatalf("tui: %v", err)
		}
		return
	}

	os.Exit(run(o, cfg, os.Stdout, os.Stderr))
}

// run executes one operation and returns the process exit code.
func run(o options, cfg config.Config, out, errOut io.Writer) int {
	r := render.New(cfg.Display)

	op, err := calc.ParseOp(o.op)
	if err != nil {
		fmt.Fprintln(errOut, r.Error(op, err))
		return 2
	}

	a, err := calc.ParseLiteral(o.a)
	if err != nil {
		fmt.Fprintln(errOut, r.Error(op, err))
		return 1
	}
	var b matrix.Matrix
	if op.Binary() {
		mb, err := calc.ParseLiteral(o.b)
		if err != nil {
			fmt.Fprintln(errOut, r.Error(op, err))
			return 1
		}
		b = mb
	}

	res, err := calc.Run(op, a, b)
	if err != nil {
		fmt.Fprintln(errOut, r.Error(op, err))
		return 1
	}
	fmt.Fprintln(out, r.Result("", res))

	if o.verify && op == calc.OpInverse {
		ok, err := calc.Verify(a, res.Matrix, cfg.Numeric.Epsilon)
		if err != nil {
			fmt.Fprintln(errOut, r.Error(op, err))
			return 1
		}
		if !ok {
			fmt.Fprintf(errOut, "verify: A×A⁻¹ differs from I by more than %g\n", cfg.Numeric.Epsilon)
			return 1
		}
		fmt.Fprintln(out, "verify: ok")
	}
	return 0
}
