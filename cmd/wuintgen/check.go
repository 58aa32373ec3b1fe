package main

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gowide/wuint/litsuffix"
)

// litSuffixSelector is the marker call wuintgen looks for while
// walking a source file's AST: wuint.Lit("602214076_U256"). Go has no
// way to give an ordinary numeric literal a "_U256" suffix, so this
// marker call stands in for the suffixed-literal token a macro system
// would rewrite at compile time; wuintgen's job is to catch a
// malformed or overflowing one before it reaches a build.
const litSuffixSelector = "Lit"

func newCheckLiteralsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-literals [files...]",
		Short: "Validates every wuint.Lit(\"...\") marker call against the literal-suffix grammar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				n, err := checkFile(path)
				if err != nil {
					return errors.Wrapf(err, "checking %s", path)
				}
				failed += n
			}
			log.Info().Int("violations", failed).Msg("check-literals complete")
			if failed > 0 {
				return errors.Errorf("%d literal(s) failed validation", failed)
			}
			return nil
		},
	}
	return cmd
}

func checkFile(path string) (int, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", path)
	}

	failed := 0
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != litSuffixSelector {
			return true
		}
		if len(call.Args) != 1 {
			return true
		}
		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}

		tok := lit.Value[1 : len(lit.Value)-1] // strip surrounding quotes
		if _, _, err := litsuffix.Eval(tok); err != nil {
			pos := fset.Position(lit.Pos())
			log.Error().Str("token", tok).Str("pos", pos.String()).Err(err).Msg("invalid literal")
			failed++
		}
		return true
	})
	return failed, nil
}
