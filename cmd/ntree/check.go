package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-ntree/ast"
)

func checkDocs(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		doc, err := loadFile(cfg.MainConfig, cc.In, file)
		if err != nil {
			cfg.diag("%v", err)
			failed++
			continue
		}
		if cfg.Quiet {
			continue
		}
		nodes := 0
		ast.Walk(doc.Root(), func(*ast.Node, *ast.Node, int) bool {
			nodes++
			return true
		})
		fmt.Fprintf(cc.Out, "%s: ok (%d nodes)\n", file, nodes)
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
