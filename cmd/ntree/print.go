package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-ntree"
)

func printDocs(cfg *PrintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Print.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := loadFile(cfg.MainConfig, cc.In, file)
		if err != nil {
			cfg.diag("%v", err)
			return cli.ExitCodeErr(1)
		}
		if err := ntree.Print(doc, cc.Out, cfg.printOpts()...); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}
