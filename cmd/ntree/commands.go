package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return mainCommand(newMainConfig())
}

func mainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ntree").
		WithSynopsis("ntree [opts] command [opts]").
		WithDescription("ntree loads named-value tree documents and prints them as id,parent,name,value records.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ntreeMain(cfg, cc, args)
		}).
		WithSubs(
			PrintCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg))
}

func PrintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PrintConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("print").
		WithAliases("p").
		WithSynopsis("print [files]").
		WithDescription("print the records of each document (stdin if no files)").
		WithRun(func(cc *cli.Context, args []string) error {
			return printDocs(cfg, cc, args)
		})
	cfg.Print = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [-q] [files]").
		WithDescription("check that each document loads").
		WithRun(func(cc *cli.Context, args []string) error {
			return checkDocs(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("compare two documents by value and show a diff of their records").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffDocs(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
