package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/KimNorgaard/go-ntree"
)

func diffDocs(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := loadFile(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		cfg.diag("%v", err)
		return cli.ExitCodeErr(2)
	}
	to, err := loadFile(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		cfg.diag("%v", err)
		return cli.ExitCodeErr(2)
	}
	if from.Equal(to) {
		return nil
	}

	a, err := ntree.Marshal(from, cfg.printOpts()...)
	if err != nil {
		return err
	}
	b, err := ntree.Marshal(to, cfg.printOpts()...)
	if err != nil {
		return err
	}
	if err := writeLineDiff(cfg.MainConfig, cc.Out, lineDiff(string(a), string(b))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// lineDiff diffs two record listings line by line.
func lineDiff(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func writeLineDiff(cfg *MainConfig, w io.Writer, diffs []diffpatch.Diff) error {
	red := cfg.paint(w, color.FgRed)
	green := cfg.paint(w, color.FgGreen)
	plain := fmt.Sprint
	for _, d := range diffs {
		prefix, paint := "  ", plain
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint = "+ ", green
		case diffpatch.DiffDelete:
			prefix, paint = "- ", red
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, paint(prefix+strings.TrimSuffix(line, "\n"))); err != nil {
				return err
			}
		}
	}
	return nil
}
