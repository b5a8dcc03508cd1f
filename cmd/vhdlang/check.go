package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hdltools/vhdlang/internal/analyzer"
	"github.com/hdltools/vhdlang/internal/config"
	"github.com/hdltools/vhdlang/internal/lexer"
	"github.com/hdltools/vhdlang/internal/parser"
	"github.com/hdltools/vhdlang/internal/pipeline"
	"github.com/hdltools/vhdlang/internal/unitindex"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func newCheckCmd() *cobra.Command {
	var projectFile string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse and analyze VHDL sources, printing diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(projectFile, noCache, args)
		},
	}
	cmd.Flags().StringVarP(&projectFile, "project", "p", "", "project file (defaults to "+config.DefaultProjectFile+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "re-analyze all files, ignoring the unit index")
	return cmd
}

func runCheck(projectFile string, noCache bool, args []string) error {
	log := newLogger()

	files := args
	var indexDir string
	if len(files) == 0 {
		path := projectFile
		if path == "" {
			path = config.DefaultProjectFile
		}
		project, err := config.Load(path)
		if err != nil {
			return err
		}
		files, err = project.SourceFiles()
		if err != nil {
			return err
		}
		indexDir = project.Dir
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files to check")
	}

	var store *unitindex.Store
	var runID string
	if indexDir != "" && !noCache {
		var err error
		store, err = unitindex.Open(filepath.Join(indexDir, config.DefaultIndexFile))
		if err != nil {
			log.Error("cannot open unit index", "error", err)
		} else {
			defer store.Close()
			if runID, err = store.BeginRun(); err != nil {
				log.Error("cannot record run", "error", err)
				store = nil
			}
		}
	}

	useColor := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	totalErrors := 0

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return err
		}
		mtime := info.ModTime().Unix()

		if store != nil {
			if clean, err := store.UpToDate(file, mtime); err == nil && clean {
				log.Debug("skipping unchanged file", "file", file)
				continue
			}
		}

		source, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		ctx := checkSource(string(source), file)
		for _, diag := range ctx.Errors() {
			if useColor {
				fmt.Printf("%s%s%s\n", colorRed, diag.Error(), colorReset)
			} else {
				fmt.Println(diag.Error())
			}
		}
		totalErrors += len(ctx.Errors())

		if store != nil {
			if err := store.RecordFile(runID, file, mtime, len(ctx.Errors())); err != nil {
				log.Error("cannot record file", "file", file, "error", err)
			}
		}
	}

	if totalErrors > 0 {
		return fmt.Errorf("%d error(s) found", totalErrors)
	}
	return nil
}

func checkSource(source, file string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = file

	pipe := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{Logger: newLogger()},
	)
	return pipe.Run(ctx)
}
