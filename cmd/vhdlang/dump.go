package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdltools/vhdlang/internal/lexer"
	"github.com/hdltools/vhdlang/internal/parser"
	"github.com/hdltools/vhdlang/internal/pipeline"
	"github.com/hdltools/vhdlang/internal/prettyprinter"
)

func newDumpTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-tokens <file>",
		Short: "Lex a source file and print its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			for _, tok := range lexer.New(string(source)).Tokenize() {
				fmt.Println(tok.String())
			}
			return nil
		},
	}
}

func newDumpAstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-ast <file>",
		Short: "Parse a source file and print the reconstructed source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			ctx := pipeline.NewPipelineContext(string(source))
			ctx.FilePath = args[0]
			ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)

			for _, diag := range ctx.Errors() {
				fmt.Fprintln(os.Stderr, diag.Error())
			}
			if ctx.AstRoot != nil {
				printer := prettyprinter.NewCodePrinter()
				ctx.AstRoot.Accept(printer)
				fmt.Print(printer.String())
			}
			if len(ctx.Errors()) > 0 {
				return fmt.Errorf("%d error(s) found", len(ctx.Errors()))
			}
			return nil
		},
	}
}
