package benchmark

import (
	"io"
	"testing"

	"github.com/dzonerzy/go-climake/climake"
)

// Category: parser

func benchCLI() *climake.CLI {
	return climake.New("bench", "benchmark app").
		AddArg(climake.NewArgument("Verbose output", []rune{'v'}, []string{"verbose"}, climake.InputNone)).
		AddArg(climake.NewArgument("Target name", []rune{'t'}, []string{"target"}, climake.InputText)).
		AddArg(climake.NewArgument("Input files", []rune{'f'}, []string{"files"}, climake.InputPaths)).
		AddSubcommand(climake.NewSubcommand("add", "Add a package").
			AddArg(climake.NewArgument("Package name", []rune{'p'}, []string{"package"}, climake.InputText)))
}

func BenchmarkParse_Flags(b *testing.B) {
	cli := benchCLI()
	args := []string{"-v", "--target", "hello"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cli.ParseTokens(args)
	}
}

func BenchmarkParse_PathsWindow(b *testing.B) {
	cli := benchCLI()
	args := []string{"--files", "a.txt", "b.txt", "c.txt", "d.txt", "-v"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cli.ParseTokens(args)
	}
}

func BenchmarkParse_SubcommandDescent(b *testing.B) {
	cli := benchCLI()
	args := []string{"add", "--package", "left-pad"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cli.ParseTokens(args)
	}
}

func BenchmarkParse_ShortCluster(b *testing.B) {
	cli := climake.New("bench", "benchmark app").
		AddArg(climake.NewArgument("First", []rune{'a'}, nil, climake.InputNone)).
		AddArg(climake.NewArgument("Second", []rune{'b'}, nil, climake.InputNone)).
		AddArg(climake.NewArgument("Third", []rune{'c'}, nil, climake.InputText))
	args := []string{"-abc", "data"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cli.ParseTokens(args)
	}
}

func BenchmarkParserReuse(b *testing.B) {
	parser := climake.NewParser(benchCLI())
	args := []string{"-v", "--target", "hello"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = parser.Parse(args)
	}
}

// Category: help

func BenchmarkHelpRender(b *testing.B) {
	cli := benchCLI().ProgramName("bench").Width(80)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cli.WriteHelp(io.Discard)
	}
}
