package main

import (
	"chuckscope/internal/compiler"
	"chuckscope/internal/logger"
	"chuckscope/pkg/color"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Main entry point for the chuckscope resolver.
func main() {
	options := compiler.Compiler{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode, prints frame layouts")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.ConfigFile, "f", "", "TOML config file")
	flag.UintVar(&options.WordSize, "w", 0, "Word size in bytes (overrides the config file)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>...\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.SourceFiles = args

	err := options.Compile(context.Background())
	if err != nil {
		log.Fatal("Compilation failed", "error", err)
	}
}
