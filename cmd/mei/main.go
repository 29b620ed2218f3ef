package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/config"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/service"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "mei",
	})

	var (
		outputPath string
		layout     string
		year       int
	)
	flag.StringVar(&outputPath, "o", "", "Output directory (default: same as input file)")
	flag.StringVar(&layout, "layout", "", "Default statement layout (bb, caixa, mlgita, mlgsan)")
	flag.IntVar(&year, "year", 0, "Reference year for layouts without one (mlgita)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		logger.Error("invalid usage", "args", args)
		fmt.Fprintf(os.Stderr, "Usage: mei [-o output_dir] [-layout name] [-year yyyy] <directory>\n")
		os.Exit(1)
	}

	cfg := &config.Config{OutputPath: outputPath, Layout: layout, Year: year}
	processor := service.NewProcessor(cfg, logger)

	if err := processor.ProcessDirectory(args[0]); err != nil {
		logger.Fatal("processing failed", "error", err)
	}
}
