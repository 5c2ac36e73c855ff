// Copyright (c) 2025 Visvasity LLC

// Command regmapgen generates typed, permission-checked register
// accessors for memory-mapped peripherals described as Go structs.
//
// For example, given this snippet,
//
//	package input
//
//	type Uart struct {
//		Data   uint8
//		Status uint8 `reg:"ro"`
//		Ctrl   uint8 `reg:"wo"`
//
//		Baud uint32
//	}
//
// running this command
//
//	regmapgen --inpkg ./input --outdir ./output Uart
//
// will create file uart.regmapgen.go in the ./output directory,
// containing a UartPtr accessor type with the following interface:
//
//	const (
//		UartSize  = 8
//		UartAlign = 4
//	)
//
//	type UartPtr struct{ p unsafe.Pointer }
//
//	func UartFromRegs(v *input.Uart) UartPtr
//	func UartAtAddr(addr uintptr) UartPtr
//
//	func (v UartPtr) Addr() uintptr
//
//	func (v UartPtr) Data() regs.RW[uint8]
//	func (v UartPtr) Status() regs.RO[uint8]
//	func (v UartPtr) Ctrl() regs.WO[uint8]
//	func (v UartPtr) Baud() regs.RW[uint32]
//
// Field offsets follow the platform's sequential struct layout, so the
// accessors address the same bytes as the input struct itself. The
// `reg` struct tag selects the access mode; reading a write-only
// register (or writing a read-only one) does not compile. Struct-typed
// fields become nested accessor types and fixed-size arrays become
// bounds-checked regs.Array handles, recursively.
//
// A //regmap:align=N line in a map type's doc comment raises the map's
// alignment; lowering below the natural alignment is rejected.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/visvasity/regmapgen/layout"
	"github.com/visvasity/regmapgen/typecheck"
)

type CLI struct {
	Generate Generate `cmd:"" default:"withargs" help:"Generate register accessor files. (default command)"`
	Dump     Dump     `cmd:"" help:"Print resolved register-map layouts as JSON."`

	Config  string `help:"Read flag defaults from a TOML config file." placeholder:"regmapgen.toml" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

type Generate struct {
	InPkg  string `name:"inpkg" help:"Package path/name for the type definitions." default:"."`
	OutPkg string `name:"outpkg" help:"Package name for the generated files."`
	OutDir string `name:"outdir" help:"Output directory for the generated files."`

	Types []string `arg:"" optional:"" name:"types" help:"Register map type names. Must be from a single package."`
}

type Dump struct {
	InPkg string `name:"inpkg" help:"Package path/name for the type definitions." default:"."`

	Types []string `arg:"" optional:"" name:"types" help:"Register map type names. Must be from a single package."`
}

// fileConfig mirrors the command line flags so that go:generate lines
// can stay short.
type fileConfig struct {
	InPkg  string   `toml:"inpkg"`
	OutPkg string   `toml:"outpkg"`
	OutDir string   `toml:"outdir"`
	Types  []string `toml:"types"`
}

const defaultConfigFile = "regmapgen.toml"

func loadConfig(path string) (*fileConfig, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return &fileConfig{}, nil
		}
		path = defaultConfigFile
	}
	cfg := new(fileConfig)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	return cfg, nil
}

func (cmd *Generate) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cmd.InPkg == "." && cfg.InPkg != "" {
		cmd.InPkg = cfg.InPkg
	}
	if cmd.OutPkg == "" {
		cmd.OutPkg = cfg.OutPkg
	}
	if cmd.OutDir == "" {
		cmd.OutDir = cfg.OutDir
	}
	if len(cmd.Types) == 0 {
		cmd.Types = cfg.Types
	}

	if len(cmd.Types) == 0 {
		return fmt.Errorf("register map type names must be given as arguments or in the config file")
	}
	if cmd.OutDir == "" {
		return fmt.Errorf("output directory must be set with the --outdir flag")
	}
	if cmd.OutPkg == "" {
		cmd.OutPkg = filepath.Base(cmd.OutDir)
	}

	pkg, err := loadPackage(cmd.InPkg)
	if err != nil {
		return err
	}

	g, err := newGenerator(pkg, cmd.OutPkg)
	if err != nil {
		return err
	}
	for _, t := range cmd.Types {
		if err := g.generate(t); err != nil {
			return err
		}
	}

	for _, typ := range g.GetTypes() {
		// Format the output.
		src := g.GetSource(typ)

		// Write to file.
		outputName := filepath.Join(cmd.OutDir, strings.ToLower(typ)+".regmapgen.go")
		if err := os.WriteFile(outputName, src, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		logrus.WithField("file", outputName).Debug("wrote generated accessors")
	}
	return nil
}

func (cmd *Dump) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cmd.InPkg == "." && cfg.InPkg != "" {
		cmd.InPkg = cfg.InPkg
	}
	if len(cmd.Types) == 0 {
		cmd.Types = cfg.Types
	}
	if len(cmd.Types) == 0 {
		return fmt.Errorf("register map type names must be given as arguments or in the config file")
	}

	pkg, err := loadPackage(cmd.InPkg)
	if err != nil {
		return err
	}

	checker := typecheck.New(pkg)
	resolver := layout.NewResolver()
	for _, t := range cmd.Types {
		if err := checker.Check(t); err != nil {
			return err
		}
	}
	for _, desc := range checker.DescriptionMap() {
		if err := resolver.Add(desc); err != nil {
			return err
		}
	}
	for _, t := range cmd.Types {
		resolved, err := resolver.Resolve(t)
		if err != nil {
			return err
		}
		os.Stdout.Write(resolved.JSON())
		fmt.Println()
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("regmapgen"),
		kong.Description("Register-map accessor generator. github.com/visvasity/regmapgen"),
		kong.UsageOnError())

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cli.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx.FatalIfErrorf(ctx.Run(&cli))
}
