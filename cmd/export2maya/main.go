// export2maya converts a host scene dump and its animation clip into a
// Maya ASCII (.ma) scene.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/export2maya/internal/config"
	"github.com/Faultbox/export2maya/internal/exporter"
	"github.com/Faultbox/export2maya/internal/logger"
	"github.com/Faultbox/export2maya/pkg/anim"
	"github.com/Faultbox/export2maya/pkg/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "export":
		err = cmdExport(args)
	case "inspect":
		err = cmdInspect(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`export2maya - export a scene dump and animation clip to Maya ASCII

Usage:
  export2maya <command> [options]

Commands:
  export [options] -o <out.ma> <scene.yaml>   Write the scene and its clip
  inspect <scene.yaml>                        List nodes and clip curves
  config [options]                            Print the effective configuration

Options:
  -config <file>        Config file (.yaml or .toml)
  -debug                Debug logging
  -maya-version <v>     Target Maya version (default 2018)
  -units <unit>         meter or centimeter
  -fps <rate>           Frame rate override
  -texture-path <dir>   Prefix for file texture paths

Examples:
  export2maya export -o blink.ma face_rig.yaml
  export2maya export -units centimeter -fps 60 -o run.ma character.yaml
  export2maya config -toml`)
}

// loadConfig binds the shared flags, parses args and loads the config.
func loadConfig(name string, args []string, extra func(*flag.FlagSet)) (*config.Config, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	config.BindFlags(fs)
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, nil, err
	}
	logger.Debug("config loaded",
		zap.String("command", name),
		zap.String("config_file", config.ConfigPath()),
		zap.String("maya_version", cfg.Export.MayaVersion),
		zap.String("units", cfg.Export.LinearUnit))
	return cfg, fs, nil
}

func exporterOptions(cfg *config.Config) exporter.Options {
	return exporter.Options{
		MayaVersion: cfg.Export.MayaVersion,
		LinearUnit:  cfg.Export.LinearUnit,
		TexturePath: cfg.Export.TexturePath,
		Application: cfg.Export.Application,
	}
}

func cmdExport(args []string) error {
	cfg, fs, err := loadConfig("export", args, nil)
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: export2maya export [options] -o <out.ma> <scene.yaml>")
	}
	if cfg.Export.Output == "" {
		return fmt.Errorf("no output file: pass -o or set export.output")
	}

	doc, err := scene.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		zap.String("file", fs.Arg(0)),
		zap.Int("nodes", len(doc.Nodes)),
		zap.Bool("clip", doc.Clip != nil))

	ex, err := exporter.New(exporterOptions(cfg), logger.Named("exporter"))
	if err != nil {
		return err
	}
	res, err := ex.ExportClip(doc.Nodes, doc.Clip, cfg.Export.FrameRate)
	if err != nil {
		return fmt.Errorf("export aborted, nothing written: %w", err)
	}

	if anomalies := res.AnomalyList(); len(anomalies) > 0 {
		fmt.Fprintf(os.Stderr, "%d curve(s) skipped\n", len(anomalies))
		for _, a := range anomalies {
			logger.Warn("export anomaly", zap.Error(a))
		}
	}

	if err := exporter.Commit(cfg.Export.Output, res); err != nil {
		return err
	}
	fmt.Printf("Wrote %s: %d nodes, %d curves, %d lines", cfg.Export.Output, res.Nodes, res.Curves, res.Output.Len())
	if res.LastFrame > 0 {
		fmt.Printf(", frames 1-%d", res.LastFrame)
	}
	fmt.Println()
	return nil
}

func cmdInspect(args []string) error {
	_, fs, err := loadConfig("inspect", args, nil)
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: export2maya inspect <scene.yaml>")
	}

	doc, err := scene.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return err
	}

	fmt.Printf("Scene: %s\n", doc.Name)
	fmt.Printf("Nodes: %d\n", g.Len())
	for _, n := range g.Nodes() {
		path := n.Name
		if n.Kind.IsDAG() {
			path = g.DAGPath(n.Name)
		}
		fmt.Printf("  %-18s %s\n", n.Kind, path)
	}

	if doc.Clip == nil {
		return nil
	}
	c := doc.Clip
	fmt.Println()
	fmt.Printf("Clip: %s (%g fps, root %q)\n", c.Name, c.FrameRate, c.Root)
	fmt.Printf("Curves: %d\n", len(c.Fragments))
	for _, f := range c.Fragments {
		kind := "?"
		if cl, err := anim.Classify(f); err == nil {
			kind = cl.Kind.String()
		}
		path := f.Path
		if strings.TrimSpace(path) == "" {
			path = "(root)"
		}
		fmt.Printf("  %-22s %-32s %-18s %d keys\n", path, f.Property, kind, len(f.Keys))
	}
	return nil
}

func cmdConfig(args []string) error {
	var asTOML *bool
	cfg, _, err := loadConfig("config", args, func(fs *flag.FlagSet) {
		asTOML = fs.Bool("toml", false, "Print as TOML")
	})
	if err != nil {
		return err
	}
	data, err := cfg.Marshal(*asTOML)
	if err != nil {
		return err
	}
	os.Stdout.Write(data)
	return nil
}
