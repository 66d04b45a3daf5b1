// surftool is a CLI utility for generating and exporting surface meshes.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/projective/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	opts := logger.DefaultOptions()
	opts.Level = "warn"
	if os.Getenv("SURFTOOL_DEBUG") != "" {
		opts.Level = "debug"
	}
	if err := logger.Init(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "list", "ls":
		err = cmdList(os.Stdout)
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "export", "x":
		err = cmdExport(os.Stdout, args)
	case "config":
		err = cmdConfig(os.Stdout, args)
	case "serve":
		err = cmdServe(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`surftool - parametric surface tessellation utility

Usage:
  surftool <command> [options]

Commands:
  list                                   List catalog surfaces
  info [options] <surface|all>           Show mesh statistics
  export [options] <surface> <out>       Write .obj or .bin mesh
  config [path]                          Write the default config file
  serve [-addr :8080] [-max N]           Stream meshes over WebSocket at /ws

Options:
  -u, -v N          segment counts (default 64)
  -shading MODE     flat or smooth (default smooth)
  -layout MODE      block or interleaved (export only)
  -closure MODE     auto, closed, open, open_u or open_v

Set SURFTOOL_DEBUG=1 for debug logging.

Examples:
  surftool info -u 128 -v 128 boy
  surftool info all
  surftool export -shading flat torus torus.obj
  surftool export -layout interleaved crosscap crosscap.bin
  surftool serve -addr localhost:9000`)
}
