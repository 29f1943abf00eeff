package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spriteworks/spriteforge/internal/config"
	"github.com/spriteworks/spriteforge/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("spriteforge %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if os.Getenv("SPRITEFORGE_LOG_LEVEL") == "debug" {
		log.Printf("Spriteforge MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "spriteforge - MCP server for sprite extraction and pixel analysis")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: spriteforge [options]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -config path     Read configuration from path (default: spriteforge.yaml)")
	fmt.Fprintln(os.Stderr, "  -version         Print version information")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  SPRITEFORGE_CONFIG=path      Config file location")
	fmt.Fprintln(os.Stderr, "  SPRITEFORGE_LOG_LEVEL=debug  Enable debug logging")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "This server communicates via MCP protocol over stdin/stdout.")
	fmt.Fprintln(os.Stderr, "Configure it in your MCP client.")
}
