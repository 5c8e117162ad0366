package main

// implements the yazz driver: runs a script, or starts a repl

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"yazz/eval"
)

var VERSION string
var LOGO = `
  _  _ ____ ___  ___   |
   \/  |__|   /   /    | yazz language
   /   |  |  /__ /__   | version: $VERSION
                       |
`

const (
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
	exitIO      = 74
)

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

// reportError prints err to stderr, and returns the exit code it maps to.
func reportError(err error) int {
	var syntaxErrs eval.SyntaxErrors
	var runtimeErr *eval.RuntimeError
	switch {
	case errors.As(err, &syntaxErrs):
		for _, e := range syntaxErrs {
			fmt.Fprintf(os.Stderr, "%s\n", e)
		}
		return exitStatic
	case errors.As(err, &runtimeErr):
		fmt.Fprintln(os.Stderr, runtimeErr.String())
		return exitRuntime
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	return exitRuntime
}

func main() {
	var configFile string
	var showVersion bool
	flag.StringVar(&configFile, "config", configPath(), "path to the YAML config file")
	flag.BoolVar(&showVersion, "version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: yazz [flags] [script]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(sliceVersion(VERSION))
		return
	}
	cfg, err := loadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(exitUsage)
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		os.Exit(runREPL(cfg))
	case 1:
		os.Exit(runFile(cfg, args[0]))
	default:
		flag.Usage()
		os.Exit(exitUsage)
	}
}

func runFile(cfg *Config, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		return exitIO
	}
	session := eval.NewSession(path, eval.WithMaxDepth(cfg.MaxCallDepth))
	if _, err := session.Run(string(src)); err != nil {
		return reportError(err)
	}
	return 0
}

func runREPL(cfg *Config) int {
	if cfg.Banner {
		fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return exitIO
	}
	defer rl.Close()

	session := eval.NewSession("<stdin>", eval.WithMaxDepth(cfg.MaxCallDepth))
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return exitIO
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := session.Run(line)
		if err != nil {
			reportError(err)
			continue
		}
		if v != nil && v != eval.NIL {
			fmt.Println(eval.Inspect(v))
		}
	}
	return 0
}
