package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/env"
	"github.com/pontaoski/lumen/eval"
	"github.com/pontaoski/lumen/lexer"
	"github.com/pontaoski/lumen/parser"
	"github.com/pontaoski/lumen/types"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lumen", "main")

func parseSource(src, filename string) (ast.Body, error) {
	tokens, err := lexer.Tokenize(src, filename)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

func readSource(c *cli.Context) (string, string, error) {
	file := c.Args().First()
	if file == "" {
		return "", "", cli.Exit("no source file provided", 1)
	}
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return "", "", err
	}
	return string(data), file, nil
}

// mustParse prints a lexing or parsing diagnostic and exits cleanly. Nothing
// of the program runs in that case. Only runtime failures exit non-zero.
func mustParse(src, filename string) ast.Body {
	program, err := parseSource(src, filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(0)
	}
	return program
}

func printTrace(err error, conf config) {
	if conf.ColorTraces {
		tracerr.PrintSourceColor(err)
	} else {
		tracerr.PrintSource(err)
	}
}

// execute runs a program. Runtime failures are not recovered anywhere below
// this point; here the trace is printed and the process exits.
func execute(program ast.Body, e *env.Env, conf config) eval.State {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				panic(r)
			}
			printTrace(rerr, conf)
			os.Exit(1)
		}
	}()
	return eval.Run(program, e)
}

func runFile(c *cli.Context, conf config) error {
	src, file, err := readSource(c)
	if err != nil {
		return err
	}

	program := mustParse(src, file)
	plog.Debugf("running %s", file)
	execute(program, eval.Builtins(os.Stdout), conf)

	return nil
}

func main() {
	var conf config

	app := &cli.App{
		Name:      "lumen",
		Usage:     "lumen interpreter",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "load settings from a YAML `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG, TRACE)",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			conf, err = loadConfig(c.String("config"))
			if err != nil {
				return err
			}
			if level := c.String("log-level"); level != "" {
				conf.LogLevel = level
			}
			return conf.apply()
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			fmt.Fprintf(os.Stderr, "lumen: %s\n", err)
			os.Exit(1)
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.ShowAppHelp(c)
			}
			return runFile(c, conf)
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a source file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					return runFile(c, conf)
				},
			},
			{
				Name:      "tokens",
				Usage:     "dump the tokens of a source file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					src, file, err := readSource(c)
					if err != nil {
						return err
					}
					tokens, err := lexer.Tokenize(src, file)
					if err != nil {
						fmt.Println(err)
						os.Exit(0)
					}
					if tokens == nil {
						tokens = []types.Token{}
					}
					repr.Println(tokens)
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "dump the syntax tree of a source file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					src, file, err := readSource(c)
					if err != nil {
						return err
					}
					repr.Println(mustParse(src, file))
					return nil
				},
			},
			{
				Name:  "repl",
				Usage: "start an interactive session",
				Action: func(c *cli.Context) error {
					return repl(conf, os.Stdout)
				},
			},
			{
				Name:      "init",
				Usage:     "write a default config file",
				ArgsUsage: "[file]",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						name = defaultConfigFile
					}

					out, err := yaml.Marshal(defaultConfig())
					if err != nil {
						return fmt.Errorf("error creating %s: %w", name, err)
					}

					err = ioutil.WriteFile(name, out, 0644)
					if err != nil {
						return fmt.Errorf("error creating %s: %w", name, err)
					}

					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
