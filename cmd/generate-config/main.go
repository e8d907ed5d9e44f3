package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"showdown-server/internal/config"
)

var (
	out = flag.String("out", "", "write the config to this file instead of stdout")
	env = flag.Bool("env", false, "list the environment variables that override the config")
)

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()

		w = f
	}

	if err := generate(w, *env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(w io.Writer, listEnv bool) error {
	cfg := config.DefaultConfig()
	if listEnv {
		return envconfig.Usagef(config.EnvPrefix, &cfg, w, envconfig.DefaultTableFormat)
	}

	return yaml.NewEncoder(w).Encode(cfg)
}
