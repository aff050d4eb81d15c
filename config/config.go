// Package config parses command line options, optionally merged with
// a JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Config is the optional JSON config file. Options given on the
// command line take precedence.
type Config struct {
	Output     string `json:"output"`
	SchemaFile string `json:"schema"`
	Pretty     bool   `json:"pretty"`
}

var ShapeFlags = flag.NewFlagSet("shape", flag.ExitOnError)
var CarrierFlags = flag.NewFlagSet("carriers", flag.ExitOnError)

type ShapeOptions struct {
	Input      string
	Output     string
	SchemaFile string
	Pretty     bool
	Quiet      bool
	ConfigFile string
}

func addShapeFlags(flags *flag.FlagSet, opts *ShapeOptions) {
	flags.StringVar(&opts.Output, "out", "", "output file (default: INPUT.json)")
	flags.StringVar(&opts.SchemaFile, "schema", "", "shape schema file")
	flags.BoolVar(&opts.Pretty, "pretty", false, "indent JSON output")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only print progress and errors")
	flags.StringVar(&opts.ConfigFile, "config", "", "config file")
}

func (o *ShapeOptions) updateFromConfig() error {
	if o.ConfigFile == "" {
		return nil
	}
	conf := &Config{}
	f, err := os.Open(o.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(conf); err != nil {
		return err
	}

	if o.Output == "" {
		o.Output = conf.Output
	}
	if o.SchemaFile == "" {
		o.SchemaFile = conf.SchemaFile
	}
	if conf.Pretty {
		o.Pretty = true
	}
	return nil
}

// ParseShape parses the arguments of the shape sub command. The
// single positional argument is the input file.
func ParseShape(args []string) ShapeOptions {
	opts := ShapeOptions{}
	addShapeFlags(ShapeFlags, &opts)
	ShapeFlags.Parse(args)

	if ShapeFlags.NArg() != 1 {
		ShapeFlags.Usage()
		log.Fatal("missing input file argument")
	}
	opts.Input = ShapeFlags.Arg(0)

	if err := opts.updateFromConfig(); err != nil {
		log.Fatal(err)
	}
	if opts.Output == "" {
		opts.Output = opts.Input + ".json"
	}
	return opts
}

type CarrierOptions struct {
	Input string
}

// ParseCarriers parses the arguments of the carriers sub command.
func ParseCarriers(args []string) CarrierOptions {
	opts := CarrierOptions{}
	CarrierFlags.Parse(args)

	if CarrierFlags.NArg() != 1 {
		CarrierFlags.Usage()
		log.Fatal("missing input file argument")
	}
	opts.Input = CarrierFlags.Arg(0)
	return opts
}
