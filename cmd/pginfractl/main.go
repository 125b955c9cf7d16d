package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/edvin/pginfra/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		fs := flag.NewFlagSet("generate", flag.ExitOnError)
		file := fs.String("f", "", "Path to deployment config YAML file (required)")
		outDir := fs.String("out", ".", "Directory to write artifacts into")
		typesFile := fs.String("instance-types", "", "Instance type catalog YAML file (optional)")
		historyFile := fs.String("history", "", "Append-only generation log (optional)")
		region := fs.String("region", "us-east-1", "AWS region for the Terraform provider")
		ami := fs.String("ami", "ami-12345678", "AMI for primary and replica instances")
		fs.Parse(os.Args[2:])

		if *file == "" {
			fmt.Fprintln(os.Stderr, "Error: -f flag is required")
			fs.Usage()
			os.Exit(1)
		}

		err := cli.Generate(cli.GenerateParams{
			ConfigFile:        *file,
			OutputDir:         *outDir,
			InstanceTypesFile: *typesFile,
			HistoryFile:       *historyFile,
			Region:            *region,
			AMI:               *ami,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "instance-types":
		fs := flag.NewFlagSet("instance-types", flag.ExitOnError)
		typesFile := fs.String("f", "", "Instance type catalog YAML file (optional)")
		fs.Parse(os.Args[2:])

		if err := cli.InstanceTypes(*typesFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "history":
		fs := flag.NewFlagSet("history", flag.ExitOnError)
		historyFile := fs.String("f", "", "Path to generation log (required)")
		fs.Parse(os.Args[2:])

		if *historyFile == "" {
			fmt.Fprintln(os.Stderr, "Error: -f flag is required")
			fs.Usage()
			os.Exit(1)
		}

		if err := cli.History(*historyFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: pginfractl <command> [flags]

Commands:
  generate        Render Terraform and Ansible artifacts from a config file
  instance-types  Print the accepted instance types
  history         Print recorded generations from a log file`)
}
