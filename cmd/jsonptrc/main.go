package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsonptrio/jsonptr"
	"github.com/jsonptrio/jsonptr/format"
	"github.com/jsonptrio/jsonptr/load"
	"github.com/jsonptrio/jsonptr/log"
	"github.com/jsonptrio/jsonptr/pointer"
)

var (
	docFormat string
	logLevel  string
	logMode   string
	decode    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "jsonptrc",
		Version: versionString(),
		Short:   "Jsonptrc resolves RFC 6901 JSON Pointers against JSON and YAML documents",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(&log.Options{Mode: logMode, Level: logLevel})
		},
	}
	rootCmd.PersistentFlags().StringVarP(&docFormat, "format", "f", "", "Document format: json or yaml. Default: detect by filename extension")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "INFO", "Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().StringVarP(&logMode, "log-mode", "m", "SIMPLE", "Log mode: SIMPLE, FULL")

	getCmd := &cobra.Command{
		Use:   "get POINTER FILE...",
		Short: "Resolve a JSON Pointer in each document and print the value",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runGet,
	}
	existsCmd := &cobra.Command{
		Use:   "exists POINTER FILE...",
		Short: "Report whether a JSON Pointer resolves in each document",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runExists,
	}
	fragCmd := &cobra.Command{
		Use:   "frag POINTER",
		Short: "Convert a JSON Pointer to URI fragment form, or back with --decode",
		Args:  cobra.ExactArgs(1),
		RunE:  runFrag,
	}
	fragCmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode a URI fragment into a JSON Pointer")

	rootCmd.AddCommand(getCmd, existsCmd, fragCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

// versionString renders the library version plus VCS revision when the
// binary was built from a VCS checkout.
func versionString() string {
	info := jsonptr.GetVersionInfo()
	if info.Revision == "" {
		return info.Version
	}
	return fmt.Sprintf("%s (%s %s)", info.Version, info.Revision, info.Time)
}

func loadOptions() []load.Option {
	if docFormat == "" {
		return nil
	}
	return []load.Option{load.Format(format.Format(docFormat))}
}

func runGet(cmd *cobra.Command, args []string) error {
	p, err := pointer.Parse(args[0])
	if err != nil {
		return err
	}
	docs, err := load.LoadAll(args[1:], loadOptions()...)
	if err != nil {
		return err
	}
	for i, doc := range docs {
		value, err := p.Eval(doc)
		if err != nil {
			log.Errorf("%s: %v", args[1+i], err)
			return err
		}
		fmt.Println(value.String())
	}
	return nil
}

func runExists(cmd *cobra.Command, args []string) error {
	p, err := pointer.Parse(args[0])
	if err != nil {
		return err
	}
	docs, err := load.LoadAll(args[1:], loadOptions()...)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		fmt.Println(p.Exists(doc))
	}
	return nil
}

func runFrag(cmd *cobra.Command, args []string) error {
	if decode {
		p, err := pointer.ParseURIFragment(args[0])
		if err != nil {
			return err
		}
		fmt.Println(p.String())
		return nil
	}
	p, err := pointer.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Println(p.URIFragment())
	return nil
}
