package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-array/pkg/array"
)

// result is the outcome of splitting one value.
type result struct {
	Key      string   `json:"key,omitempty"`
	Value    string   `json:"value"`
	IsArray  bool     `json:"isArray"`
	Elements []string `json:"elements,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "arrayvalue",
		Short:        "Split and inspect array-shaped setting values",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "YAML file with separator, format and compact settings")
	root.PersistentFlags().StringP("separator", "s", ",", "element separator")
	root.PersistentFlags().StringP("format", "f", formatText, "output format (text or json)")
	root.PersistentFlags().Bool("compact", false, "no space after separators when writing values")

	root.AddCommand(newSplitCmd(), newJoinCmd(), newInspectCmd())
	return root
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split [value...]",
		Short: "Split array values given as arguments, or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			values := args
			if len(values) == 0 {
				if values, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			results := make([]result, 0, len(values))
			for _, v := range values {
				results = append(results, splitValue("", v, cfg.options()))
			}
			return report(cmd, cfg, results)
		},
	}
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join element...",
		Short: "Write elements as an array value",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			s, err := array.Join(args, cfg.options())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect settings.yaml",
		Short: "Report every array-valued setting in a YAML settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			settings := koanf.New(".")
			if err := settings.Load(file.Provider(args[0]), koanfyaml.Parser()); err != nil {
				return fmt.Errorf("failed to load settings file: %w", err)
			}

			flat := settings.All()
			keys := make([]string, 0, len(flat))
			for key := range flat {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			results := make([]result, 0)
			for _, key := range keys {
				s, ok := flat[key].(string)
				if !ok || !array.IsArray(s) {
					continue
				}
				results = append(results, splitValue(key, s, cfg.options()))
			}
			return report(cmd, cfg, results)
		},
	}
}

// maxLineSize bounds a single value read from stdin.
const maxLineSize = 16 << 20

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func splitValue(key, value string, opts array.Options) result {
	res := result{Key: key, Value: value, IsArray: array.IsArray(value)}

	elems, err := array.SplitWithOptions(value, opts)
	switch {
	case array.IsNotArray(err):
		// Scalars pass through as themselves.
		res.Elements = []string{value}
	case err != nil:
		res.Error = err.Error()
	default:
		res.Elements = elems
	}
	return res
}

// report writes results and fails when any value was malformed.
func report(cmd *cobra.Command, cfg *config, results []result) error {
	out := cmd.OutOrStdout()

	bad := 0
	for _, res := range results {
		if res.Error != "" {
			bad++
		}
	}

	if cfg.Format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		wrote := false
		for _, res := range results {
			if res.Error != "" {
				writeText(out, cmd.ErrOrStderr(), res)
				continue
			}
			// Blank lines separate results on stdout only.
			if wrote {
				fmt.Fprintln(out)
			}
			writeText(out, cmd.ErrOrStderr(), res)
			wrote = true
		}
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d value(s) are malformed arrays", bad, len(results))
	}
	return nil
}

func writeText(out, errOut io.Writer, res result) {
	name := res.Value
	if res.Key != "" {
		name = res.Key
	}

	if res.Error != "" {
		fmt.Fprintf(errOut, "%s: %s\n", name, res.Error)
		return
	}

	if res.Key != "" {
		fmt.Fprintf(out, "%s: %d element(s)\n", res.Key, len(res.Elements))
	}
	for _, elem := range res.Elements {
		fmt.Fprintln(out, elem)
	}
}
