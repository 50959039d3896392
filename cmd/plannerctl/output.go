package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// printResult writes v to the command output in the --output format.
func printResult(cmd *cobra.Command, v any) error {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	return encode(cmd.OutOrStdout(), format, v)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
