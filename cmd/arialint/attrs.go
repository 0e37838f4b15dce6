package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arialint/internal/diagfmt"
	"arialint/internal/driver"
	"arialint/internal/summary"
)

var attrsCmd = &cobra.Command{
	Use:   "attrs [flags] <file|->",
	Short: "Summarize the roles and aria-* attributes of a snippet",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttrs,
}

func init() {
	attrsCmd.Flags().String("format", "text", "output format (text|html|json)")
}

func runAttrs(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	colored, err := useColor(cmd)
	if err != nil {
		return err
	}
	if target != "-" {
		if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
			return fmt.Errorf("attrs works on a single snippet, %s is a directory", target)
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}
	result, err := driver.Diagnose(cmd.Context(), target, cmd.InOrStdin(), opts)
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}
	fr := result.Files[0]
	if fr.Failed {
		return fmt.Errorf("failed to read %s", fr.Path)
	}
	file := result.FileSet.Get(fr.FileID)
	s := summary.Build(string(file.Content), fr.Diagnostics)

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		if err := diagfmt.RoleText(out, s.Role, colored); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		return diagfmt.AttributesText(out, s, colored)
	case "html":
		return diagfmt.AttributesHTML(out, s)
	case "json":
		return diagfmt.WriteJSON(out, s)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
