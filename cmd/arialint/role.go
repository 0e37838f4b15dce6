package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"arialint/internal/diagfmt"
	"arialint/internal/roles"
)

var roleCmd = &cobra.Command{
	Use:   "role [flags] [name]",
	Short: "Look up ARIA roles in the built-in reference",
	Long: `Show the reference entry for one role, or list roles with --list,
optionally limited to one --category (widget, landmark, live-region,
window, document-structure, other).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRole,
}

func init() {
	roleCmd.Flags().Bool("list", false, "list roles instead of looking one up")
	roleCmd.Flags().String("category", "", "only list roles of this category")
	roleCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type roleListJSON struct {
	Roles []roles.Role `json:"roles"`
	Count int          `json:"count"`
}

func runRole(cmd *cobra.Command, args []string) error {
	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return fmt.Errorf("failed to get list flag: %w", err)
	}
	categoryStr, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	colored, err := useColor(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if categoryStr != "" {
		list = true
	}
	if !list {
		if len(args) == 0 {
			return fmt.Errorf("role name required (or use --list)")
		}
		role, ok := roles.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown role %q", strings.TrimSpace(args[0]))
		}
		if format == "json" {
			return diagfmt.WriteJSON(out, role)
		}
		return diagfmt.RoleCard(out, role, "Role", colored)
	}

	var selected []roles.Role
	if categoryStr != "" {
		cat, ok := roles.ParseCategory(categoryStr)
		if !ok {
			return fmt.Errorf("unknown category %q", categoryStr)
		}
		selected = roles.ByCategory(cat)
	} else {
		selected = roles.All()
	}
	if len(args) == 1 {
		selected = filterRoles(selected, args[0])
	}

	if format == "json" {
		if selected == nil {
			selected = []roles.Role{}
		}
		return diagfmt.WriteJSON(out, roleListJSON{Roles: selected, Count: len(selected)})
	}
	return printRoleList(out, selected, colored)
}

// filterRoles keeps roles whose name contains the query.
func filterRoles(list []roles.Role, query string) []roles.Role {
	query = roles.Key(query)
	var out []roles.Role
	for _, r := range list {
		if strings.Contains(r.Name, query) {
			out = append(out, r)
		}
	}
	return out
}

func printRoleList(out io.Writer, list []roles.Role, colored bool) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "no roles match")
		return err
	}
	for _, r := range list {
		if err := diagfmt.RoleCard(out, r, string(r.Category), colored); err != nil {
			return err
		}
	}
	return nil
}
