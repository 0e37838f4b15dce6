package smell

import "arialint/internal/diag"

// containment is a presence-only check: some tag has one of roles while no
// tag in the whole snippet has one of the containers.
type containment struct {
	code       diag.Code
	roles      []string
	containers []string
	message    string
}

var containments = []containment{
	{
		code:       diag.StrTabNoTablist,
		roles:      []string{"tab"},
		containers: []string{"tablist"},
		message:    "Found elements with `role=\"tab\"` but no `role=\"tablist\"`. Tabs are usually contained in a tablist element.",
	},
	{
		code:       diag.StrTabpanelNoTab,
		roles:      []string{"tabpanel"},
		containers: []string{"tab"},
		message:    "Found elements with `role=\"tabpanel\"` but no `role=\"tab\"`. Tabpanels are usually controlled by tabs.",
	},
	{
		code:       diag.StrOptionNoListbox,
		roles:      []string{"option"},
		containers: []string{"listbox", "combobox"},
		message:    "Found elements with `role=\"option\"` but no `role=\"listbox\"` or `role=\"combobox\"`. Options are usually children of these composite widgets.",
	},
	{
		code:       diag.StrMenuitemNoMenu,
		roles:      []string{"menuitem", "menuitemcheckbox", "menuitemradio"},
		containers: []string{"menu", "menubar"},
		message:    "Found menu item roles (such as `role=\"menuitem\"`) but no `role=\"menu\"` or `role=\"menubar\"`. Menu items are usually contained in menu or menubar elements.",
	},
	{
		code:       diag.StrTreeitemNoTree,
		roles:      []string{"treeitem"},
		containers: []string{"tree"},
		message:    "Found elements with `role=\"treeitem\"` but no `role=\"tree\"`. Treeitems are usually contained in a tree widget.",
	},
	{
		code:       diag.StrRowNoTable,
		roles:      []string{"row"},
		containers: []string{"table", "grid", "treegrid"},
		message:    "Found elements with `role=\"row\"` but no parent table, grid, or treegrid role in the snippet. Rows are usually part of these composite widgets.",
	},
	{
		code:       diag.StrCellNoRow,
		roles:      []string{"cell", "gridcell"},
		containers: []string{"row"},
		message:    "Found elements with `role=\"cell\"` or `role=\"gridcell\"` but no `role=\"row\"` in the snippet. Cells are usually children of rows.",
	},
}

func structure(s *snippet, r diag.Reporter) {
	for _, c := range containments {
		tag, ok := s.firstWithRole(c.roles...)
		if !ok || s.hasRole(c.containers...) {
			continue
		}
		diag.ReportCode(r, c.code, tag.Span, c.message).
			WithSubject(diag.Subject{Tag: tag.Name, Role: tag.Role()}).
			Emit()
	}
}
