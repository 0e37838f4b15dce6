package roles

const mdnBase = "https://developer.mozilla.org/en-US/docs/Web/Accessibility/ARIA/"

// table is the reference data in display order. Categories appear in the
// order of their first role.
var table = []Role{
	{
		Name:        "alert",
		Category:    CategoryLiveRegion,
		Description: "Important, usually time-sensitive information.",
		DocURL:      mdnBase + "Roles/alert_role",
	},
	{
		Name:        "log",
		Category:    CategoryLiveRegion,
		Description: "Live region where new information is added and old information may disappear.",
		DocURL:      mdnBase + "Roles/log_role",
	},
	{
		Name:        "marquee",
		Category:    CategoryLiveRegion,
		Description: "Non-essential information that changes frequently.",
		DocURL:      mdnBase + "Roles/marquee_role",
	},
	{
		Name:        "status",
		Category:    CategoryLiveRegion,
		Description: "Advisory information; usually not as urgent as an alert.",
		DocURL:      mdnBase + "Roles/status_role",
	},
	{
		Name:        "timer",
		Category:    CategoryLiveRegion,
		Description: "Numeric counter which indicates elapsed or remaining time.",
		DocURL:      mdnBase + "Roles/timer_role",
	},
	{
		Name:        "banner",
		Category:    CategoryLandmark,
		Description: "Site-oriented content, typically including a logo or site-level heading.",
		DocURL:      mdnBase + "Roles/banner_role",
	},
	{
		Name:        "complementary",
		Category:    CategoryLandmark,
		Description: "Supporting section of the page, complementary but not central.",
		DocURL:      mdnBase + "Roles/complementary_role",
	},
	{
		Name:        "contentinfo",
		Category:    CategoryLandmark,
		Description: "Metadata about the page such as copyright or related links.",
		DocURL:      mdnBase + "Roles/contentinfo_role",
	},
	{
		Name:        "form",
		Category:    CategoryLandmark,
		Description: "Region of the page that represents a form, when it has an accessible name.",
		DocURL:      mdnBase + "Roles/form_role",
	},
	{
		Name:            "main",
		Category:        CategoryLandmark,
		Description:     "Main content of a document; unique and central to the page.",
		PreferredNative: "<main>",
		DocURL:          mdnBase + "Roles/main_role",
	},
	{
		Name:            "navigation",
		Category:        CategoryLandmark,
		Description:     "Collection of navigational links.",
		PreferredNative: "<nav>",
		DocURL:          mdnBase + "Roles/navigation_role",
	},
	{
		Name:        "region",
		Category:    CategoryLandmark,
		Description: "Noteworthy section of the page with an accessible name.",
		DocURL:      mdnBase + "Roles/region_role",
	},
	{
		Name:        "search",
		Category:    CategoryLandmark,
		Description: "Region of the page devoted to search functionality.",
		DocURL:      mdnBase + "Roles/search_role",
	},
	{
		Name:        "alertdialog",
		Category:    CategoryWindow,
		Description: "Dialog containing an alert or time-sensitive information.",
		DocURL:      mdnBase + "Roles/alertdialog_role",
	},
	{
		Name:        "dialog",
		Category:    CategoryWindow,
		Description: "Modal or non-modal dialog window.",
		DocURL:      mdnBase + "Roles/dialog_role",
	},
	{
		Name:            "button",
		Category:        CategoryWidget,
		Description:     "Clickable element that performs an action.",
		PreferredNative: "<button>",
		GoodFor:         []string{"custom button", "icon button", "JS-only click handler"},
		DocURL:          mdnBase + "Roles/button_role",
	},
	{
		Name:        "checkbox",
		Category:    CategoryWidget,
		Description: "Checkable input that has two or three states.",
		DocURL:      mdnBase + "Roles/checkbox_role",
	},
	{
		Name:        "combobox",
		Category:    CategoryWidget,
		Description: "Composite widget combining a text field with a list of possible values.",
		DocURL:      mdnBase + "Roles/combobox_role",
	},
	{
		Name:        "grid",
		Category:    CategoryWidget,
		Description: "Widget with rows and cells, similar to a spreadsheet.",
		DocURL:      mdnBase + "Roles/grid_role",
	},
	{
		Name:        "gridcell",
		Category:    CategoryWidget,
		Description: "Cell in a grid or treegrid, similar to HTML <td>.",
		DocURL:      mdnBase + "Roles/gridcell_role",
	},
	{
		Name:            "link",
		Category:        CategoryWidget,
		Description:     "Interactive reference to a resource.",
		PreferredNative: "<a href>",
		DocURL:          mdnBase + "Roles/link_role",
	},
	{
		Name:        "listbox",
		Category:    CategoryWidget,
		Description: "List of options from which a user can select one or more.",
		DocURL:      mdnBase + "Roles/listbox_role",
	},
	{
		Name:        "menu",
		Category:    CategoryWidget,
		Description: "A type of list that offers a set of choices.",
		DocURL:      mdnBase + "Roles/menu_role",
	},
	{
		Name:        "menubar",
		Category:    CategoryWidget,
		Description: "Presentation of a menu that is usually persistent and horizontal.",
		DocURL:      mdnBase + "Roles/menubar_role",
	},
	{
		Name:        "menuitem",
		Category:    CategoryWidget,
		Description: "Option in a set of choices contained in a menu or menubar.",
		DocURL:      mdnBase + "Roles/menuitem_role",
	},
	{
		Name:        "menuitemcheckbox",
		Category:    CategoryWidget,
		Description: "Checkable menu item with true/false/mixed states.",
		DocURL:      mdnBase + "Roles/menuitemcheckbox_role",
	},
	{
		Name:        "menuitemradio",
		Category:    CategoryWidget,
		Description: "Menu item that is part of a group where only one can be checked.",
		DocURL:      mdnBase + "Roles/menuitemradio_role",
	},
	{
		Name:        "meter",
		Category:    CategoryWidget,
		Description: "Represents a scalar measurement within a known range.",
		DocURL:      mdnBase + "Roles/meter_role",
	},
	{
		Name:        "option",
		Category:    CategoryWidget,
		Description: "Selectable item in a listbox, combo box, or tree.",
		DocURL:      mdnBase + "Roles/option_role",
	},
	{
		Name:        "progressbar",
		Category:    CategoryWidget,
		Description: "Displays the progress status for a task.",
		DocURL:      mdnBase + "Roles/progressbar_role",
	},
	{
		Name:        "radio",
		Category:    CategoryWidget,
		Description: "Checkable input in a group of radio roles, where only one can be checked.",
		DocURL:      mdnBase + "Roles/radio_role",
	},
	{
		Name:        "radiogroup",
		Category:    CategoryWidget,
		Description: "Group of related radio buttons.",
		DocURL:      mdnBase + "Roles/radiogroup_role",
	},
	{
		Name:        "scrollbar",
		Category:    CategoryWidget,
		Description: "Controls the scrolling of content within a region.",
		DocURL:      mdnBase + "Roles/scrollbar_role",
	},
	{
		Name:        "searchbox",
		Category:    CategoryWidget,
		Description: "Text box that is intended for search.",
		DocURL:      mdnBase + "Roles/searchbox_role",
	},
	{
		Name:        "separator",
		Category:    CategoryWidget,
		Description: "Divides and distinguishes sections of content. Focusable when used as a widget.",
		DocURL:      mdnBase + "Roles/separator_role",
	},
	{
		Name:        "slider",
		Category:    CategoryWidget,
		Description: "Allows the user to select a value from a given range.",
		DocURL:      mdnBase + "Roles/slider_role",
	},
	{
		Name:        "spinbutton",
		Category:    CategoryWidget,
		Description: "Allows the user to step through a range of values.",
		DocURL:      mdnBase + "Roles/spinbutton_role",
	},
	{
		Name:        "switch",
		Category:    CategoryWidget,
		Description: "Represents a checkbox that represents on/off values.",
		DocURL:      mdnBase + "Roles/switch_role",
	},
	{
		Name:        "tab",
		Category:    CategoryWidget,
		Description: "A header in a tabbed interface.",
		GoodFor:     []string{"tabbed navigation"},
		DocURL:      mdnBase + "Roles/tab_role",
	},
	{
		Name:        "tablist",
		Category:    CategoryWidget,
		Description: "Container for a set of tabs.",
		DocURL:      mdnBase + "Roles/tablist_role",
	},
	{
		Name:        "tabpanel",
		Category:    CategoryWidget,
		Description: "The panel associated with a tab.",
		GoodFor:     []string{"tab content"},
		DocURL:      mdnBase + "Roles/tabpanel_role",
	},
	{
		Name:        "textbox",
		Category:    CategoryWidget,
		Description: "Input that allows free-form text.",
		DocURL:      mdnBase + "Roles/textbox_role",
	},
	{
		Name:        "tree",
		Category:    CategoryWidget,
		Description: "Widget that presents a hierarchical list of items.",
		DocURL:      mdnBase + "Roles/tree_role",
	},
	{
		Name:        "treegrid",
		Category:    CategoryWidget,
		Description: "Grid whose rows can be expanded and collapsed in a hierarchical structure.",
		DocURL:      mdnBase + "Roles/treegrid_role",
	},
	{
		Name:        "treeitem",
		Category:    CategoryWidget,
		Description: "Item in a tree structure.",
		DocURL:      mdnBase + "Roles/treeitem_role",
	},
	{
		Name:        "toolbar",
		Category:    CategoryWidget,
		Description: "Group of controls, such as buttons or checkboxes.",
		DocURL:      mdnBase + "Roles/toolbar_role",
	},
	{
		Name:        "tooltip",
		Category:    CategoryWidget,
		Description: "Popup that provides a description for another element.",
		DocURL:      mdnBase + "Roles/tooltip_role",
	},
	{
		Name:        "article",
		Category:    CategoryDocumentStructure,
		Description: "Self-contained composition in a document or site.",
		DocURL:      mdnBase + "Roles/article_role",
	},
	{
		Name:        "cell",
		Category:    CategoryDocumentStructure,
		Description: "Generic cell in a tabular container.",
		DocURL:      mdnBase + "Roles/cell_role",
	},
	{
		Name:        "columnheader",
		Category:    CategoryDocumentStructure,
		Description: "Header for a column of cells.",
		DocURL:      mdnBase + "Roles/columnheader_role",
	},
	{
		Name:        "definition",
		Category:    CategoryDocumentStructure,
		Description: "Definition of a term or concept.",
		DocURL:      mdnBase + "Roles/definition_role",
	},
	{
		Name:        "document",
		Category:    CategoryDocumentStructure,
		Description: "Section of content to be read in document/browse mode inside an application.",
		DocURL:      mdnBase + "Roles/document_role",
	},
	{
		Name:        "feed",
		Category:    CategoryDocumentStructure,
		Description: "Dynamic list of articles or concepts that may be loaded progressively.",
		DocURL:      mdnBase + "Roles/feed_role",
	},
	{
		Name:        "figure",
		Category:    CategoryDocumentStructure,
		Description: "Illustration, diagram, code snippet, etc., that is referenced from the main content.",
		DocURL:      mdnBase + "Roles/figure_role",
	},
	{
		Name:        "group",
		Category:    CategoryDocumentStructure,
		Description: "Set of user interface objects that are not included in a page summary or table of contents.",
		DocURL:      mdnBase + "Roles/group_role",
	},
	{
		Name:        "heading",
		Category:    CategoryDocumentStructure,
		Description: "Heading for a section of the page.",
		DocURL:      mdnBase + "Roles/heading_role",
	},
	{
		Name:        "img",
		Category:    CategoryDocumentStructure,
		Description: "Element that represents a single graphical image composed of multiple elements.",
		DocURL:      mdnBase + "Roles/img_role",
	},
	{
		Name:        "list",
		Category:    CategoryDocumentStructure,
		Description: "Container for a list of items.",
		DocURL:      mdnBase + "Roles/list_role",
	},
	{
		Name:        "listitem",
		Category:    CategoryDocumentStructure,
		Description: "Item within a list.",
		DocURL:      mdnBase + "Roles/listitem_role",
	},
	{
		Name:        "math",
		Category:    CategoryDocumentStructure,
		Description: "Mathematical expression.",
		DocURL:      mdnBase + "Roles/math_role",
	},
	{
		Name:        "note",
		Category:    CategoryDocumentStructure,
		Description: "Content that is parenthetical or ancillary to the main content.",
		DocURL:      mdnBase + "Roles/note_role",
	},
	{
		Name:        "presentation",
		Category:    CategoryDocumentStructure,
		Description: "Removes element's implicit semantics, synonym of none.",
		DocURL:      mdnBase + "Roles/presentation_role",
	},
	{
		Name:        "none",
		Category:    CategoryDocumentStructure,
		Description: "Synonym of presentation; removes semantics.",
		DocURL:      mdnBase + "Roles/none_role",
	},
	{
		Name:        "row",
		Category:    CategoryDocumentStructure,
		Description: "Row of cells in a table, grid, or treegrid.",
		DocURL:      mdnBase + "Roles/row_role",
	},
	{
		Name:        "rowgroup",
		Category:    CategoryDocumentStructure,
		Description: "Group of rows within a tabular container.",
		DocURL:      mdnBase + "Roles/rowgroup_role",
	},
	{
		Name:        "rowheader",
		Category:    CategoryDocumentStructure,
		Description: "Header for a row of cells.",
		DocURL:      mdnBase + "Roles/rowheader_role",
	},
	{
		Name:        "table",
		Category:    CategoryDocumentStructure,
		Description: "A table of data arranged in rows and columns.",
		DocURL:      mdnBase + "Roles/table_role",
	},
	{
		Name:        "term",
		Category:    CategoryDocumentStructure,
		Description: "Term or concept that is defined by the associated definition.",
		DocURL:      mdnBase + "Roles/term_role",
	},
	{
		Name:        "generic",
		Category:    CategoryDocumentStructure,
		Description: "Nameless container element with no semantic meaning.",
		DocURL:      mdnBase + "Roles/generic_role",
	},
	{
		Name:        "directory",
		Category:    CategoryDocumentStructure,
		Description: "Deprecated: static table of contents. Use list instead.",
		Deprecated:  true,
		DocURL:      mdnBase + "Reference/Roles/directory_role",
	},
	{
		Name:        "application",
		Category:    CategoryOther,
		Description: "Indicates the element is a web application, not a document.",
		DocURL:      mdnBase + "Roles/application_role",
	},
}

var stateHints = map[string]string{
	"aria-expanded":    "Indicates whether the element controls content that can be expanded or collapsed.",
	"aria-pressed":     "Represents the pressed state of a toggle button.",
	"aria-checked":     "Represents the checked state of checkboxes, radio buttons, and switches.",
	"aria-selected":    "Represents the selected state of items in tabs, listboxes, and other composite widgets.",
	"aria-disabled":    "Marks the element as disabled and not operable.",
	"aria-hidden":      "Indicates whether the element is exposed to assistive technologies.",
	"aria-modal":       "Indicates whether a dialog is modal.",
	"aria-controls":    "Identifies the element(s) whose content or presence is controlled by this element.",
	"aria-labelledby":  "Identifies the element(s) that label this element.",
	"aria-describedby": "Identifies the element(s) that describe this element.",
}

var valueRange = []string{"aria-valuemin", "aria-valuemax", "aria-valuenow"}

var requiredAttrs = map[string][]string{
	"checkbox":         {"aria-checked"},
	"switch":           {"aria-checked"},
	"menuitemcheckbox": {"aria-checked"},
	"menuitemradio":    {"aria-checked"},
	"tab":              {"aria-selected"},
	"option":           {"aria-selected"},
	"slider":           valueRange,
	"spinbutton":       valueRange,
	"scrollbar":        valueRange,
	"progressbar":      valueRange,
	"combobox":         {"aria-expanded", "aria-controls"},
}

var discouragedAttrs = map[string][]string{
	"button":   {"aria-selected"},
	"tabpanel": {"aria-selected"},
	"listitem": {"aria-expanded"},
	"checkbox": {"aria-selected"},
	"radio":    {"aria-selected"},
	"link":     {"aria-pressed"},
	"tab":      {"aria-pressed"},
}
