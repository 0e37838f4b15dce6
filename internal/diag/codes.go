package diag

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Семантика ролей
	RolInfo                    Code = 1000
	RolRedundant               Code = 1001
	RolOverridesNative         Code = 1002
	RolPresentationalFocusable Code = 1003

	// Взаимодействие
	IntInfo               Code = 2000
	IntMouseOnly          Code = 2001
	IntExpandedNoControls Code = 2002
	IntTabExpanded        Code = 2003
	IntDialogNoModal      Code = 2004
	IntSwitchNoChecked    Code = 2005

	// Доступное имя
	NamInfo               Code = 3000
	NamRoleless           Code = 3001
	NamDuplicateSource    Code = 3002
	NamEmpty              Code = 3003
	NamButtonUnnamed      Code = 3004
	NamInteractiveUnnamed Code = 3005

	// Атрибуты
	AtrInfo            Code = 4000
	AtrMissingRequired Code = 4001
	AtrDiscouraged     Code = 4002
	AtrInvalidValue    Code = 4003

	// Структура (только наличие ролей в сниппете)
	StrInfo            Code = 5000
	StrTabNoTablist    Code = 5001
	StrTabpanelNoTab   Code = 5002
	StrOptionNoListbox Code = 5003
	StrMenuitemNoMenu  Code = 5004
	StrTreeitemNoTree  Code = 5005
	StrRowNoTable      Code = 5006
	StrCellNoRow       Code = 5007

	// IO
	IOInfo       Code = 9000
	IOReadFailed Code = 9001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                "Unknown error",
		RolInfo:                    "Role information",
		RolRedundant:               "Redundant explicit role",
		RolOverridesNative:         "Explicit role overrides native semantics",
		RolPresentationalFocusable: "Focusable element with presentational role",
		IntInfo:                    "Interaction information",
		IntMouseOnly:               "Mouse handler without keyboard support",
		IntExpandedNoControls:      "aria-expanded without aria-controls",
		IntTabExpanded:             "aria-expanded on a tab",
		IntDialogNoModal:           "Dialog without aria-modal",
		IntSwitchNoChecked:         "Switch without aria-checked",
		NamInfo:                    "Accessible name information",
		NamRoleless:                "Label on an element without a role",
		NamDuplicateSource:         "Both aria-label and aria-labelledby",
		NamEmpty:                   "Empty accessible name",
		NamButtonUnnamed:           "Button without an accessible name",
		NamInteractiveUnnamed:      "Interactive role without an accessible name",
		AtrInfo:                    "Attribute information",
		AtrMissingRequired:         "Missing required ARIA attribute",
		AtrDiscouraged:             "Discouraged ARIA attribute for role",
		AtrInvalidValue:            "Invalid ARIA attribute value",
		StrInfo:                    "Structure information",
		StrTabNoTablist:            "tab without tablist",
		StrTabpanelNoTab:           "tabpanel without tab",
		StrOptionNoListbox:         "option without listbox or combobox",
		StrMenuitemNoMenu:          "menu item without menu or menubar",
		StrTreeitemNoTree:          "treeitem without tree",
		StrRowNoTable:              "row without table, grid or treegrid",
		StrCellNoRow:               "cell without row",
		IOInfo:                     "IO information",
		IOReadFailed:               "Cannot read snippet",
	}

	// severity by default; everything not listed is a warning
	codeSeverity = map[Code]Severity{
		RolRedundant:               SevInfo,
		RolPresentationalFocusable: SevError,
		NamButtonUnnamed:           SevError,
		NamInteractiveUnnamed:      SevError,
		AtrMissingRequired:         SevError,
		AtrInvalidValue:            SevError,
		IOReadFailed:               SevError,
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("ROL%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("INT%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("ATR%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// DefaultSeverity is the severity a detector reports the code with.
func (c Code) DefaultSeverity() Severity {
	if sev, ok := codeSeverity[c]; ok {
		return sev
	}
	return SevWarning
}

// Known reports whether c is a reportable code (not a group header).
func (c Code) Known() bool {
	_, ok := codeDescription[c]
	return ok && c != UnknownCode && c%1000 != 0
}

// Codes returns every reportable code in ascending order.
func Codes() []Code {
	out := make([]Code, 0, len(codeDescription))
	for c := range codeDescription {
		if c.Known() {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}

// ParseCode resolves an ID such as "INT2001" (case-insensitive) back to its Code.
func ParseCode(id string) (Code, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	i := strings.IndexFunc(id, func(r rune) bool { return r >= '0' && r <= '9' })
	if i <= 0 {
		return UnknownCode, fmt.Errorf("invalid diagnostic code %q", id)
	}
	n, err := strconv.ParseUint(id[i:], 10, 16)
	if err != nil {
		return UnknownCode, fmt.Errorf("invalid diagnostic code %q: %w", id, err)
	}
	c := Code(n)
	if !c.Known() || c.ID() != id {
		return UnknownCode, fmt.Errorf("unknown diagnostic code %q", id)
	}
	return c, nil
}
