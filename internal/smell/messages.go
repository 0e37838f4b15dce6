package smell

import (
	"fmt"

	"arialint/internal/diag"
)

var lit = diag.Literal

func msgRedundantRole(tag, role string) string {
	return fmt.Sprintf("Native `<%s>` already has the implicit `%s` role. You usually don't need `role=\"%s\"` on semantic elements.", lit(tag), lit(role), lit(role))
}

func msgOverridesNative(tag, implicit, role string) string {
	return fmt.Sprintf("Native `<%s>` has implicit role `%s`, but an explicit `role=\"%s\"` is set. This can confuse assistive technologies; double-check that this is the intended pattern.", lit(tag), lit(implicit), lit(role))
}

const (
	msgPresentationalFocusable = "Focusable element is using `role=\"presentation\"` or `role=\"none\"`, which can hide it from assistive technologies."
	msgMouseOnly               = "Element has a mouse event handler but no keyboard support. Consider using a `<button>` or adding keyboard handlers and `tabindex=\"0\"`."
	msgExpandedNoControls      = "Element uses `aria-expanded` without a matching `aria-controls`. Consider referencing the ID of the collapsible content with `aria-controls`."
	msgTabExpanded             = "Found `aria-expanded` on an element with `role=\"tab\"`. Tabs usually use `aria-selected` to indicate the active tab."
	msgDialogNoModal           = "Dialog found without `aria-modal`. If this is a modal dialog, consider `aria-modal=\"true\"` and managing focus."
	msgSwitchNoChecked         = "Element with `role=\"switch\"` is missing `aria-checked`. Switches should expose their on/off state."
	msgButtonUnnamed           = "Native `<button>` does not have an accessible name. Add visible text inside the button, or use `aria-label`, `aria-labelledby`, or `title`."
)

func msgRoleless(tag string) string {
	return fmt.Sprintf("Element `<%s>` has `aria-label` or `aria-labelledby` but no semantic role. Consider adding a role or using a native element (for example, `<button>`, `<nav>`, or `<main>`).", lit(tag))
}

func msgDuplicateName(tag string) string {
	return fmt.Sprintf("Element `<%s>` uses `aria-label` and `aria-labelledby` together. Elements should have a single accessible name source; choose one.", lit(tag))
}

func msgEmptyName(attr string) string {
	return fmt.Sprintf("Attribute `%s` is present but empty. Elements should not use an empty accessible name; provide meaningful text or remove the attribute.", lit(attr))
}

func msgInteractiveUnnamed(tag, role string) string {
	return fmt.Sprintf("Interactive element `<%s>` with `role=\"%s\"` does not have an accessible name. Add visible text, `aria-label`, or `aria-labelledby`.", lit(tag), lit(role))
}

func msgMissingRequired(role, attr string) string {
	return fmt.Sprintf("Element with `role=\"%s\"` is missing required `%s`.", lit(role), lit(attr))
}

func msgDiscouraged(attr, role string) string {
	return fmt.Sprintf("Attribute `%s` is not typically used with `role=\"%s\"`. Double-check if this is the right pattern.", lit(attr), lit(role))
}

func msgInvalidValue(attr, value string) string {
	return fmt.Sprintf("Attribute `%s` has value `\"%s\"`, which is not a valid value for this ARIA attribute.", lit(attr), lit(value))
}
