package diagfmt

import (
	"fmt"
	"io"

	"arialint/internal/diag"
	"arialint/internal/fix"
	"arialint/internal/summary"
)

const (
	emptySnippetHTML = `<div class="empty-state">Paste code to see quick ARIA checks.</div>`
	noIssuesHTML     = `<div class="empty-state">No obvious ARIA issues detected. This doesn't guarantee full accessibility, but it's a good sign.</div>`
	noAttrsHTML      = `<div class="empty-state">No <code>aria-*</code> attributes detected. If you're already using semantic HTML and simple controls, you may not need ARIA states or properties here.</div>`
	issueTagHTML     = `<span class="aria-issue-tag">Potential issue – see ARIA issues.</span>`
)

// HTMLStrings renders every diagnostic as a legacy HTML fragment string.
func HTMLStrings(diags []diag.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, HTMLMessage(d.Message))
	}
	return out
}

// HTML writes the issue list. blank selects the empty-snippet placeholder
// when there is nothing to report.
func HTML(w io.Writer, diags []diag.Diagnostic, blank bool) error {
	if len(diags) == 0 {
		placeholder := noIssuesHTML
		if blank {
			placeholder = emptySnippetHTML
		}
		_, err := fmt.Fprintln(w, placeholder)
		return err
	}
	if _, err := fmt.Fprintln(w, `<ul class="smell-list">`); err != nil {
		return err
	}
	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "  <li class=\"%s\" data-code=\"%s\">%s</li>\n", d.Severity.Label(), d.Code.ID(), HTMLMessage(d.Message)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</ul>")
	return err
}

// AttributesHTML writes the "attributes present" list.
func AttributesHTML(w io.Writer, s summary.Summary) error {
	if len(s.Attributes) == 0 {
		_, err := fmt.Fprintln(w, noAttrsHTML)
		return err
	}
	if _, err := fmt.Fprintln(w, `<ul class="aria-list">`); err != nil {
		return err
	}
	for _, a := range s.Attributes {
		tag := ""
		if a.Issue {
			tag = issueTagHTML
		}
		code := escapeText(fmt.Sprintf("%s=\"%s\"", a.Name, a.Value))
		if _, err := fmt.Fprintf(w, "  <li><code>%s</code> – %s%s</li>\n", code, escapeText(a.Hint), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</ul>")
	return err
}

// ChangesHTML writes the change log of a fix run.
func ChangesHTML(w io.Writer, res fix.Result) error {
	if !res.Changed() {
		return nil
	}
	if _, err := fmt.Fprintln(w, `<ul class="change-log">`); err != nil {
		return err
	}
	for _, c := range res.Changes {
		if _, err := fmt.Fprintf(w, "  <li>%s</li>\n", HTMLMessage(c.Message)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</ul>")
	return err
}
