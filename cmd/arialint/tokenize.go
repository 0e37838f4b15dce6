package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"arialint/internal/diagfmt"
	"arialint/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Show the tags the detector sees in a snippet",
	Long: `Tokenize prints the start tags found by the detector's scanner with their
attributes and positions. With --html5 the snippet is also run through an
HTML5 tokenizer, which helps to spot markup the scanner reads differently.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("html5", false, "also list start tags as an HTML5 tokenizer reads them")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	html5, err := cmd.Flags().GetBool("html5")
	if err != nil {
		return fmt.Errorf("failed to get html5 flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		if err := diagfmt.FormatTagsPretty(out, result.Tags, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTagsJSON(out, result.Tags); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if html5 {
		fmt.Fprintln(cmd.ErrOrStderr(), "-- html5 --")
		return printHTML5Tags(cmd.ErrOrStderr(), result.File.Content)
	}
	return nil
}

// printHTML5Tags lists start tags in HTML5 tokenizer order. Unlike the
// scanner it lower-cases attribute names and decodes entities.
func printHTML5Tags(w io.Writer, content []byte) error {
	z := html.NewTokenizer(bytes.NewReader(content))
	n := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil
			}
			return z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			n++
			parts := make([]string, 0, len(tok.Attr))
			for _, a := range tok.Attr {
				parts = append(parts, fmt.Sprintf("%s=%q", a.Key, a.Val))
			}
			line := fmt.Sprintf("%3d: %s", n, tok.Data)
			if tt == html.SelfClosingTagToken {
				line += " (self-closing)"
			}
			if len(parts) > 0 {
				line += " [" + strings.Join(parts, " ") + "]"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
}
