package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/cyberkeygen/internal/fill"
)

// NewFillCmd creates the fill command.
func NewFillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill [file.html]",
		Short: "Fill a password into the password field of an HTML page",
		Long: `Fill a password into an HTML document and write the result.

The field is chosen in this order:
  1. the focused (autofocus) input, textarea or contenteditable element
  2. the first password input
  3. the first text input whose name, id or placeholder contains "pass"

The document is read from the file argument, or from stdin when no file is
given. The password is the newest history entry unless --password or
--index is given. The chosen field is reported on stderr.

Examples:
  cyberkeygen password && cyberkeygen fill login.html -o filled.html
  curl -s https://example.com/signup | cyberkeygen fill --index 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFillCmd,
	}

	cmd.Flags().StringP("password", "p", "",
		"Password to fill (default: newest history entry)")
	cmd.Flags().IntP("index", "i", 0,
		"History entry to fill when --password is not given")
	cmd.Flags().StringP("output", "o", "",
		"Write the filled document to file instead of stdout")
	cmd.Flags().BoolP("json", "j", false,
		"Report the filled field on stderr as JSON")

	return cmd
}

func runFillCmd(cmd *cobra.Command, args []string) error {
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return err
	}
	index, err := cmd.Flags().GetInt("index")
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if password == "" {
		entries, err := a.history.List(cmd.Context())
		if err != nil {
			return err
		}
		if index < 0 || index >= len(entries) {
			return fmt.Errorf("no history entry at index %d (history has %d entries)", index, len(entries))
		}
		password = entries[index].Password
	}

	var input io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()
		input = f
	}

	// Render into memory first so that a page without a field leaves no
	// truncated output file behind.
	var filled bytes.Buffer
	target, err := fill.HandleDocument(input, &filled, fill.NewMessage(password))
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cmd, a.cfg)
	if err != nil {
		return err
	}
	if _, err := filled.WriteTo(output); err != nil {
		_ = closeOutput()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := closeOutput(); err != nil {
		return err
	}

	a.logger.Debug("filled document", "tag", target.Tag, "reason", target.Reason.String())
	if a.cfg.JSONReport {
		return json.NewEncoder(cmd.ErrOrStderr()).Encode(fill.NewResponse(target, nil))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Filled %s (%s); events: %s\n",
		describeTarget(target), target.Reason, strings.Join(target.Events, ", "))
	return nil
}

// describeTarget renders the filled element like an HTML start tag.
func describeTarget(t *fill.Target) string {
	var sb strings.Builder
	sb.WriteString("<" + t.Tag)
	for _, attr := range []struct{ key, val string }{{"type", t.Type}, {"name", t.Name}, {"id", t.ID}} {
		if attr.val != "" {
			fmt.Fprintf(&sb, " %s=%q", attr.key, attr.val)
		}
	}
	sb.WriteString(">")
	return sb.String()
}
