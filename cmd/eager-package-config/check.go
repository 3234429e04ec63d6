package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/serde/encode"
	"github.com/signadot/serde/format"
	"github.com/signadot/serde/ir"
	"github.com/signadot/serde/parse"
	"github.com/signadot/serde/pkgconfig"
	"github.com/signadot/serde/serde"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// check compares res with the golden file cfg.Check, writing the
// differences to cc.Out. Key order and formatting are not significant.
func check(cfg *MainConfig, cc *cli.Context, res *pkgconfig.OmahaClientConfig) error {
	d, err := os.ReadFile(cfg.Check)
	if err != nil {
		return err
	}
	golden, err := parse.Parse(d, parse.ParseFormat(cfg.inFormat(cfg.Check)))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", cfg.Check, err)
	}
	got, err := serde.ToIR(pkgconfig.OmahaClientConfigType, *res, serde.OmitEmpty(cfg.Omit))
	if err != nil {
		return err
	}
	same, err := compare(cc.Out, golden, got)
	if err != nil {
		return err
	}
	if !same {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// compare reports whether want and got hold the same JSON value, writing
// a merge patch from want to got and a line diff otherwise.
func compare(w io.Writer, want, got *ir.Node) (bool, error) {
	wantJSON, err := jsonText(want, true)
	if err != nil {
		return false, err
	}
	gotJSON, err := jsonText(got, true)
	if err != nil {
		return false, err
	}
	if jsonpatch.Equal(wantJSON, gotJSON) {
		return true, nil
	}
	patch, err := jsonpatch.CreateMergePatch(wantJSON, gotJSON)
	if err != nil {
		return false, fmt.Errorf("unable to create merge patch: %w", err)
	}
	if _, err := fmt.Fprintf(w, "# merge patch\n%s\n", patch); err != nil {
		return false, err
	}
	wantText, err := jsonText(want, false)
	if err != nil {
		return false, err
	}
	gotText, err := jsonText(got, false)
	if err != nil {
		return false, err
	}
	_, err = io.WriteString(w, lineDiff(string(wantText), string(gotText)))
	return false, err
}

func jsonText(node *ir.Node, wire bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(wire))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff renders the line differences between a and b, prefixing
// removed lines with '-' and added lines with '+'.
func lineDiff(a, b string) string {
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)
	buf := &strings.Builder{}
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}
