package main

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff renders the line differences from a to b, prefixing removed
// lines with "-" and added lines with "+".
func lineDiff(a, b string, colored bool) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	del, ins := fmtFunc(color.FgRed, colored), fmtFunc(color.FgGreen, colored)
	buf := &strings.Builder{}
	for _, d := range diffs {
		var f func(string, ...any) string
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, f = "- ", del
		case diffpatch.DiffInsert:
			prefix, f = "+ ", ins
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = prefix + strings.TrimSuffix(line, "\n")
			if f != nil {
				line = f("%s", line)
			}
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

func fmtFunc(attr color.Attribute, colored bool) func(string, ...any) string {
	if !colored {
		return nil
	}
	c := color.New(attr)
	c.EnableColor()
	return c.SprintfFunc()
}
