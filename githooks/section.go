package githooks

import (
	"bytes"
	"strings"
	"text/template"

	_ "embed"
)

// Section markers. Only the content between them is managed; user content
// outside the markers is preserved across installs and uninstalls.
const (
	sectionBegin = "# --- BEGIN HOOKS INTEGRATION ---"
	sectionEnd   = "# --- END HOOKS INTEGRATION ---"
)

//go:embed templates/commit-msg.tmpl
var shimTemplate string

type sectionData struct {
	Begin  string
	End    string
	Binary string
	Hook   string
}

var shimSection = mustSection()

func mustSection() string {
	tmpl := template.Must(template.New(HookName).Parse(shimTemplate))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, sectionData{
		Begin:  sectionBegin,
		End:    sectionEnd,
		Binary: "hooks",
		Hook:   "format-commit-msg",
	})
	if err != nil {
		panic(err)
	}

	// Hook scripts with CRLF line endings fail to execute: the kernel
	// rejects the shebang line.
	return strings.ReplaceAll(buf.String(), "\r\n", "\n")
}

// injectSection merges the managed section into existing hook content.
// If section markers are found, only the content between them is
// replaced. If no markers are found, the section is appended.
func injectSection(existing, section string) string {
	beginIdx := strings.Index(existing, sectionBegin)
	endIdx := strings.Index(existing, sectionEnd)

	if beginIdx != -1 && endIdx != -1 && beginIdx < endIdx {
		return existing[:lineStart(existing, beginIdx)] + section + existing[lineEnd(existing, endIdx):]
	}

	result := existing
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result + "\n" + section
}

// removeSection removes the managed section from hook content. It returns
// the remaining content and whether a section was found.
func removeSection(content string) (string, bool) {
	beginIdx := strings.Index(content, sectionBegin)
	endIdx := strings.Index(content, sectionEnd)

	if beginIdx == -1 || endIdx == -1 || beginIdx > endIdx {
		return content, false
	}

	start := lineStart(content, beginIdx)

	// Also consume a blank line before the section if present.
	if start >= 2 && content[start-1] == '\n' && content[start-2] == '\n' {
		start--
	}

	return content[:start] + content[lineEnd(content, endIdx):], true
}

// lineStart returns the offset of the first byte of the line containing
// idx.
func lineStart(s string, idx int) int {
	start := strings.LastIndex(s[:idx], "\n")
	if start == -1 {
		return 0
	}
	return start + 1
}

// lineEnd returns the offset just past the end-marker line starting at
// idx, including its trailing newline.
func lineEnd(s string, idx int) int {
	end := idx + len(sectionEnd)
	if end < len(s) && s[end] == '\n' {
		end++
	}
	return end
}
