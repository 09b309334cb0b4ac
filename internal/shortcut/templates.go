package shortcut

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"vbs":         quoteVBScript,
	"applescript": quoteAppleScript,
	"desktopExec": quoteDesktopExec,
	"desktopStr":  escapeDesktopString,
}).ParseFS(templateFS, "templates/*.tmpl"))

// render executes the named embedded template and guarantees a trailing newline.
func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// quoteVBScript escapes s for use inside a VBScript string literal.
func quoteVBScript(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// quoteAppleScript escapes s for use inside an AppleScript string literal.
func quoteAppleScript(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// escapeDesktopString applies the escapes of a desktop entry string value.
func escapeDesktopString(s string) string {
	return strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\t", `\t`, "\r", `\r`).Replace(s)
}

// quoteDesktopExec quotes a program path for an Exec= key when it contains
// characters the desktop entry format treats as reserved. Exec is itself a
// string value, so the quoted argument is string-escaped afterwards.
func quoteDesktopExec(s string) string {
	if !strings.ContainsAny(s, " \t\n\r\"'\\><~|&;$*?#()`") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return escapeDesktopString(`"` + r.Replace(s) + `"`)
}
