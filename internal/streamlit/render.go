package streamlit

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"text/template"
)

//go:embed config.toml.tmpl
var fileTemplate string

var tmpl = template.Must(template.New(FileName).Funcs(template.FuncMap{
	"bool":    strconv.FormatBool,
	"literal": literal,
}).Parse(fileTemplate))

// Render produces the settings file content. The port is emitted unquoted and
// unmodified; colours are emitted as TOML literal strings.
func Render(s Settings) []byte {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, s); err != nil {
		// The template only formats plain struct fields.
		panic(fmt.Sprintf("render %s: %v", FileName, err))
	}
	return buf.Bytes()
}

func literal(value string) string {
	return "'" + value + "'"
}
