// Package template renders agent prompt templates by substituting named
// variables into {name} placeholders.
package template

import "strings"

// DefaultInput replaces a literal {input} placeholder that survives variable
// substitution. Agents commonly end their prompt with {input} so a caller can
// inject context; when nothing is injected, a generic instruction stands in.
const DefaultInput = "Please perform your analysis based on the current context."

// Render substitutes every occurrence of {name} for each supplied key.
// Substitution is a single, non-recursive pass per key. After all supplied
// substitutions, any remaining literal {input} token is replaced with
// DefaultInput. Unrecognized placeholders other than {input} are left
// untouched.
func Render(tmpl string, vars map[string]string) string {
	out := tmpl
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return strings.ReplaceAll(out, "{input}", DefaultInput)
}
