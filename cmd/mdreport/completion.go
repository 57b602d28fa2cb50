package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // free-form value
	flagBool                   // no value
	flagNumber                 // numeric value
	flagEnum                   // has predefined values
	flagFile                   // file with extension filter
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long  string
	Short string
	Type  flagType
	Desc  string
	// Values holds enum values for flagEnum and extensions (without dot)
	// for flagFile.
	Values []string
}

// completionMeta holds completion hints that the FlagSet cannot express.
type completionMeta struct {
	Values []string // enum values
	Exts   []string // file extensions
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"page-size":   {Values: []string{"letter", "a4", "legal"}},
	"orientation": {Values: []string{"portrait", "landscape"}},
	"completion":  {Values: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
	"config":      {Exts: []string{"yaml", "yml"}},
	"css":         {Exts: []string{"css"}},
}

// markdownExts are offered for positional arguments.
var markdownExts = []string{"md", "markdown"}

// completionFlags extracts flag definitions from the real FlagSet, so
// completion never drifts from parsing.
func completionFlags() []flagDef {
	fs := newFlagSet(&cliFlags{})

	var defs []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "float64":
			fd.Type = flagNumber
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case len(meta.Exts) > 0:
				fd.Type = flagFile
				fd.Values = meta.Exts
			}
		}
		if f.Name == "code-style" {
			fd.Type = flagEnum
			fd.Values = styles.Names()
		}

		defs = append(defs, fd)
	})
	return defs
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	defs := completionFlags()
	switch shell {
	case ShellBash:
		return generateBash(w, defs)
	case ShellZsh:
		return generateZsh(w, defs)
	case ShellFish:
		return generateFish(w, defs)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes a bash completion function.
func generateBash(w io.Writer, defs []flagDef) error {
	var b strings.Builder
	var words []string
	var valueCases []string

	for _, d := range defs {
		names := []string{"--" + d.Long}
		if d.Short != "" {
			names = append(names, "-"+d.Short)
		}
		words = append(words, names...)

		pattern := strings.Join(names, "|")
		switch d.Type {
		case flagEnum:
			valueCases = append(valueCases, fmt.Sprintf(
				"        %s)\n            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n            return ;;",
				pattern, strings.Join(d.Values, " ")))
		case flagFile:
			valueCases = append(valueCases, fmt.Sprintf(
				"        %s)\n            COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\"))\n            return ;;",
				pattern, strings.Join(d.Values, "|")))
		case flagString, flagNumber:
			valueCases = append(valueCases, fmt.Sprintf("        %s)\n            return ;;", pattern))
		}
	}

	b.WriteString("# bash completion for mdreport\n")
	b.WriteString("_mdreport() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    case \"$prev\" in\n")
	for _, c := range valueCases {
		b.WriteString(c + "\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	fmt.Fprintf(&b, "    COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n",
		strings.Join(markdownExts, "|"))
	b.WriteString("}\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -F _mdreport mdreport\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshEscape escapes characters that are special inside _arguments specs.
var zshEscape = strings.NewReplacer("[", `\[`, "]", `\]`, ":", `\:`, "'", `'\''`)

// generateZsh writes a zsh completion function based on _arguments.
func generateZsh(w io.Writer, defs []flagDef) error {
	var b strings.Builder
	b.WriteString("#compdef mdreport\n\n")
	b.WriteString("_arguments -s \\\n")

	for _, d := range defs {
		desc := zshEscape.Replace(d.Desc)
		action := ""
		switch d.Type {
		case flagEnum:
			action = fmt.Sprintf(":%s:(%s)", d.Long, strings.Join(d.Values, " "))
		case flagFile:
			action = fmt.Sprintf(":%s:_files -g \"*.(%s)\"", d.Long, strings.Join(d.Values, "|"))
		case flagString, flagNumber:
			action = ":" + d.Long + ": "
		}

		if d.Short != "" {
			fmt.Fprintf(&b, "  '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n", d.Short, d.Long, d.Short, d.Long, desc, action)
		} else {
			fmt.Fprintf(&b, "  '--%s[%s]%s' \\\n", d.Long, desc, action)
		}
	}

	glob := strings.Join(markdownExts, "|")
	fmt.Fprintf(&b, "  '1:input:_files -g \"*.(%s)\"' \\\n", glob)
	b.WriteString("  '2:output:_files'\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// fishEscape escapes single quotes for fish strings.
var fishEscape = strings.NewReplacer(`\`, `\\`, "'", `\'`)

// generateFish writes fish complete commands.
func generateFish(w io.Writer, defs []flagDef) error {
	var b strings.Builder
	b.WriteString("# fish completion for mdreport\n")
	b.WriteString("complete -c mdreport -f\n")

	for _, d := range defs {
		fmt.Fprintf(&b, "complete -c mdreport")
		if d.Short != "" {
			fmt.Fprintf(&b, " -s %s", d.Short)
		}
		fmt.Fprintf(&b, " -l %s -d '%s'", d.Long, fishEscape.Replace(d.Desc))
		switch d.Type {
		case flagEnum:
			fmt.Fprintf(&b, " -x -a '%s'", strings.Join(d.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, " -r -a '(__fish_complete_suffix .%s)'", strings.Join(d.Values, ") (__fish_complete_suffix ."))
		case flagString, flagNumber:
			b.WriteString(" -x")
		}
		b.WriteString("\n")
	}

	for _, ext := range markdownExts {
		fmt.Fprintf(&b, "complete -c mdreport -a '(__fish_complete_suffix .%s)'\n", ext)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
