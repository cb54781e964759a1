// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	InvalidExpressionId Id = iota + 1
	UnknownStageId
	InvalidStageArgumentsId
	InvalidPatternId
	ConfigLoadFailedId
	OutputFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		title    string      // short headline, also used by the plain renderer
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // documentation pages relevant to the issue
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Markdown returns the full Markdown document of the issue, including the
// "See also" section when the issue has doc links.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(i.title)
	sb.WriteString("\n")
	sb.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			sb.WriteString("- <" + string(link) + ">\n")
		}
	}
	return sb.String()
}

// Render renders the issue with the given glamour style ("auto", "dark",
// "light", "notty", or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	invalidExpressionIssue = &Issue{
		id:    InvalidExpressionId,
		title: "The pipeline expression could not be used",
		mdMsg: `
A pipeline is a list of stages joined by ` + "`|`" + `, written with shell quoting
rules. It is never run by a shell, so anything beyond quoting and pipes is
rejected.

## Things you can try
- Quote arguments that contain ` + "`|`" + `, spaces, or ` + "`$`" + `:
~~~
$ linepipe run "grep -E 'warn|error' | sort -u" -f app.log
~~~
- Write results with ` + "`-o FILE`" + ` instead of ` + "`> FILE`" + `
- Pass literal text instead of ` + "`$VAR`" + ` or ` + "`$(cmd)`",
	}

	unknownStageIssue = &Issue{
		id:    UnknownStageId,
		title: "Unknown stage",
		mdMsg: `
The pipeline names a stage that linepipe does not provide.

## Things you can try
- List the available stages:
~~~
$ linepipe stages
~~~
- Check the spelling of the stage name`,
	}

	invalidStageArgumentsIssue = &Issue{
		id:    InvalidStageArgumentsId,
		title: "A stage was given invalid arguments",
		mdMsg: `
The stage rejected a flag, a flag combination, or an operand. The lines were
left as they were before that stage.

## Things you can try
- Read the stage help:
~~~
$ linepipe doc sort
~~~
- Flags that select exclusive modes (` + "`uniq -c -d`" + `, ` + "`head -n -c`" + `) cannot be combined`,
	}

	invalidPatternIssue = &Issue{
		id:    InvalidPatternId,
		title: "Invalid grep pattern",
		mdMsg: `
The pattern could not be compiled. Patterns are POSIX basic regular
expressions, or extended ones with ` + "`grep -E`" + `.

## Things you can try
- Close every ` + "`[`" + ` bracket expression and ` + "`\\(`" + ` group
- Use character classes inside brackets: ` + "`[[:digit:]]`" + `
- Escape a trailing backslash`,
	}

	configLoadFailedIssue = &Issue{
		id:    ConfigLoadFailedId,
		title: "Failed to load configuration",
		mdMsg: `
The configuration file is not valid CUE or does not match the configuration
schema.

## Things you can try
- Show the effective configuration and the file location:
~~~
$ linepipe config show
$ linepipe config path
~~~
- Recreate a default file with ` + "`linepipe config init --force`",
	}

	outputFailedIssue = &Issue{
		id:    OutputFailedId,
		title: "Failed to write output",
		mdMsg: `
The result could not be written to the requested file.

## Things you can try
- Check that the directory exists and is writable
- Use ` + "`--tee`" + ` to write to several files while keeping stdout`,
	}

	issues = map[Id]*Issue{
		invalidExpressionIssue.Id():     invalidExpressionIssue,
		unknownStageIssue.Id():          unknownStageIssue,
		invalidStageArgumentsIssue.Id(): invalidStageArgumentsIssue,
		invalidPatternIssue.Id():        invalidPatternIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		outputFailedIssue.Id():          outputFailedIssue,
	}
)

// Values returns all known issues, ordered by Id.
func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
