package report

import "strings"

// Section is one titled block of report output.
type Section struct {
	Title string
	Lines []string
}

// String renders the section preceded by a blank line.
func (s Section) String() string {
	var b strings.Builder
	b.WriteString("\n--- ")
	b.WriteString(s.Title)
	b.WriteString(" ---\n")
	for _, line := range s.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
