package provider

import "slices"

// Rule matches a provider by a literal marker in the raw request JSON.
type Rule struct {
	Name   string
	Marker string
}

func newRule(name string) Rule {
	return Rule{Name: name, Marker: `"provider":"` + name + `"`}
}

// rules is ordered by precedence; the first matching marker wins.
var rules = []Rule{
	newRule("gigachat"),
	newRule("groq"),
	newRule("ollama"),
	// Future providers are appended here.
}

// Rules returns the inference rules in precedence order.
func Rules() []Rule {
	return slices.Clone(rules)
}
