// Package example demonstrates terminal documentation rendering.
//
// ## Overview
//
// Every documented declaration becomes one heading-delimited block.
//
// A package-level example:
//
//     greet("docterm")
package example

// Answer returns the canonical answer.
//
// ## Examples
//
// Read it once:
//
// ```go
// x := Answer()
// ```
//
// Read it twice:
//
// ```go
// y := Answer() * 2
// ```
func Answer() int {
	return 42
}

// Greeter builds greeting messages.
type Greeter struct {
	// Name is used verbatim in greetings.
	Name string
}

// Hello returns a friendly message.
func (g *Greeter) Hello() string {
	return greet(g.Name)
}

//nospace comments lose their first character.
func Quirk() {}

func greet(name string) string {
	return "hello " + name
}
