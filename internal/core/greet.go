package core

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultName is used when no name is supplied to Greet.
const DefaultName = "world"

// Greeting is the JSON payload of the hello command.
type Greeting struct {
	Message string `json:"message"`
}

// Greet builds "Hello, {name}!". An empty name falls back to DefaultName, and
// upper converts the whole message to upper case.
func Greet(name string, upper bool) Result {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	message := fmt.Sprintf("Hello, %s!", name)
	if upper {
		message = cases.Upper(language.Und).String(message)
	}
	return Succeeded(message, Greeting{Message: message})
}
