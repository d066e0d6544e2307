package casing_test

import (
	"fmt"

	c "github.com/Gobd/casing"
)

func ExampleToUpperCase() {
	fmt.Println(c.ToUpperCase("hello"))
	// Output: HELLO
}

func ExampleToLowerCase() {
	fmt.Println(c.ToLowerCase("HELLO"))
	// Output: hello
}

func ExampleToCapitalize() {
	fmt.Println(c.ToCapitalize("HELLO"))
	fmt.Printf("%q\n", c.ToCapitalize(""))
	// Output:
	// Hello
	// ""
}

func ExampleParseMode() {
	m, err := c.ParseMode("capitalize")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Apply("hELLO wORLD"))

	_, err = c.ParseMode("shout")
	fmt.Println(err)
	// Output:
	// Hello world
	// unknown case mode "shout"
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func ExampleValidateStruct() {
	country := Country{Code: "de", Name: "germany"}
	err := c.ValidateStruct(&country,
		c.Field(&country.Code, c.IsUpperCase()),
		c.Field(&country.Name, c.IsCapitalized()),
	)
	fmt.Println(err)
	// Output: code: must be in upper case; name: must be capitalized.
}

func ExampleSummary() {
	s, _ := c.Summary(c.IsLowerCase())
	fmt.Println(s)
	// Output: Must be lower case. (case: lower)
}
