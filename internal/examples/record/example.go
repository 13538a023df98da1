package record

//go:generate asjson -type Example display debug parse -set

type Example struct {
	Flag bool    `json:"flag"`
	Name string  `json:"name"`
	Note *string `json:"note"`
}

//go:generate asjson -type ExamplePretty display -pretty debug -pretty parse

type ExamplePretty struct {
	Flag bool    `json:"flag"`
	Name string  `json:"name"`
	Note *string `json:"note"`
}
