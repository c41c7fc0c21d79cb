package version

import (
	"fmt"
	"io"
)

type License struct {
	ModuleName  string
	LicenseName string
	Link        string
}

var Licenses = []License{
	{
		ModuleName:  "httpui",
		LicenseName: "MIT License",
		Link:        "https://github.com/nojima/httpui/blob/master/LICENSE",
	},
	{
		ModuleName:  "Go",
		LicenseName: "BSD License",
		Link:        "https://golang.org/LICENSE",
	},
	{
		ModuleName:  "aurora",
		LicenseName: "WTFPL",
		Link:        "https://github.com/logrusorgru/aurora/blob/master/LICENSE",
	},
	{
		ModuleName:  "go-isatty",
		LicenseName: "MIT License",
		Link:        "https://github.com/mattn/go-isatty/blob/master/LICENSE",
	},
	{
		ModuleName:  "getopt",
		LicenseName: "BSD License",
		Link:        "https://github.com/pborman/getopt/blob/master/LICENSE",
	},
	{
		ModuleName:  "errors",
		LicenseName: "BSD License",
		Link:        "https://github.com/pkg/errors/blob/master/LICENSE",
	},
	{
		ModuleName:  "bytefmt",
		LicenseName: "Apache License",
		Link:        "https://github.com/cloudfoundry/bytefmt/blob/master/LICENSE",
	},
	{
		ModuleName:  "bubbletea",
		LicenseName: "MIT License",
		Link:        "https://github.com/charmbracelet/bubbletea/blob/master/LICENSE",
	},
	{
		ModuleName:  "bubbles",
		LicenseName: "MIT License",
		Link:        "https://github.com/charmbracelet/bubbles/blob/master/LICENSE",
	},
	{
		ModuleName:  "lipgloss",
		LicenseName: "MIT License",
		Link:        "https://github.com/charmbracelet/lipgloss/blob/master/LICENSE",
	},
	{
		ModuleName:  "clipboard",
		LicenseName: "BSD License",
		Link:        "https://github.com/atotto/clipboard/blob/master/LICENSE",
	},
	{
		ModuleName:  "deque",
		LicenseName: "MIT License",
		Link:        "https://github.com/gammazero/deque/blob/master/LICENSE",
	},
	{
		ModuleName:  "logrus",
		LicenseName: "MIT License",
		Link:        "https://github.com/sirupsen/logrus/blob/master/LICENSE",
	},
	{
		ModuleName:  "ecslogrus",
		LicenseName: "Apache License",
		Link:        "https://github.com/elastic/ecs-logging-go-logrus/blob/main/LICENSE",
	},
	{
		ModuleName:  "uuid",
		LicenseName: "BSD License",
		Link:        "https://github.com/google/uuid/blob/master/LICENSE",
	},
	{
		ModuleName:  "x/net",
		LicenseName: "BSD License",
		Link:        "https://go.googlesource.com/net/+/master/LICENSE",
	},
}

func PrintLicenses(w io.Writer) {
	for _, license := range Licenses {
		fmt.Fprintf(w, "%s:\n  %s\n  %s\n\n",
			license.ModuleName,
			license.LicenseName,
			license.Link,
		)
	}
}
