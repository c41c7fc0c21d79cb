package version

import (
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	if s := Current().String(); s != "0.4.0" {
		t.Errorf("unexpected version: %s", s)
	}
}

func TestPrintLicenses(t *testing.T) {
	var buffer strings.Builder
	PrintLicenses(&buffer)
	for _, license := range Licenses {
		if !strings.Contains(buffer.String(), license.ModuleName+":\n  "+license.LicenseName) {
			t.Errorf("license of %s is missing", license.ModuleName)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buffer strings.Builder
	PrintVersion(&buffer)
	if buffer.String() != "httpui 0.4.0\n" {
		t.Errorf("unexpected output: %q", buffer.String())
	}
}
