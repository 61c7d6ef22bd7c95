package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"

	"github.com/MKhiriev/go-tab-keeper/internal/cli"
	"github.com/MKhiriev/go-tab-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.Execute(context.Background(), info); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
