// Command server runs the dictionary lookup HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; run with -help to list every variable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/heartmarshall/dictlookup/internal/app"
	"github.com/heartmarshall/dictlookup/internal/config"
)

func main() {
	help := flag.Bool("help", false, "print configuration variables and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	switch {
	case *help:
		text, err := config.Usage()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	case *version:
		fmt.Println(app.BuildVersion())
		return
	}

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
