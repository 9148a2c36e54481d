// Command lookup translates a single word or phrase and prints the
// normalized result as JSON.
//
// Usage:
//
//	lookup -q=hello [-lang=en-zh|zh-en]
//
// Requires YOUDAO_APP_KEY and YOUDAO_APP_SECRET; run with -help for the
// full list of variables. Exit codes: 0 = success, 1 = lookup failed,
// 2 = invalid input.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/dictlookup/internal/adapter/provider/youdao"
	"github.com/heartmarshall/dictlookup/internal/app"
	"github.com/heartmarshall/dictlookup/internal/config"
	"github.com/heartmarshall/dictlookup/internal/domain"
	"github.com/heartmarshall/dictlookup/internal/service/dictionary"
)

func main() {
	query := flag.String("q", "", "word or phrase to look up")
	lang := flag.String("lang", string(domain.DirectionEnZh), "lookup direction: en-zh or zh-en")
	help := flag.Bool("help", false, "print configuration variables and exit")
	flag.Parse()

	if *help {
		text, err := config.Usage()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	}

	if *query == "" && flag.NArg() > 0 {
		*query = flag.Arg(0)
	}

	os.Exit(run(*query, *lang))
}

func run(query, lang string) int {
	cfg, err := config.LoadLookup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := dictionary.NewService(logger, youdao.NewClient(cfg.Youdao, logger), nil)

	def, err := svc.Search(ctx, dictionary.SearchInput{Query: query, Lang: lang})
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		if errors.Is(err, domain.ErrValidation) {
			return 2
		}
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(def); err != nil {
		fmt.Fprintf(os.Stderr, "lookup: encode: %v\n", err)
		return 1
	}
	return 0
}
