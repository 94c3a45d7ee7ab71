package main

import (
	"flag"
	"log"

	"github.com/noah-isme/logistikpro/internal/config"
	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/ratecard"
)

func main() {
	out := flag.String("out", "ratecard.xlsx", "output workbook path")
	weights := flag.String("weights", "10,100,500,1000", "comma-separated reference weights in kg")
	lang := flag.String("lang", "", "sheet locale: ru or en")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	catalog, err := i18n.NewCatalog(cfg.DefaultLocale)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	loc := catalog.Default()
	if *lang != "" {
		parsed, ok := i18n.ParseLocale(*lang)
		if !ok {
			log.Fatalf("unsupported locale %q", *lang)
		}
		loc = parsed
	}

	ws, err := ratecard.ParseWeights(*weights)
	if err != nil {
		log.Fatalf("weights: %v", err)
	}
	xl, err := ratecard.Build(cfg.Calculator(), catalog, loc, ws)
	if err != nil {
		log.Fatalf("build ratecard: %v", err)
	}
	defer func() { _ = xl.Close() }()
	if err := xl.SaveAs(*out); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
	log.Printf("ratecard written to %s", *out)
}
