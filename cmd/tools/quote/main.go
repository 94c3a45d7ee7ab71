package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/noah-isme/logistikpro/internal/common"
	"github.com/noah-isme/logistikpro/internal/config"
	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/quote"
)

func main() {
	var (
		from       = flag.String("from", "", "origin city code, e.g. moscow")
		to         = flag.String("to", "", "destination city code, e.g. spb")
		weight     = flag.String("weight", "0", "declared weight in kg")
		volume     = flag.String("volume", "", "volume in m3; derived from -length/-width/-height when empty")
		length     = flag.String("length", "", "parcel length in cm")
		width      = flag.String("width", "", "parcel width in cm")
		height     = flag.String("height", "", "parcel height in cm")
		tier       = flag.String("tier", "standard", "service tier: standard, express or economy")
		insurance  = flag.Bool("insurance", false, "add cargo insurance")
		packaging  = flag.Bool("packaging", false, "add packaging")
		loading    = flag.Bool("loading", false, "add loading and unloading")
		doorToDoor = flag.Bool("door-to-door", false, "add door to door delivery")
		lang       = flag.String("lang", "", "output locale: ru or en")
	)
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

	req := quote.Request{
		CityFrom:    *from,
		CityTo:      *to,
		Weight:      measure(*weight),
		Volume:      measure(*volume),
		Length:      measure(*length),
		Width:       measure(*width),
		Height:      measure(*height),
		ServiceType: *tier,
		Insurance:   *insurance,
		Packaging:   *packaging,
		Loading:     *loading,
		DoorToDoor:  *doorToDoor,
	}

	svc := quote.NewService(cfg.Calculator(), catalog)
	view, err := svc.Calculate(context.Background(), loc, req)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", appErr.Code, appErr.Message)
			os.Exit(2)
		}
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		log.Fatal(err)
	}
}

func measure(raw string) quote.Measure {
	if raw == "" {
		return quote.Measure{}
	}
	v, err := common.DecimalOrZero(raw)
	if err != nil {
		log.Fatalf("%s: %v", raw, err)
	}
	return quote.Measure{Value: v, Set: true}
}
