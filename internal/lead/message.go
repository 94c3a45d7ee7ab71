package lead

import (
	"strings"

	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/pricing"
)

// FormatMessage builds the messenger-ready summary of req. Sections with no
// data are omitted.
func FormatMessage(cat *i18n.Catalog, loc i18n.Locale, req Request) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(cat.Label(loc, "lead.title"))
	line("")
	line(cat.Labelf(loc, "lead.contact", req.Name))
	if req.Company != "" {
		line(cat.Labelf(loc, "lead.company", req.Company))
	}
	line(cat.Labelf(loc, "lead.phone", req.Phone))
	if req.Email != "" {
		line(cat.Labelf(loc, "lead.email", req.Email))
	}
	line(cat.Labelf(loc, "lead.channel", lookup(cat, loc, "contact.", req.ContactMethod)))

	if req.CityFrom != "" || req.AddressFrom != "" || req.CityTo != "" || req.AddressTo != "" {
		line("")
		line(cat.Label(loc, "lead.route"))
		if s := place(cat, loc, req.CityFrom, req.AddressFrom); s != "" {
			line(cat.Labelf(loc, "lead.from", s))
		}
		if s := place(cat, loc, req.CityTo, req.AddressTo); s != "" {
			line(cat.Labelf(loc, "lead.to", s))
		}
	}

	if req.CargoType != "" || req.Weight != "" || req.Volume != "" || req.Places != "" || req.CargoValue != "" {
		line("")
		line(cat.Label(loc, "lead.cargo"))
		if req.CargoType != "" {
			line(cat.Labelf(loc, "lead.cargo_type", lookup(cat, loc, "cargo.", req.CargoType)))
		}
		if req.Weight != "" {
			line(cat.Labelf(loc, "lead.weight", req.Weight))
		}
		if req.Volume != "" {
			line(cat.Labelf(loc, "lead.volume", req.Volume))
		}
		if req.Places != "" {
			line(cat.Labelf(loc, "lead.places", req.Places))
		}
		if req.CargoValue != "" {
			line(cat.Labelf(loc, "lead.value", req.CargoValue))
		}
	}

	if len(req.Services) > 0 {
		line("")
		line(cat.Label(loc, "lead.services"))
		for _, s := range req.Services {
			line("  ✓ " + lookup(cat, loc, "service.", s))
		}
	}

	if req.Comment != "" {
		line("")
		line(cat.Label(loc, "lead.comment"))
		line(req.Comment)
	}
	return b.String()
}

// lookup resolves value through the catalog, echoing it when unknown.
func lookup(cat *i18n.Catalog, loc i18n.Locale, prefix, value string) string {
	key := prefix + strings.ToLower(value)
	if label := cat.Label(loc, key); label != key {
		return label
	}
	return value
}

func place(cat *i18n.Catalog, loc i18n.Locale, city, address string) string {
	if code, err := pricing.ParseCity(city); err == nil {
		city = cat.Label(loc, "city."+code.String())
	}
	switch {
	case city != "" && address != "":
		return city + " (" + address + ")"
	case city != "":
		return city
	default:
		return address
	}
}
