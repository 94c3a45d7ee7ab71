package lead

import "strings"

// Source identifies which form produced a lead.
type Source string

const (
	SourceDetailed Source = "detailed"
	SourceQuick    Source = "quick"
)

// Request is a lead form submission. Only name, phone and agree are
// mandatory; everything else is free-form and echoed to the manager.
type Request struct {
	Source        Source   `json:"source" validate:"omitempty,oneof=detailed quick"`
	Name          string   `json:"name" validate:"max=120"`
	Phone         string   `json:"phone" validate:"max=40"`
	Company       string   `json:"company" validate:"max=200"`
	Email         string   `json:"email" validate:"omitempty,email,max=254"`
	ContactMethod string   `json:"contactMethod" validate:"omitempty,oneof=phone whatsapp telegram email"`
	CityFrom      string   `json:"cityFrom" validate:"max=120"`
	AddressFrom   string   `json:"addressFrom" validate:"max=300"`
	CityTo        string   `json:"cityTo" validate:"max=120"`
	AddressTo     string   `json:"addressTo" validate:"max=300"`
	CargoType     string   `json:"cargoType" validate:"max=40"`
	Weight        string   `json:"weight" validate:"max=20"`
	Volume        string   `json:"volume" validate:"max=20"`
	Places        string   `json:"places" validate:"max=20"`
	CargoValue    string   `json:"cargoValue" validate:"max=20"`
	Services      []string `json:"services" validate:"max=10,dive,max=40"`
	Comment       string   `json:"comment" validate:"max=2000"`
	Agree         bool     `json:"agree"`
}

// Normalize trims every text field, defaults the source and contact method,
// and formats the phone number.
func (r Request) Normalize() Request {
	for _, f := range []*string{
		&r.Name, &r.Phone, &r.Company, &r.Email, &r.ContactMethod,
		&r.CityFrom, &r.AddressFrom, &r.CityTo, &r.AddressTo,
		&r.CargoType, &r.Weight, &r.Volume, &r.Places, &r.CargoValue, &r.Comment,
	} {
		*f = strings.TrimSpace(*f)
	}
	r.Source = Source(strings.ToLower(strings.TrimSpace(string(r.Source))))
	if r.Source == "" {
		r.Source = SourceDetailed
	}
	r.ContactMethod = strings.ToLower(r.ContactMethod)
	if r.ContactMethod == "" {
		r.ContactMethod = "phone"
	}
	r.Phone = NormalizePhone(r.Phone)
	services := r.Services[:0:0]
	for _, s := range r.Services {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	r.Services = services
	return r
}
