package models

const DefaultCompanyName = "TRANSPORTE SURUBÍ"

// CompanyProfile holds the clave/valor pairs of the Config sheet.
type CompanyProfile map[string]string

func (p CompanyProfile) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// Name is the invoice header name, falling back to the operator default.
func (p CompanyProfile) Name() string {
	if name := p.Get("empresa"); name != "" {
		return name
	}
	return DefaultCompanyName
}

func (p CompanyProfile) Address() string { return p.Get("direccion") }
func (p CompanyProfile) TaxID() string   { return p.Get("nit") }
func (p CompanyProfile) Phone() string   { return p.Get("telefono") }
