package dto

// CustomerRequest body of customer create/update.
type CustomerRequest struct {
	Telefon        int64  `json:"telefon"`
	AdresaIdAdresy *int64 `json:"adresaIdAdresy"`
}

// CustomerResponse one customer.
type CustomerResponse struct {
	IdZakazniku    int64  `json:"idZakazniku"`
	Telefon        int64  `json:"telefon"`
	AdresaIdAdresy *int64 `json:"adresaIdAdresy"`
}

// AddressIDResponse result of the address lookup.
type AddressIDResponse struct {
	IdZakazniku    int64  `json:"idZakazniku"`
	AdresaIdAdresy *int64 `json:"adresaIdAdresy"`
}
