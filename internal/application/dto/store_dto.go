package dto

// SupermarketResponse one supermarket.
type SupermarketResponse struct {
	IdSupermarketu int64  `json:"idSupermarketu"`
	Nazev          string `json:"nazev"`
	Telefon        *int64 `json:"telefon"`
	AdresaIdAdresy *int64 `json:"adresaIdAdresy"`
}

// WarehouseResponse one warehouse (sklad).
type WarehouseResponse struct {
	IdSkladu       int64  `json:"idSkladu"`
	Nazev          string `json:"nazev"`
	Kapacita       *int64 `json:"kapacita"`
	Telefon        *int64 `json:"telefon"`
	AdresaIdAdresy *int64 `json:"adresaIdAdresy"`
}
