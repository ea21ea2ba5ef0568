package dto

import "github.com/shopspring/decimal"

// EmployeeRequest body of create/update. Ids <= 0 and a non-positive mzda mean "not set".
type EmployeeRequest struct {
	DatumZamestnani           *Date            `json:"datumZamestnani"`
	Pracovnidoba              *int32           `json:"pracovnidoba"`
	SupermarketIdSupermarketu *int64           `json:"supermarketIdSupermarketu"`
	SkladIdSkladu             *int64           `json:"skladIdSkladu"`
	ZamestnanecIdZamestnance  *int64           `json:"zamestnanecIdZamestnance"`
	AdresaIdAdresy            *int64           `json:"adresaIdAdresy"`
	Jmeno                     string           `json:"jmeno" validate:"required,max=100"`
	Prijmeni                  string           `json:"prijmeni" validate:"required,max=100"`
	Mzda                      *decimal.Decimal `json:"mzda"`
	PoziceIdPozice            *int64           `json:"poziceIdPozice"`
}

// EmployeeFilterQuery query string of GET /api/zamestnanci.
type EmployeeFilterQuery struct {
	ID            *int64  `query:"id"`
	Jmeno         *string `query:"jmeno"`
	Prijmeni      *string `query:"prijmeni"`
	SupermarketID *int64  `query:"supermarketId"`
	SkladID       *int64  `query:"skladId"`
	PoziceID      *int64  `query:"poziceId"`
	Limit         *int32  `query:"limit"`
}

// EmployeeResponse one employee; absent references are null.
type EmployeeResponse struct {
	IdZamestnance             int64            `json:"idZamestnance"`
	DatumZamestnani           *Date            `json:"datumZamestnani"`
	Pracovnidoba              *int32           `json:"pracovnidoba"`
	SupermarketIdSupermarketu *int64           `json:"supermarketIdSupermarketu"`
	SkladIdSkladu             *int64           `json:"skladIdSkladu"`
	ZamestnanecIdZamestnance  *int64           `json:"zamestnanecIdZamestnance"`
	AdresaIdAdresy            *int64           `json:"adresaIdAdresy"`
	Jmeno                     string           `json:"jmeno"`
	Prijmeni                  string           `json:"prijmeni"`
	Mzda                      *decimal.Decimal `json:"mzda"`
	PoziceIdPozice            *int64           `json:"poziceIdPozice"`
}

// EmployeeNodeResponse employee inside a hierarchy; level 1 is the requested employee.
type EmployeeNodeResponse struct {
	EmployeeResponse
	Level int `json:"level"`
}

// LinkUserRequest body of POST /api/zamestnanci/link.
type LinkUserRequest struct {
	IdZamestnance int64 `json:"idZamestnance" validate:"gt=0"`
	IdUser        int64 `json:"idUser" validate:"gt=0"`
}

// RegisterEmployeeRequest creates user account, employee and link at once.
type RegisterEmployeeRequest struct {
	Jmeno                     string           `json:"jmeno" validate:"required,max=100"`
	Prijmeni                  string           `json:"prijmeni" validate:"required,max=100"`
	Email                     string           `json:"email" validate:"required,email"`
	Password                  string           `json:"password" validate:"required,min=6"`
	RoleID                    int64            `json:"roleId"`
	DatumZamestnani           *Date            `json:"datumZamestnani"`
	Pracovnidoba              *int32           `json:"pracovnidoba"`
	SupermarketIdSupermarketu *int64           `json:"supermarketIdSupermarketu"`
	SkladIdSkladu             *int64           `json:"skladIdSkladu"`
	AdresaIdAdresy            *int64           `json:"adresaIdAdresy"`
	Mzda                      *decimal.Decimal `json:"mzda"`
	PoziceIdPozice            *int64           `json:"poziceIdPozice"`
}

// RegisterEmployeeResponse ids produced by the registration.
type RegisterEmployeeResponse struct {
	IdUser        int64 `json:"idUser"`
	IdZamestnance int64 `json:"idZamestnance"`
}

// SalaryIndexationRequest percentage band of the bulk raise.
type SalaryIndexationRequest struct {
	MinPercentage *decimal.Decimal `json:"minPercentage"`
	MaxPercentage *decimal.Decimal `json:"maxPercentage"`
}

// SalaryIndexationResponse summary returned by the procedure.
type SalaryIndexationResponse struct {
	Result string `json:"result"`
}

// AverageSalaryResponse average salary of an employee's subordinates.
type AverageSalaryResponse struct {
	IdZamestnance int64           `json:"idZamestnance"`
	AverageSalary decimal.Decimal `json:"averageSalary"`
}

// EmployeeSalaryResponse row of the salary overview.
type EmployeeSalaryResponse struct {
	IdZamestnance int64            `json:"idZamestnance"`
	Jmeno         string           `json:"jmeno"`
	Prijmeni      string           `json:"prijmeni"`
	Mzda          *decimal.Decimal `json:"mzda"`
	NazevPozice   string           `json:"nazevPozice"`
}

// PositionRequest body of position create/update.
type PositionRequest struct {
	Nazev string `json:"nazev"`
}

// PositionResponse one position.
type PositionResponse struct {
	IdPozice int64  `json:"idPozice"`
	Nazev    string `json:"nazev"`
}
