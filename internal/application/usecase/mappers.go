package usecase

import (
	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		IdZamestnance:             e.ID,
		DatumZamestnani:           dto.DateFrom(e.HireDate),
		Pracovnidoba:              e.WorkHours,
		SupermarketIdSupermarketu: e.SupermarketID,
		SkladIdSkladu:             e.WarehouseID,
		ZamestnanecIdZamestnance:  e.ManagerID,
		AdresaIdAdresy:            e.AddressID,
		Jmeno:                     e.FirstName,
		Prijmeni:                  e.LastName,
		Mzda:                      e.Salary,
		PoziceIdPozice:            e.PositionID,
	}
}

func employeeFromRequest(id int64, in dto.EmployeeRequest) *entity.Employee {
	e := &entity.Employee{
		ID:            id,
		HireDate:      in.DatumZamestnani.TimePtr(),
		WorkHours:     in.Pracovnidoba,
		SupermarketID: in.SupermarketIdSupermarketu,
		WarehouseID:   in.SkladIdSkladu,
		ManagerID:     in.ZamestnanecIdZamestnance,
		AddressID:     in.AdresaIdAdresy,
		FirstName:     in.Jmeno,
		LastName:      in.Prijmeni,
		Salary:        in.Mzda,
		PositionID:    in.PoziceIdPozice,
	}
	e.Normalize()
	return e
}

func toPositionResponse(p *entity.Position) dto.PositionResponse {
	return dto.PositionResponse{IdPozice: p.ID, Nazev: p.Name}
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{IdZakazniku: c.ID, Telefon: c.Phone, AdresaIdAdresy: c.AddressID}
}

// ToUserResponse drops the password hash.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		IdUser:                     u.ID,
		Jmeno:                      u.FirstName,
		Prijmeni:                   u.LastName,
		Email:                      u.Email,
		TelNumber:                  u.PhoneNumber,
		RoleIdRole:                 u.RoleID,
		RoleName:                   u.RoleName,
		ZakaznikIdZakazniku:        u.CustomerID,
		ZamnestnanecIdZamnestnance: u.EmployeeID,
	}
}

func mapSlice[E any, R any](items []*E, conv func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	return out
}
