package dto

// UserRequest body of user create/update. Password is plain text and hashed
// in the use case; on update an empty password keeps the current one.
type UserRequest struct {
	Jmeno                      string `json:"jmeno" validate:"required,max=100"`
	Prijmeni                   string `json:"prijmeni" validate:"required,max=100"`
	Email                      string `json:"email" validate:"required,email"`
	TelNumber                  *int64 `json:"telNumber"`
	Password                   string `json:"password"`
	RoleIdRole                 int64  `json:"roleIdRole"`
	ZakaznikIdZakazniku        *int64 `json:"zakaznikIdZakazniku"`
	ZamnestnanecIdZamnestnance *int64 `json:"zamnestnanecIdZamnestnance"`
}

// UserResponse user without the password hash.
type UserResponse struct {
	IdUser                     int64  `json:"idUser"`
	Jmeno                      string `json:"jmeno"`
	Prijmeni                   string `json:"prijmeni"`
	Email                      string `json:"email"`
	TelNumber                  *int64 `json:"telNumber"`
	RoleIdRole                 int64  `json:"roleIdRole"`
	RoleName                   string `json:"roleName,omitempty"`
	ZakaznikIdZakazniku        *int64 `json:"zakaznikIdZakazniku"`
	ZamnestnanecIdZamnestnance *int64 `json:"zamnestnanecIdZamnestnance"`
}

// UserSearchQuery query string of GET /api/users/search.
type UserSearchQuery struct {
	ID     *int64  `query:"id"`
	Email  *string `query:"email"`
	RoleID *int64  `query:"roleId"`
	Limit  *int32  `query:"limit"`
}

// LoginRequest credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token and the logged-in user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest customer self-registration.
type RegisterRequest struct {
	Jmeno          string `json:"jmeno" validate:"required,max=100"`
	Prijmeni       string `json:"prijmeni" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Telefon        int64  `json:"telefon" validate:"gt=0"`
	AdresaIdAdresy *int64 `json:"adresaIdAdresy"`
}

// RegisterResponse ids created by the self-registration.
type RegisterResponse struct {
	IdUser      int64 `json:"idUser"`
	IdZakazniku int64 `json:"idZakazniku"`
}

// MeResponse claims of the current token.
type MeResponse struct {
	IdUser int64  `json:"idUser"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
