package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
)

// EmployeeHandler serves /api/zamestnanci.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler builds the handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Seznam zaměstnanců
// @Tags         zamestnanci
// @Security     Bearer
// @Produce      json
// @Param        id             query  int     false  "ID zaměstnance"
// @Param        jmeno          query  string  false  "Jméno"
// @Param        prijmeni       query  string  false  "Příjmení"
// @Param        supermarketId  query  int     false  "Supermarket"
// @Param        skladId        query  int     false  "Sklad"
// @Param        poziceId       query  int     false  "Pozice"
// @Param        limit          query  int     false  "Limit"
// @Success      200  {array}   dto.EmployeeResponse
// @Router       /api/zamestnanci [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var q dto.EmployeeFilterQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, fiber.StatusBadRequest, CodeValidation, "neplatné parametry dotazu")
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Zaměstnanec podle ID
// @Tags         zamestnanci
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID zaměstnance"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/zamestnanci/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Hierarchy GET /api/zamestnanci/hierarchy/:id
func (h *EmployeeHandler) Hierarchy(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Hierarchy(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Vytvořit zaměstnance
// @Tags         zamestnanci
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Zaměstnanec"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/zamestnanci [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Create(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Zaměstnanec byl vytvořen."})
}

// Update PUT /api/zamestnanci/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Zaměstnanec byl upraven."})
}

// Delete DELETE /api/zamestnanci/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Zaměstnanec byl smazán."})
}

// LinkUser POST /api/zamestnanci/link
func (h *EmployeeHandler) LinkUser(c *fiber.Ctx) error {
	var in dto.LinkUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.LinkUser(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Uživatel byl propojen se zaměstnancem."})
}

// Register godoc
// @Summary      Registrace zaměstnance (uživatel + zaměstnanec)
// @Tags         zamestnanci
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEmployeeRequest  true  "Registrace"
// @Success      201   {object}  dto.RegisterEmployeeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/zamestnanci/register [post]
func (h *EmployeeHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AverageSalary GET /api/zamestnanci/:id/average-salary
func (h *EmployeeHandler) AverageSalary(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AverageSubordinateSalary(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AverageSalaryProcedure GET /api/zamestnanci/:id/average-salary-procedure
func (h *EmployeeHandler) AverageSalaryProcedure(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AverageSubordinateSalaryProcedure(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ApplySalaryIndexation godoc
// @Summary      Hromadná valorizace mezd
// @Tags         zamestnanci
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalaryIndexationRequest  true  "Rozsah v procentech"
// @Success      200   {object}  dto.SalaryIndexationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/zamestnanci/apply-salary-indexation [post]
func (h *EmployeeHandler) ApplySalaryIndexation(c *fiber.Ctx) error {
	var in dto.SalaryIndexationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ApplySalaryIndexation(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AllSalaries GET /api/zamestnanci/all-salaries
func (h *EmployeeHandler) AllSalaries(c *fiber.Ctx) error {
	out, err := h.uc.SalaryOverview(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AllSalariesPDF GET /api/zamestnanci/all-salaries/pdf
func (h *EmployeeHandler) AllSalariesPDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.SalaryReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
