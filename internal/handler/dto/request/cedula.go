package request

type ValidateCedulaRequest struct {
	Cedula *string `json:"cedula" binding:"required"`
}
