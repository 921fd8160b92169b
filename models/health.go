package models

// HealthStatusOK, sağlıklı servisin /health yanıtındaki status değeri.
const HealthStatusOK = "ok"

// HealthResponse, GET /health yanıtı.
type HealthResponse struct {
	Status string `json:"status"`
}
