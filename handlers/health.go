package handlers

import (
	"net/http"

	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/pkg"
)

// msgNotFound, hiçbir route'a uymayan request'lere dönen mesaj.
const msgNotFound = "Invalid request path, please check the interface address"

// Health godoc
// GET /health
// Store'a dokunmaz; process ayakta olduğu sürece 200 döner.
func Health(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, models.HealthResponse{Status: models.HealthStatusOK})
}

// NotFound, mux'un catch-all ("/") handler'ı. Yanlış method ile gelen
// bilinen path'ler de buraya düşer.
func NotFound(w http.ResponseWriter, r *http.Request) {
	pkg.ErrorWithMessage(w, http.StatusNotFound, msgNotFound)
}
