package controllers

import (
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/utils"
	"net/http"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.BuildTextResponse(w, constvars.StatusOK, constvars.ResponseServerIsUp)
}
