package controllers

import (
	"net/http"

	"github.com/autonexhq/autonex-backend/api/responses"
)

func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"name": "AutoNex API", "status": "ok"})
	}
}
