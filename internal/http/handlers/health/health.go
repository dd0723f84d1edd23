// Package health реализует HTTP-обработчик проверки живости сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
)

// New возвращает обработчик, отвечающий 200 OK, пока процесс жив.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	}
}
