package di

import (
	classService "fitstudio/internal/domains/class/service"
	"fitstudio/transport/http"
)

// Application is everything cmd/app needs after wiring.
type Application struct {
	Server  *http.HTTP
	Classes classService.Class
}
