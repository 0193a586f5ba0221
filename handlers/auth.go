package handlers

import (
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renocalc/services"
)

// currentUser resolves the requesting user from HTTP Basic Auth credentials
// and returns the user record id. Every user-scoped handler goes through it.
func currentUser(app *pocketbase.PocketBase, e *core.RequestEvent) (string, error) {
	username, password, ok := e.Request.BasicAuth()
	if !ok {
		return "", fmt.Errorf("missing credentials")
	}
	return services.AuthenticateUser(app, username, password)
}

// unauthorized writes a 401 with a WWW-Authenticate challenge.
func unauthorized(e *core.RequestEvent) error {
	e.Response.Header().Set("WWW-Authenticate", `Basic realm="renocalc"`)
	return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
}
