package utils

import (
	"github.com/kataras/iris/v12"
)

// RequireOwner guards user-scoped routes. The session must be
// authenticated and its username must equal the {username} path
// parameter, otherwise the request stops with 401 before any handler or
// store call runs.
func RequireOwner(ctx iris.Context) {
	username := ctx.Params().Get("username")

	current, ok := CurrentUsername(ctx)
	if !ok || current != username {
		ctx.StopWithStatus(iris.StatusUnauthorized)
		return
	}
	ctx.Next()
}
