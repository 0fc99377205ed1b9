package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"
)

// The session carries exactly one field: the bound username. An empty or
// missing value means the session is anonymous.
const sessionUserKey = "username"

// BindUser marks the session as authenticated for the given username.
func BindUser(ctx iris.Context, username string) {
	sessions.Get(ctx).Set(sessionUserKey, username)
}

// CurrentUsername returns the username bound to the session, if any.
func CurrentUsername(ctx iris.Context) (string, bool) {
	username := sessions.Get(ctx).GetString(sessionUserKey)
	return username, username != ""
}

// UnbindUser removes the identity but keeps the session alive, so a
// flash message set afterwards still reaches the next page.
func UnbindUser(ctx iris.Context) {
	sessions.Get(ctx).Delete(sessionUserKey)
}

// ClearUser drops the whole session, returning the client to anonymous.
func ClearUser(ctx iris.Context) {
	sessions.Get(ctx).Destroy()
}
