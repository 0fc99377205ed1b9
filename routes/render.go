package routes

import (
	"errors"

	"user-feedback-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/context"
	"github.com/kataras/iris/v12/sessions"
)

// setFlash stores a one-shot status message shown on the next rendered
// page, matching the redirect-then-notify flow of the HTML forms.
func setFlash(ctx iris.Context, category, message string) {
	sess := sessions.Get(ctx)
	sess.SetFlash("flash_category", category)
	sess.SetFlash("flash_message", message)
}

// render draws a view with the shared bindings every template expects:
// the flash message, the current session identity and a non-nil Errors
// map.
func render(ctx iris.Context, view string, data iris.Map) {
	if data == nil {
		data = iris.Map{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}

	sess := sessions.Get(ctx)
	if message := sess.GetFlashString("flash_message"); message != "" {
		data["FlashMessage"] = message
		data["FlashCategory"] = sess.GetFlashString("flash_category")
	}
	if current, ok := utils.CurrentUsername(ctx); ok {
		data["CurrentUser"] = current
	}

	if err := ctx.View(view, data); err != nil {
		ctx.StopWithStatus(iris.StatusInternalServerError)
	}
}

// fieldErrors flattens validator errors into per-field messages for the
// form templates.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	if errors.Is(err, context.ErrEmptyForm) {
		out["Form"] = "All fields are required."
		return out
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["Form"] = "Invalid input."
		return out
	}

	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "required":
			out[fieldErr.Field()] = "This field is required."
		case "email":
			out[fieldErr.Field()] = "Must be a valid email address."
		case "max":
			out[fieldErr.Field()] = "Must be at most " + fieldErr.Param() + " characters."
		default:
			out[fieldErr.Field()] = "Invalid value."
		}
	}
	return out
}
