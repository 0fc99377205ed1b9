package routes

import (
	"errors"

	"user-feedback-server/storage"
	"user-feedback-server/utils"

	"github.com/kataras/iris/v12"
)

// Home sends visitors straight to registration.
func Home(ctx iris.Context) {
	ctx.Redirect("/register", iris.StatusFound)
}

func RegisterForm(ctx iris.Context) {
	if current, ok := utils.CurrentUsername(ctx); ok {
		ctx.Redirect("/users/"+current, iris.StatusFound)
		return
	}
	render(ctx, "register.html", iris.Map{"Input": RegisterInput{}})
}

// Register creates the account and binds the session to it, so a fresh
// registration lands on the new profile already logged in.
func Register(ctx iris.Context) {
	if current, ok := utils.CurrentUsername(ctx); ok {
		ctx.Redirect("/users/"+current, iris.StatusFound)
		return
	}

	var input RegisterInput
	if err := ctx.ReadForm(&input); err != nil {
		render(ctx, "register.html", iris.Map{"Errors": fieldErrors(err), "Input": input})
		return
	}

	user, err := storage.NewUserStore(storage.DB).Register(
		input.FirstName, input.LastName, input.Email, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			render(ctx, "register.html", iris.Map{
				"Errors": map[string]string{"Username": "Username or email already taken. Please pick another."},
				"Input":  input,
			})
			return
		}
		ctx.StopWithStatus(iris.StatusInternalServerError)
		return
	}

	utils.BindUser(ctx, user.Username)
	setFlash(ctx, "success", "Welcome! Successfully created your account!")
	ctx.Redirect("/users/"+user.Username, iris.StatusFound)
}

func LoginForm(ctx iris.Context) {
	if current, ok := utils.CurrentUsername(ctx); ok {
		ctx.Redirect("/users/"+current, iris.StatusFound)
		return
	}
	render(ctx, "login.html", iris.Map{"Input": LoginInput{}})
}

func Login(ctx iris.Context) {
	if current, ok := utils.CurrentUsername(ctx); ok {
		ctx.Redirect("/users/"+current, iris.StatusFound)
		return
	}

	var input LoginInput
	if err := ctx.ReadForm(&input); err != nil {
		render(ctx, "login.html", iris.Map{"Errors": fieldErrors(err), "Input": input})
		return
	}

	user, err := storage.NewUserStore(storage.DB).Authenticate(input.Username, input.Password)
	if err != nil {
		ctx.StopWithStatus(iris.StatusInternalServerError)
		return
	}
	if user == nil {
		// Same message whether the username exists or not.
		render(ctx, "login.html", iris.Map{
			"Errors": map[string]string{"Username": "Invalid username/password."},
			"Input":  input,
		})
		return
	}

	utils.BindUser(ctx, user.Username)
	setFlash(ctx, "primary", "Welcome Back, "+user.Username+"!")
	ctx.Redirect("/users/"+user.Username, iris.StatusFound)
}

func Logout(ctx iris.Context) {
	utils.ClearUser(ctx)
	ctx.Redirect("/login", iris.StatusFound)
}

// Profile renders the user's page with their feedback list. RequireOwner
// has already matched the session identity to the path.
func Profile(ctx iris.Context) {
	username := ctx.Params().Get("username")

	user, err := storage.NewUserStore(storage.DB).GetByUsername(username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.StopWithStatus(iris.StatusNotFound)
			return
		}
		ctx.StopWithStatus(iris.StatusInternalServerError)
		return
	}

	render(ctx, "user.html", iris.Map{"User": user})
}

// DeleteUser removes the account together with all its feedback and
// drops the session.
func DeleteUser(ctx iris.Context) {
	username := ctx.Params().Get("username")

	if err := storage.NewUserStore(storage.DB).Delete(username); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.StopWithStatus(iris.StatusNotFound)
			return
		}
		ctx.StopWithStatus(iris.StatusInternalServerError)
		return
	}

	utils.UnbindUser(ctx)
	setFlash(ctx, "danger", username+" deleted.")
	ctx.Redirect("/", iris.StatusFound)
}

type RegisterInput struct {
	FirstName string `form:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name" validate:"required,max=30"`
	Email     string `form:"email" validate:"required,email,max=50"`
	Username  string `form:"username" validate:"required,max=20"`
	Password  string `form:"password" validate:"required"`
}

type LoginInput struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}
