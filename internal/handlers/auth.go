package handlers

import (
	"net/http"

	"storefront/internal/middlewares"
	"storefront/internal/models"
	"storefront/internal/web"
)

func LoginPage(ctx *middlewares.AppContext) {
	if ctx.Session.User() != nil {
		ctx.Redirect("/", http.StatusFound)
		return
	}

	ctx.RenderPage(http.StatusOK, "login", &web.PageData{Title: "Login"})
}

// Login submits the credentials and, on success, resumes whatever page
// sent the visitor here. Failure re-renders the form with the backend's
// message; the session is left exactly as it was.
func Login(ctx *middlewares.AppContext) {
	usernameOrEmail := ctx.Request.FormValue("usernameOrEmail")
	password := ctx.Request.FormValue("password")

	result := ctx.Session.Login(ctx, usernameOrEmail, password)
	if !result.Success {
		ctx.RenderPage(http.StatusUnauthorized, "login", &web.PageData{
			Title: "Login",
			Error: result.Error,
		})
		return
	}

	target := "/"
	if ctx.UISession != nil {
		if returnTo := ctx.UISession.PopReturnTo(ctx); returnTo != "" {
			target = returnTo
		}
	}
	ctx.Redirect(target, http.StatusSeeOther)
}

func RegisterPage(ctx *middlewares.AppContext) {
	if ctx.Session.User() != nil {
		ctx.Redirect("/", http.StatusFound)
		return
	}

	ctx.RenderPage(http.StatusOK, "register", &web.PageData{Title: "Register"})
}

func Register(ctx *middlewares.AppContext) {
	req := models.RegisterRequest{
		Username:  ctx.Request.FormValue("username"),
		Email:     ctx.Request.FormValue("email"),
		Password:  ctx.Request.FormValue("password"),
		FirstName: ctx.Request.FormValue("firstName"),
		LastName:  ctx.Request.FormValue("lastName"),
		Phone:     ctx.Request.FormValue("phone"),
	}

	result := ctx.Session.Register(ctx, req)
	if !result.Success {
		ctx.RenderPage(http.StatusBadRequest, "register", &web.PageData{
			Title: "Register",
			Error: result.Error,
		})
		return
	}

	ctx.Redirect("/", http.StatusSeeOther)
}

func Logout(ctx *middlewares.AppContext) {
	ctx.Session.Logout(ctx)

	if ctx.UISession != nil {
		ctx.UISession.PutFlash(ctx, "You have been logged out")
	}
	ctx.Redirect("/", http.StatusSeeOther)
}
