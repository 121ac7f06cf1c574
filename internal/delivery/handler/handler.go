package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/command"
	"github.com/NehaP156/linkedln-clone-gemini/internal/application/interfaces"
	"github.com/NehaP156/linkedln-clone-gemini/internal/delivery/render"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure"
)

const genericErrorMessage = "Something went wrong, please try again"

type Handler struct {
	userService   interfaces.UserService
	socialService interfaces.SocialService
	cookies       *infrastructure.CookieService
	renderer      render.Renderer
	gate          *AuthGate
}

func NewHandler(
	userService interfaces.UserService,
	socialService interfaces.SocialService,
	cookies *infrastructure.CookieService,
	renderer render.Renderer,
) *Handler {
	return &Handler{
		userService:   userService,
		socialService: socialService,
		cookies:       cookies,
		renderer:      renderer,
	}
}

// RegisterRoutes wires the HTTP surface. Everything under the gate requires
// an authenticated session.
func (h *Handler) RegisterRoutes(e *echo.Echo, gate *AuthGate) {
	h.gate = gate

	e.GET("/", h.HomePage)
	e.GET("/register", h.RegisterPage)
	e.POST("/register", h.Register)
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout)

	protected := e.Group("", gate.Middleware())
	protected.GET("/users", h.Users)
	protected.POST("/users/toggle-follow", h.ToggleFollow)
	protected.GET("/profile/edit", h.ProfileEditPage)
	protected.POST("/profile/edit", h.UpdateProfile)
}

func (h *Handler) HomePage(c echo.Context) error {
	data := map[string]interface{}{}
	// Home renders for guests too; the identity just personalizes it.
	if h.gate != nil {
		if identity, _, ok := h.gate.identify(c); ok {
			data["username"] = identity.Username
		}
	}
	return h.renderer.Render(c, http.StatusOK, "home", data)
}

func (h *Handler) RegisterPage(c echo.Context) error {
	return h.renderer.Render(c, http.StatusOK, "register", map[string]interface{}{})
}

func (h *Handler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return h.renderer.Render(c, http.StatusBadRequest, "register", map[string]interface{}{
			"errors": []string{"invalid input"},
		})
	}

	_, err := h.userService.RegisterUser(c.Request().Context(), &registerCommand)
	if err != nil {
		return h.renderRegisterError(c, &registerCommand, err)
	}

	return c.Redirect(http.StatusFound, "/login?registered=true")
}

func (h *Handler) renderRegisterError(c echo.Context, registerCommand *command.RegisterUserCommand, err error) error {
	// Entered values come back so the form can be re-filled; the password
	// never does.
	data := map[string]interface{}{
		"username": registerCommand.Username,
		"email":    registerCommand.Email,
	}

	if problems, ok := errs.AsValidation(err); ok {
		data["errors"] = []string(problems)
		return h.renderer.Render(c, http.StatusBadRequest, "register", data)
	}
	if errs.IsDuplicate(err) {
		data["errors"] = []string{err.Error()}
		return h.renderer.Render(c, http.StatusConflict, "register", data)
	}

	log.Printf("register failed: %v", err)
	data["errors"] = []string{genericErrorMessage}
	return h.renderer.Render(c, http.StatusInternalServerError, "register", data)
}

func (h *Handler) LoginPage(c echo.Context) error {
	return h.renderer.Render(c, http.StatusOK, "login", map[string]interface{}{
		"registered": c.QueryParam("registered"),
		"reason":     c.QueryParam("reason"),
	})
}

func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return h.renderer.Render(c, http.StatusBadRequest, "login", map[string]interface{}{
			"errors": []string{"invalid input"},
		})
	}

	result, err := h.userService.LoginUser(c.Request().Context(), &loginCommand)
	if err != nil {
		switch {
		case err == errs.ErrUnauthorized:
			return h.renderer.Render(c, http.StatusUnauthorized, "login", map[string]interface{}{
				"username": loginCommand.Identifier,
				"errors":   []string{"Invalid username or password"},
			})
		case err == errs.ErrTooManyAttempts:
			return h.renderer.Render(c, http.StatusTooManyRequests, "login", map[string]interface{}{
				"username": loginCommand.Identifier,
				"errors":   []string{err.Error()},
			})
		default:
			log.Printf("login failed: %v", err)
			return h.renderer.Render(c, http.StatusInternalServerError, "login", map[string]interface{}{
				"errors": []string{genericErrorMessage},
			})
		}
	}

	// The session row is already saved; only now may the client be told it
	// is logged in.
	if err := h.setSessionCookie(c, result.SessionToken, result.Expires); err != nil {
		log.Printf("issue session cookie: %v", err)
		return h.renderer.Render(c, http.StatusInternalServerError, "login", map[string]interface{}{
			"errors": []string{genericErrorMessage},
		})
	}

	return c.Redirect(http.StatusFound, "/users")
}

func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if sid, err := h.cookies.Parse(cookie.Value); err == nil {
			h.userService.LogoutUser(c.Request().Context(), sid)
		}
	}

	// The cookie is cleared even when the backing delete failed.
	h.clearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Users(c echo.Context) error {
	userID := c.Get(ctxUserIDKey).(uint)

	result, err := h.socialService.ListOthers(c.Request().Context(), userID)
	if err != nil {
		log.Printf("list users failed: %v", err)
		return h.renderer.Render(c, http.StatusInternalServerError, "users", map[string]interface{}{
			"errors": []string{genericErrorMessage},
		})
	}

	return h.renderer.Render(c, http.StatusOK, "users", map[string]interface{}{
		"username":     c.Get(ctxUsernameKey),
		"users":        result.Users,
		"followingIds": result.FollowingIDs,
		"followed":     c.QueryParam("followed"),
		"error":        c.QueryParam("error"),
	})
}

func (h *Handler) ToggleFollow(c echo.Context) error {
	followerID := c.Get(ctxUserIDKey).(uint)

	targetID, err := strconv.ParseUint(c.FormValue("targetUserId"), 10, 32)
	if err != nil {
		return c.Redirect(http.StatusFound, "/users?error=invalid_target")
	}

	result, err := h.socialService.ToggleFollow(c.Request().Context(), &command.ToggleFollowCommand{
		FollowerID: followerID,
		TargetID:   uint(targetID),
	})
	if err != nil {
		switch err {
		case errs.ErrSelfFollow:
			return c.Redirect(http.StatusFound, "/users?error=self_follow")
		case errs.ErrNotFound:
			return c.Redirect(http.StatusFound, "/users?error=not_found")
		default:
			log.Printf("toggle follow failed: %v", err)
			return c.Redirect(http.StatusFound, "/users?error=try_again")
		}
	}

	return c.Redirect(http.StatusFound, "/users?followed="+string(result.Outcome))
}

func (h *Handler) ProfileEditPage(c echo.Context) error {
	userID := c.Get(ctxUserIDKey).(uint)

	result, err := h.userService.FindUserByID(c.Request().Context(), userID)
	if err != nil {
		log.Printf("load profile failed: %v", err)
		return h.renderer.Render(c, http.StatusInternalServerError, "profile_edit", map[string]interface{}{
			"errors": []string{genericErrorMessage},
		})
	}

	return h.renderer.Render(c, http.StatusOK, "profile_edit", map[string]interface{}{
		"user":    result.Result,
		"updated": c.QueryParam("updated"),
	})
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var updateCommand command.UpdateProfileCommand
	if err := c.Bind(&updateCommand); err != nil {
		return h.renderer.Render(c, http.StatusBadRequest, "profile_edit", map[string]interface{}{
			"errors": []string{"invalid input"},
		})
	}
	updateCommand.UserID = c.Get(ctxUserIDKey).(uint)

	_, err := h.userService.UpdateProfile(c.Request().Context(), &updateCommand)
	if err != nil {
		data := map[string]interface{}{
			"username": updateCommand.Username,
			"email":    updateCommand.Email,
		}
		if problems, ok := errs.AsValidation(err); ok {
			data["errors"] = []string(problems)
			return h.renderer.Render(c, http.StatusBadRequest, "profile_edit", data)
		}
		// A concurrent edit can slip past the availability check and land on
		// the unique index; the outcome reads the same as the check failing.
		if errs.IsDuplicate(err) {
			data["errors"] = []string{err.Error()}
			return h.renderer.Render(c, http.StatusBadRequest, "profile_edit", data)
		}
		log.Printf("update profile failed: %v", err)
		data["errors"] = []string{genericErrorMessage}
		return h.renderer.Render(c, http.StatusInternalServerError, "profile_edit", data)
	}

	return c.Redirect(http.StatusFound, "/profile/edit?updated=true")
}

func (h *Handler) setSessionCookie(c echo.Context, token string, expires time.Time) error {
	value, err := h.cookies.Issue(token, expires)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *Handler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
