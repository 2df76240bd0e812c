package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"oleander_app_echo/internal/app"
	"oleander_app_echo/internal/services"
	"oleander_app_echo/web/components"
)

// InstanceHeader carries the view instance id on every response.
const InstanceHeader = "X-View-Instance"

// AppHandler serves the four views and the actions that move between them.
// Every page load is a separate view instance with its own state.
type AppHandler struct {
	store     services.SessionStore
	submitter services.Submitter
	opts      app.Options
	logger    *zap.Logger
	locks     instanceLocks
	newID     func() string
}

// NewAppHandler creates a new AppHandler
func NewAppHandler(store services.SessionStore, submitter services.Submitter, opts app.Options, logger *zap.Logger) *AppHandler {
	return &AppHandler{
		store:     store,
		submitter: submitter,
		opts:      opts,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// Register mounts the handler's routes on e.
func (h *AppHandler) Register(e *echo.Echo) {
	e.GET("/", h.Index)
	e.POST("/actions/navigate", h.Navigate)
	e.POST("/actions/field", h.ChangeField)
	e.POST("/actions/submit", h.Submit)
	e.GET("/healthz", h.Health)
}

// Index starts a new view instance on the home view.
func (h *AppHandler) Index(c echo.Context) error {
	id := h.newID()
	state := app.NewState()
	if err := h.store.Save(c.Request().Context(), id, state); err != nil {
		return fmt.Errorf("create view instance: %w", err)
	}
	return h.render(c, id, state)
}

// Navigate switches the instance to the posted target view.
func (h *AppHandler) Navigate(c echo.Context) error {
	target, err := app.ParseView(c.FormValue("target"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, state, _, err := h.act(c, func(app.State) []app.Msg {
		return []app.Msg{app.NavigateTo{Target: target}}
	})
	if err != nil {
		return err
	}
	return h.render(c, id, state)
}

// ChangeField records an edit of one input and returns that input's error
// slot, which is always empty afterwards.
func (h *AppHandler) ChangeField(c echo.Context) error {
	field, err := app.ParseField(c.FormValue("field"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	value := c.FormValue(string(field))

	id, state, fresh, err := h.act(c, func(app.State) []app.Msg {
		return []app.Msg{app.FieldChanged{Field: field, Value: value}}
	})
	if err != nil {
		return err
	}
	if fresh {
		// The page is out of date; have htmx reload it.
		c.Response().Header().Set("HX-Refresh", "true")
	}

	c.Response().Header().Set(InstanceHeader, id)
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return components.FieldError(field, state.Errors[field]).Render(c.Request().Context(), c.Response())
}

// Submit applies the posted field values and runs the submission handshake.
func (h *AppHandler) Submit(c echo.Context) error {
	var posted app.FormData
	for _, f := range app.Fields {
		posted.Set(f, c.FormValue(string(f)))
	}

	id, state, _, err := h.act(c, func(current app.State) []app.Msg {
		if current.View != app.ViewForm {
			return nil
		}
		msgs := make([]app.Msg, 0, len(app.Fields)+1)
		for _, f := range app.Fields {
			msgs = append(msgs, app.FieldChanged{Field: f, Value: posted.Get(f)})
		}
		return append(msgs, app.SubmitForm{})
	})
	if err != nil {
		return err
	}
	return h.render(c, id, state)
}

// Health reports liveness.
func (h *AppHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// act loads the posted instance, applies the messages chosen by plan and
// stores the result. An unknown or expired instance is replaced by a fresh
// one at home and plan is not consulted, matching a page reload.
func (h *AppHandler) act(c echo.Context, plan func(app.State) []app.Msg) (string, app.State, bool, error) {
	ctx := c.Request().Context()
	id := c.FormValue("instance")

	unlock := h.locks.lock(id)
	defer unlock()

	fresh := false
	state, err := h.store.Load(ctx, id)
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		h.logger.Warn("Unknown view instance, starting over", zap.String("instance", id))
		id, state, fresh = h.newID(), app.NewState(), true
	case err != nil:
		return "", app.State{}, false, fmt.Errorf("load view instance: %w", err)
	default:
		for _, msg := range plan(state) {
			var effect app.Effect
			state, effect = app.UpdateWith(state, msg, h.opts)
			h.perform(c, effect)
		}
	}

	if err := h.store.Save(ctx, id, state); err != nil {
		return "", app.State{}, false, fmt.Errorf("save view instance: %w", err)
	}
	return id, state, fresh, nil
}

func (h *AppHandler) perform(c echo.Context, effect app.Effect) {
	submitted, ok := effect.(app.Submitted)
	if !ok {
		return
	}
	if err := h.submitter.Submit(c.Request().Context(), submitted.Payload); err != nil {
		h.logger.Warn("Submitter failed", zap.Error(err))
	}
}

func (h *AppHandler) render(c echo.Context, id string, state app.State) error {
	c.Response().Header().Set(InstanceHeader, id)
	return c.Render(http.StatusOK, pageTemplate(state.View), buildPageData(state, id))
}
