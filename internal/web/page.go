package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UnknownOlympus/athena/internal/view"
)

const (
	firstNameField = "first_name"
	lastNameField  = "last_name"
)

// index renders the full page, creating a session when the visitor has none.
func (s *Server) index(c echo.Context) error {
	sess, ok := s.lookupSession(c)
	if !ok {
		sess = s.store.Create()
		setSessionCookie(c, sess.ID())
	}

	return renderOK(c, Layout(sess.State()))
}

func (s *Server) page(c echo.Context) error {
	return renderOK(c, Page(sessionFrom(c).State()))
}

// input records typed filter text and returns the refreshed action buttons.
func (s *Server) input(c echo.Context) error {
	state := sessionFrom(c).SetInput(c.FormValue(firstNameField), c.FormValue(lastNameField))

	return renderOK(c, Actions(state))
}

// search applies the posted text. Inputs disabled during a refresh are not posted,
// so a form without them re-applies what the session already holds.
func (s *Server) search(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	sess := sessionFrom(c)
	_, hasFirst := form[firstNameField]
	_, hasLast := form[lastNameField]

	var state view.State
	if hasFirst || hasLast {
		state, _ = sess.Submit(form.Get(firstNameField), form.Get(lastNameField))
	} else {
		state, _ = sess.SubmitInput()
	}

	return renderOK(c, Page(state))
}

func (s *Server) reset(c echo.Context) error {
	state, _ := sessionFrom(c).Reset()

	return renderOK(c, Page(state))
}
