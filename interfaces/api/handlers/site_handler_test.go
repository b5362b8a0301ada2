package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
	"search-funnel/interfaces/api/middleware"
	"search-funnel/interfaces/web"
	"search-funnel/pkg/config"
)

type siteFixture struct {
	app     *fiber.App
	funnel  *fakeFunnel
	tracker *recordingTracker
}

func newSiteFixture(t *testing.T) *siteFixture {
	t.Helper()

	views, err := web.NewRenderer("Test Site")
	require.NoError(t, err)

	blogID := uuid.New()
	search := &models.RelatedSearch{ID: uuid.New(), BlogID: blogID, SearchText: "cheap flights"}
	result := &models.WebResult{ID: uuid.New(), RelatedSearchID: search.ID, Title: "Fly", URL: "https://fly.example.com"}

	f := &fakeFunnel{
		search: search,
		result: result,
		config: &models.PreLandingConfig{RelatedSearchID: search.ID, Headline: "Get the deal", ButtonText: "Go", BackgroundColor: "#fafafa"},
		decision: &funnel.VisitDecision{
			Kind:            funnel.VisitPreLanding,
			Override:        result.URL,
			RelatedSearchID: search.ID,
			WebResultID:     result.ID,
		},
	}
	tracker := &recordingTracker{}
	h := NewSiteHandler(f, tracker, views)

	app := fiber.New()
	session := middleware.Session(&config.TrackingConfig{SessionCookie: "fsid"})
	app.Get("/blog/:category/:slug", session, h.Blog)
	app.Get("/go/search/:id", session, h.SearchClick)
	app.Get("/go/visit/:webResultId", session, h.Visit)
	app.Get("/p/:searchId", session, h.PreLanding)
	app.Post("/p/:searchId", session, h.SubmitEmail)
	app.Post("/api/v1/events", session, h.TrackBeacon)

	return &siteFixture{app: app, funnel: f, tracker: tracker}
}

func TestSite_VisitRoutesThroughPreLanding(t *testing.T) {
	fx := newSiteFixture(t)
	wr := fx.funnel.result.ID

	resp, err := fx.app.Test(httptest.NewRequest(fiber.MethodGet, "/go/visit/"+wr.String(), nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/p/"+fx.funnel.search.ID.String()+"?wr="+wr.String(), resp.Header.Get(fiber.HeaderLocation))

	require.Len(t, fx.tracker.events, 1)
	ev := fx.tracker.events[0]
	assert.Equal(t, models.EventVisitNowClick, ev.Type)
	assert.Equal(t, wr, *ev.WebResultID)
	assert.Equal(t, "prelanding", ev.Metadata["destination"])
}

func TestSite_VisitDirect(t *testing.T) {
	fx := newSiteFixture(t)
	fx.funnel.decision.Kind = funnel.VisitDirect
	fx.funnel.decision.URL = "https://fly.example.com"

	resp, err := fx.app.Test(httptest.NewRequest(fiber.MethodGet, "/go/visit/"+fx.funnel.result.ID.String(), nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://fly.example.com", resp.Header.Get(fiber.HeaderLocation))
}

func TestSite_UnknownIDsRenderNotFound(t *testing.T) {
	fx := newSiteFixture(t)

	for _, path := range []string{
		"/go/visit/not-a-uuid",
		"/go/visit/" + uuid.NewString(),
		"/go/search/" + uuid.NewString(),
		"/blog/travel/missing",
		"/p/" + uuid.NewString(),
	} {
		resp, err := fx.app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
	}
	assert.Empty(t, fx.tracker.events)
}

func TestSite_SearchClickTracksAndRedirects(t *testing.T) {
	fx := newSiteFixture(t)
	id := fx.funnel.search.ID

	resp, err := fx.app.Test(httptest.NewRequest(fiber.MethodGet, "/go/search/"+id.String(), nil))
	require.NoError(t, err)

	assert.Equal(t, "/results/"+id.String(), resp.Header.Get(fiber.HeaderLocation))
	require.Len(t, fx.tracker.events, 1)
	assert.Equal(t, models.EventRelatedSearchClick, fx.tracker.events[0].Type)
	assert.Equal(t, fx.funnel.search.BlogID, *fx.tracker.events[0].BlogID)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderSetCookie), "session cookie")
}

func TestSite_PreLandingCarriesOverride(t *testing.T) {
	fx := newSiteFixture(t)
	wr := fx.funnel.result.ID.String()

	resp, err := fx.app.Test(httptest.NewRequest(fiber.MethodGet, "/p/"+fx.funnel.search.ID.String()+"?wr="+wr, nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Get the deal")
	assert.Contains(t, body, `name="wr" value="`+wr+`"`)
}

func submit(t *testing.T, fx *siteFixture, form url.Values) (int, string, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/p/"+fx.funnel.search.ID.String(), strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := fx.app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get(fiber.HeaderLocation), readBody(t, resp)
}

func TestSite_SubmitEmailRejectsInvalidAddress(t *testing.T) {
	fx := newSiteFixture(t)

	status, _, body := submit(t, fx, url.Values{"email": {"not-an-email"}})

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "valid email")
	assert.Empty(t, fx.tracker.emails)
}

func TestSite_SubmitEmailRedirectsToClickedResult(t *testing.T) {
	fx := newSiteFixture(t)
	dest := "https://fallback.example.com"
	fx.funnel.config.DestinationURL = &dest

	status, location, _ := submit(t, fx, url.Values{
		"email": {" reader@example.com "},
		"wr":    {fx.funnel.result.ID.String()},
	})

	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, fx.funnel.result.URL, location)
	require.Len(t, fx.tracker.emails, 1)
	assert.Equal(t, "reader@example.com", fx.tracker.emails[0].Email)
	assert.Equal(t, fx.funnel.result.ID, *fx.tracker.emails[0].WebResultID)
}

func TestSite_SubmitEmailFallsBackToConfiguredDestination(t *testing.T) {
	fx := newSiteFixture(t)
	dest := "https://fallback.example.com"
	fx.funnel.config.DestinationURL = &dest

	status, location, _ := submit(t, fx, url.Values{
		"email": {"reader@example.com"},
		"wr":    {uuid.NewString()},
	})

	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, dest, location)
	require.Len(t, fx.tracker.emails, 1)
	assert.Nil(t, fx.tracker.emails[0].WebResultID)
}

func TestSite_SubmitEmailThankYouWithoutDestination(t *testing.T) {
	fx := newSiteFixture(t)

	status, location, body := submit(t, fx, url.Values{"email": {"reader@example.com"}})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, location)
	assert.Contains(t, body, "Thank you")
	assert.Len(t, fx.tracker.emails, 1)
}

func TestSite_TrackBeaconAlwaysAccepts(t *testing.T) {
	fx := newSiteFixture(t)

	for _, body := range []string{
		`{"eventType":"blog_click","blogId":"` + uuid.NewString() + `"}`,
		`{"eventType":"purchase"}`,
		`not json`,
	} {
		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/events", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := fx.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode, body)
	}

	require.Len(t, fx.tracker.events, 1)
	assert.Equal(t, models.EventBlogClick, fx.tracker.events[0].Type)
}
