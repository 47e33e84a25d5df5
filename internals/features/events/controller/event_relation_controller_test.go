package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
)

// Linking a pastoral extends its coordinator's manage grant to the event,
// so a pastoral from another community must be rejected.
func TestAddEventPastoralRejectsCrossCommunityLink(t *testing.T) {
	db, mock := mockDB(t)
	ctrl := NewEventController(db)

	eventID := uuid.New()
	eventCommunity := uuid.New()
	otherCommunity := uuid.New()
	pastoralID := uuid.New()

	// guardEvent: event chain walk (SYSTEM_ADMIN, so no pastoral lookup).
	mock.ExpectQuery(`SELECT "event_community_id" FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"event_community_id"}).
			AddRow(eventCommunity.String()))
	mock.ExpectQuery(`SELECT communities.community_parish_id, parishes.parish_diocese_id FROM "communities"`).
		WillReturnRows(sqlmock.NewRows([]string{"community_parish_id", "parish_diocese_id"}).
			AddRow(uuid.New().String(), uuid.New().String()))

	// Pastoral exists, but in another community.
	mock.ExpectQuery(`SELECT \* FROM "community_pastorals"`).
		WillReturnRows(sqlmock.NewRows([]string{"community_pastoral_id", "community_pastoral_community_id"}).
			AddRow(pastoralID.String(), otherCommunity.String()))
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "event_community_id"}).
			AddRow(eventID.String(), eventCommunity.String()))

	app := fiber.New()
	app.Post("/events/:id/pastorals", func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, uuid.New().String())
		c.Locals(helper.LocUserRole, constants.RoleSystemAdmin)
		return ctrl.AddEventPastoral(c)
	})

	body := `{"community_pastoral_id": "` + pastoralID.String() + `"}`
	req := httptest.NewRequest("POST", "/events/"+eventID.String()+"/pastorals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "different community")

	// No link row was written.
	assert.NoError(t, mock.ExpectationsWereMet())
}
