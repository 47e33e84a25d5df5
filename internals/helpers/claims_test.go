package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

func principalFor(t *testing.T, locals map[string]string) (hierarchy.Principal, error) {
	t.Helper()
	app := fiber.New()
	var p hierarchy.Principal
	var perr error
	app.Get("/", func(c *fiber.Ctx) error {
		for key, value := range locals {
			c.Locals(key, value)
		}
		p, perr = CurrentPrincipal(c)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return p, perr
}

func TestCurrentPrincipalFullClaims(t *testing.T) {
	userID := uuid.New()
	dioceseID := uuid.New()

	p, err := principalFor(t, map[string]string{
		LocUserID:    userID.String(),
		LocUserRole:  constants.RoleDiocesanAdmin,
		LocDioceseID: dioceseID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, userID, p.ID)
	assert.Equal(t, constants.RoleDiocesanAdmin, p.Role)
	require.NotNil(t, p.DioceseID)
	assert.Equal(t, dioceseID, *p.DioceseID)
	assert.Nil(t, p.ParishID)
	assert.Nil(t, p.CommunityID)
}

func TestCurrentPrincipalMissingUserID(t *testing.T) {
	_, err := principalFor(t, map[string]string{LocUserRole: constants.RoleFaithful})
	assert.Error(t, err)
}

func TestCurrentPrincipalGarbageScopeIDIgnored(t *testing.T) {
	p, err := principalFor(t, map[string]string{
		LocUserID:      uuid.New().String(),
		LocUserRole:    constants.RoleParishAdmin,
		LocParishID:    "not-a-uuid",
		LocCommunityID: "",
	})
	require.NoError(t, err)
	assert.Nil(t, p.ParishID)
	assert.Nil(t, p.CommunityID)
}
