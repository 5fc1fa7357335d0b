package supplies

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUsageApp wires the usage route with a nil service DB: any request
// that reaches the database panics, so a clean 400 doubles as proof that
// nothing was written.
func newUsageApp(userID uuid.UUID) *fiber.App {
	handler := NewSupplyHandler(NewSupplyService(nil))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": userID.String()}})
		return c.Next()
	})
	app.Post("/supplies/:kind/:id/usage", handler.RecordUsage)
	return app
}

func postUsage(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/supplies/medical/"+uuid.NewString()+"/usage",
		strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRecordUsageRejectsNonNumericAmount(t *testing.T) {
	app := newUsageApp(uuid.New())

	status := postUsage(t, app, `{"amount":"abc","notes":"spilled"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRecordUsageRejectsMissingAmount(t *testing.T) {
	app := newUsageApp(uuid.New())

	status := postUsage(t, app, `{"notes":"no amount given"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRecordUsageRejectsNonPositiveAmount(t *testing.T) {
	app := newUsageApp(uuid.New())

	assert.Equal(t, fiber.StatusBadRequest, postUsage(t, app, `{"amount":0}`))
	assert.Equal(t, fiber.StatusBadRequest, postUsage(t, app, `{"amount":-2}`))
}

func TestRecordUsageRejectsUnknownKind(t *testing.T) {
	app := newUsageApp(uuid.New())

	req := httptest.NewRequest("POST", "/supplies/veterinary/"+uuid.NewString()+"/usage",
		strings.NewReader(`{"amount":1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
