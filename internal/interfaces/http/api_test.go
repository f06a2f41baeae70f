package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/candy-store-api/internal/application/auth"
	"github.com/jhoicas/candy-store-api/internal/application/dto"
	"github.com/jhoicas/candy-store-api/internal/application/usecase"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
	"github.com/jhoicas/candy-store-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/candy-store-api/internal/interfaces/http"
	"github.com/jhoicas/candy-store-api/pkg/logger"
)

const (
	adminID = "64b7f0a1c2d3e4f5a6b70001"
	johnID  = "64b7f0a1c2d3e4f5a6b70002"
	janeID  = "64b7f0a1c2d3e4f5a6b70003"
)

// buildAPI monta el router completo sobre el adaptador en memoria.
// candyRepo permite inyectar un repositorio alternativo (nil = memoria).
func buildAPI(t *testing.T, candyRepo repository.CandyRepository) *fiber.App {
	t.Helper()
	db := memory.NewDB()
	if candyRepo == nil {
		candyRepo = memory.NewCandyRepository(db)
	}
	tokens := memory.NewTokenStore()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CandyUC: usecase.NewCandyUseCase(candyRepo),
		StoreUC: usecase.NewStoreUseCase(memory.NewStoreRepository(db)),
		OrderUC: usecase.NewOrderUseCase(memory.NewOrderRepository(db)),
		UserUC:  usecase.NewUserUseCase(memory.NewUserRepository(db)),
		AuthUC:  auth.NewAuthUseCase(memory.NewUserRepository(db), tokens, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		Tokens:    tokens,
		Log:       logger.Nop(),
		JWTSecret: testJWTSecret,
	})
	return app
}

// call lanza una petición con body JSON opcional y token opcional.
func call(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e.Code
}

const store1 = `{"name":"Test Store 1","street":"123 Main St","city":"Anytown","state":"NY","zip_code":"12345",
"phone_number":"+1-555-555-5555","email":"teststore@email.com","owner_id":"507f1f77bcf86cd799439011",
"operating_hours":"9-5","website":"http://teststore.com"}`

const store2 = `{"name":"Test Store 2","street":"9 Side St","city":"Othertown","state":"CA","zip_code":"54321",
"phone_number":"+1-867-530-9999","email":"other@email.com","owner_id":"507f1f77bcf86cd799439011"}`

// ──────────────────────────────────────────────────────────────────────────────
// Stores
// ──────────────────────────────────────────────────────────────────────────────

func TestStores_FiltrosYListaVacia(t *testing.T) {
	app := buildAPI(t, nil)
	staff := tokenFor(t, adminID, "employee")

	resp := call(t, app, http.MethodPost, "/api/stores", staff, store1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StoreResponse
	decode(t, resp, &created)
	assert.True(t, entity.IsValidID(created.ID))
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/stores", staff, store2).StatusCode)

	// Caso 1: subcadena sin distinguir mayúsculas.
	resp = call(t, app, http.MethodGet, "/api/stores?name=test", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.StoreResponse
	decode(t, resp, &list)
	assert.Len(t, list, 2)

	// Caso 2: varios filtros se combinan con AND.
	resp = call(t, app, http.MethodGet, "/api/stores?name=test&city=anytown", "", "")
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Test Store 1", list[0].Name)

	// Caso 3: sin coincidencias → 200 [].
	resp = call(t, app, http.MethodGet, "/api/stores?city=Nowhere", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(raw))

	// Caso 4: phone es alias de phone_number.
	resp = call(t, app, http.MethodGet, "/api/stores?phone=867-530", "", "")
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Test Store 2", list[0].Name)

	// Caso 5: parámetros desconocidos se ignoran.
	resp = call(t, app, http.MethodGet, "/api/stores?color=red", "", "")
	decode(t, resp, &list)
	assert.Len(t, list, 2)
}

func TestStores_CRUD(t *testing.T) {
	app := buildAPI(t, nil)
	staff := tokenFor(t, adminID, "storeowner")

	resp := call(t, app, http.MethodPost, "/api/stores", staff, store1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StoreResponse
	decode(t, resp, &created)

	resp = call(t, app, http.MethodGet, "/api/stores/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.StoreResponse
	decode(t, resp, &got)
	assert.Equal(t, created, got)

	resp = call(t, app, http.MethodPut, "/api/stores/"+created.ID, staff, `{"name":"Updated Store 1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &got)
	assert.Equal(t, "Updated Store 1", got.Name)
	assert.Equal(t, "Anytown", got.City)

	resp = call(t, app, http.MethodDelete, "/api/stores/"+created.ID, staff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var del dto.DeleteResponse
	decode(t, resp, &del)
	assert.Equal(t, created.ID, del.DeletedID)
	assert.NotEmpty(t, del.Message)

	resp = call(t, app, http.MethodDelete, "/api/stores/"+created.ID, staff, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/stores/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestStores_ValidacionYPermisos(t *testing.T) {
	app := buildAPI(t, nil)

	// Caso 1: sin token → 401.
	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodPost, "/api/stores", "", store1).StatusCode)

	// Caso 2: customer no puede crear tiendas → 403.
	resp := call(t, app, http.MethodPost, "/api/stores", tokenFor(t, johnID, "customer"), store1)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	staff := tokenFor(t, adminID, "admin")

	// Caso 3: faltan campos requeridos → 400 VALIDATION.
	resp = call(t, app, http.MethodPost, "/api/stores", staff, `{"name":"Solo nombre"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))

	// Caso 4: JSON malformado → 400 INVALID_BODY.
	resp = call(t, app, http.MethodPost, "/api/stores", staff, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))

	// Caso 5: id malformado → 400 INVALID_ID; id válido inexistente → 404.
	resp = call(t, app, http.MethodGet, "/api/stores/123", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", errorCode(t, resp))
	resp = call(t, app, http.MethodDelete, "/api/stores/123", staff, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = call(t, app, http.MethodPut, "/api/stores/"+entity.NewID(), staff, `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Caso 6: email con nombre visible → 400; el email válido se guarda normalizado.
	withName := strings.Replace(store1, `"teststore@email.com"`, `"Shop <teststore@email.com>"`, 1)
	resp = call(t, app, http.MethodPost, "/api/stores", staff, withName)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
	upper := strings.Replace(store1, `"teststore@email.com"`, `" TestStore@Email.com "`, 1)
	resp = call(t, app, http.MethodPost, "/api/stores", staff, upper)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StoreResponse
	decode(t, resp, &created)
	assert.Equal(t, "teststore@email.com", created.Email)
	resp = call(t, app, http.MethodPatch, "/api/stores/"+created.ID, staff, `{"email":"Shop <a@b.com>"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Candy
// ──────────────────────────────────────────────────────────────────────────────

const gummy = `{"name":"Gummy Bears","description":"Chewy","shipping_container":"Box",
"price_per_unit":1.5,"stock_quantity":100,"supplier_name":"Sweet Co"}`

func TestCandy_CRUDSinCreatedBy(t *testing.T) {
	app := buildAPI(t, nil)
	staff := tokenFor(t, adminID, "employee")

	resp := call(t, app, http.MethodPost, "/api/candy", staff, gummy)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "createdBy")
	var created dto.CandyResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "Gummy Bears", created.Name)
	assert.Equal(t, "1.5", created.PricePerUnit.String())
	assert.NotEmpty(t, created.DateAdded)

	resp = call(t, app, http.MethodGet, "/api/candy?container=box", "", "")
	var list []dto.CandyResponse
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	resp = call(t, app, http.MethodPatch, "/api/candy/"+created.ID, staff, `{"stock_quantity":7}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.CandyResponse
	decode(t, resp, &updated)
	assert.Equal(t, 7, updated.StockQuantity)
	assert.Equal(t, "Box", updated.ShippingContainer)

	resp = call(t, app, http.MethodPut, "/api/candy/"+created.ID, staff, `{"price_per_unit":-2}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/candy/"+created.ID, staff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var del dto.DeleteResponse
	decode(t, resp, &del)
	assert.Equal(t, created.ID, del.DeletedID)

	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodDelete, "/api/candy/"+created.ID, staff, "").StatusCode)
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodGet, "/api/candy/"+created.ID, "", "").StatusCode)
}

func TestCandy_CrearSinPrecio_Retorna400(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodPost, "/api/candy", tokenFor(t, adminID, "admin"),
		`{"name":"Lollipop","shipping_container":"Jar","stock_quantity":3}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

// failingCandyRepo simula un fallo del driver de base de datos.
type failingCandyRepo struct{ *memory.CandyRepo }

func (failingCandyRepo) Find(context.Context, filter.Criteria) ([]*entity.Candy, error) {
	return nil, errors.New("server selection error: dial tcp 10.0.0.5:27017")
}

func TestCandy_ErrorInterno_NoExponeDetalle(t *testing.T) {
	app := buildAPI(t, failingCandyRepo{memory.NewCandyRepository(memory.NewDB())})

	resp := call(t, app, http.MethodGet, "/api/candy", "", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INTERNAL")
	assert.NotContains(t, string(raw), "27017")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orders
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_GuardaDeAcceso(t *testing.T) {
	app := buildAPI(t, nil)
	john := tokenFor(t, johnID, "customer")
	jane := tokenFor(t, janeID, "customer")
	admin := tokenFor(t, adminID, "admin")

	// Caso 1: sin token → 401.
	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodGet, "/api/orders", "", "").StatusCode)

	resp := call(t, app, http.MethodPost, "/api/orders", john, `{"customerName":"John Doe","totalAmount":100}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	decode(t, resp, &order)
	assert.Equal(t, johnID, order.CustomerID)
	assert.Equal(t, "pending", order.Status)

	// Caso 2: el dueño y el admin pueden leerlo.
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/orders/"+order.ID, john, "").StatusCode)
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/orders/"+order.ID, admin, "").StatusCode)

	// Caso 3: otro cliente → 403 en get, update y delete.
	resp = call(t, app, http.MethodGet, "/api/orders/"+order.ID, jane, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
	assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodPut, "/api/orders/"+order.ID, jane, `{"status":"paid"}`).StatusCode)
	assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodDelete, "/api/orders/"+order.ID, jane, "").StatusCode)

	// Caso 4: la lista de jane no incluye pedidos ajenos.
	resp = call(t, app, http.MethodGet, "/api/orders", jane, "")
	var list []dto.OrderResponse
	decode(t, resp, &list)
	assert.Empty(t, list)
	resp = call(t, app, http.MethodGet, "/api/orders?status=pend", admin, "")
	decode(t, resp, &list)
	assert.Len(t, list, 1)

	// Caso 5: inexistente → 404 (también para admin); id malformado → 400.
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodGet, "/api/orders/"+entity.NewID(), admin, "").StatusCode)
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodGet, "/api/orders/"+entity.NewID(), jane, "").StatusCode)
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodGet, "/api/orders/not-an-id", john, "").StatusCode)

	// Caso 6: update no cambia el dueño; delete dos veces → 404.
	resp = call(t, app, http.MethodPut, "/api/orders/"+order.ID, john, `{"status":"paid","customerId":"`+janeID+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &order)
	assert.Equal(t, "paid", order.Status)
	assert.Equal(t, johnID, order.CustomerID)

	assert.Equal(t, http.StatusOK, call(t, app, http.MethodDelete, "/api/orders/"+order.ID, john, "").StatusCode)
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodDelete, "/api/orders/"+order.ID, john, "").StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegistroLoginLogout(t *testing.T) {
	app := buildAPI(t, nil)
	reg := `{"username":"johndoe","email":"John@Example.com","password":"supersecret","preferred_name":"John"}`

	resp := call(t, app, http.MethodPost, "/api/auth/register", "", reg)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user dto.UserResponse
	decode(t, resp, &user)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)

	// Caso 1: email duplicado → 409.
	assert.Equal(t, http.StatusConflict, call(t, app, http.MethodPost, "/api/auth/register", "", reg).StatusCode)

	// Caso 2: no se puede auto-registrar un admin → 400.
	resp = call(t, app, http.MethodPost, "/api/auth/register", "",
		`{"username":"x","email":"x@example.com","password":"supersecret","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Caso 3: credenciales inválidas → 401.
	resp = call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"john@example.com","password":"wrongpass"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"john@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)
	bearer := "Bearer " + login.Token

	// Caso 4: el token sirve para crear un pedido propio.
	resp = call(t, app, http.MethodPost, "/api/orders", bearer, `{"customerName":"John","totalAmount":"12.50"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	decode(t, resp, &order)
	assert.Equal(t, user.ID, order.CustomerID)

	resp = call(t, app, http.MethodGet, "/api/users/me", bearer, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	decode(t, resp, &me)
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, "johndoe", me.Username)

	// Caso 5: después de logout el token queda revocado.
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/api/auth/logout", bearer, "").StatusCode)
	resp = call(t, app, http.MethodGet, "/api/orders", bearer, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "REVOKED_TOKEN", errorCode(t, resp))
}

func TestAuth_RegistroRolPersonal_NoPermiteEscribir(t *testing.T) {
	app := buildAPI(t, nil)

	// Caso 1: employee y storeowner no se autoregistran → 400 VALIDATION.
	for _, role := range []string{"employee", "storeowner"} {
		resp := call(t, app, http.MethodPost, "/api/auth/register", "",
			`{"username":"intruso","email":"intruso@example.com","password":"supersecret","role":"`+role+`"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, role)
		assert.Equal(t, "VALIDATION", errorCode(t, resp))
	}

	// Caso 2: email con formato inválido → 400.
	resp := call(t, app, http.MethodPost, "/api/auth/register", "",
		`{"username":"intruso","email":"Intruso <intruso@example.com>","password":"supersecret"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Caso 3: la cuenta registrada es customer y no puede crear tiendas → 403.
	resp = call(t, app, http.MethodPost, "/api/auth/register", "",
		`{"username":"intruso","email":"intruso@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"intruso@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decode(t, resp, &login)
	assert.Equal(t, "customer", login.User.Role)
	resp = call(t, app, http.MethodPost, "/api/stores", "Bearer "+login.Token, store1)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
