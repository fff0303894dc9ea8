package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/events"
	"storefront/internal/infra/imagehost"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/qrcode"
	"storefront/internal/testutil"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "correct-horse"
	mediaBaseURL      = "http://localhost:5000/media"
)

// pngHeader is enough for content sniffing to classify the payload as PNG.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type testApp struct {
	e     *echo.Echo
	token string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.Images = &config.ImagesConfig{PublicBaseURL: mediaBaseURL}
	cfg.QRCode = &config.QRCodeConfig{BaseURL: "https://shop.test"}
	cfg.ApplyDefaults()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := testutil.NewTestDB(t)
	lc := fxtest.NewLifecycle(t)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	imageStore := imagehost.NewBucketStore(bucket, cfg.Images.PublicBaseURL, cfg.Images.Folder)

	publisher, err := events.NewEventPublisher(events.PublisherParams{Lc: lc, Config: cfg, Logger: logger})
	require.NoError(t, err)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	cleanupUC := impl.NewImageCleanupService(impl.ImageCleanupServiceParams{
		ImageStore: imageStore,
		TaskRepo:   gormstore.NewCleanupTaskRepository(db),
		Config:     cfg,
		Logger:     logger,
	})
	productUC := impl.NewProductService(impl.ProductServiceParams{
		ProductRepo: gormstore.NewProductRepository(db),
		ImageStore:  imageStore,
		Cleanup:     cleanupUC,
		Publisher:   publisher,
		Logger:      logger,
	})
	serviceUC := impl.NewCatalogService(impl.CatalogServiceParams{
		ServiceRepo: gormstore.NewServiceRepository(db),
		Publisher:   publisher,
		Logger:      logger,
	})
	blogUC := impl.NewBlogService(impl.BlogServiceParams{
		BlogRepo:  gormstore.NewBlogRepository(db),
		Publisher: publisher,
		Logger:    logger,
	})
	ticketUC := impl.NewTicketService(impl.TicketServiceParams{
		TicketRepo:    gormstore.NewTicketRepository(db),
		Sequence:      gormstore.NewSequenceGenerator(db),
		QRCodeService: qrcode.NewQRCodeService(cfg),
		Publisher:     publisher,
		Config:        cfg,
		Logger:        logger,
	})
	settingsUC := impl.NewSettingsService(impl.SettingsServiceParams{
		SettingsRepo: gormstore.NewSettingsRepository(db),
		Publisher:    publisher,
		Logger:       logger,
	})
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		AdminRepo:    gormstore.NewAdminUserRepository(db),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Config:       cfg,
		Logger:       logger,
	})
	uploadUC := impl.NewUploadService(impl.UploadServiceParams{
		ImageStore: imageStore,
		Cleanup:    cleanupUC,
		Logger:     logger,
	})

	require.NoError(t, settingsUC.EnsureSettings(ctx))
	require.NoError(t, ticketUC.PrepareSequence(ctx))
	_, err = authUC.SeedAdmin(ctx, testAdminUsername, testAdminPassword)
	require.NoError(t, err)

	r := router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: productUC, Config: cfg}),
		ServiceHandler:  handler.NewServiceHandler(handler.ServiceHandlerParams{ServiceUC: serviceUC}),
		TicketHandler:   handler.NewTicketHandler(handler.TicketHandlerParams{TicketUC: ticketUC, Logger: logger}),
		BlogHandler:     handler.NewBlogHandler(handler.BlogHandlerParams{BlogUC: blogUC}),
		SettingsHandler: handler.NewSettingsHandler(handler.SettingsHandlerParams{SettingsUC: settingsUC}),
		UploadHandler:   handler.NewUploadHandler(handler.UploadHandlerParams{UploadUC: uploadUC, Config: cfg}),
		MediaHandler:    handler.NewMediaHandler(handler.MediaHandlerParams{ImageStore: imageStore}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokenSvc),
		Config:          cfg,
	})

	app := &testApp{e: api.NewEcho(cfg, logger, r)}
	app.token = app.login(t)

	return app
}

func (app *testApp) login(t *testing.T) string {
	t.Helper()

	rec := app.do(t, http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
		"username": testAdminUsername,
		"password": testAdminPassword,
	}), echo.MIMEApplicationJSON, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	decode(t, rec, &out)
	require.NotEmpty(t, out.Token)

	return out.Token
}

func (app *testApp) do(t *testing.T, method, target string, body io.Reader, contentType string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+app.token)
	}

	rec := httptest.NewRecorder()
	app.e.ServeHTTP(rec, req)

	return rec
}

func (app *testApp) doJSON(t *testing.T, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	return app.do(t, method, target, jsonBody(t, payload), echo.MIMEApplicationJSON, true)
}

func (app *testApp) doForm(t *testing.T, method, target string, fields map[string]string, files ...formFile) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, fields, files...)

	return app.do(t, method, target, body, contentType, true)
}

type formFile struct {
	field string
	name  string
	data  []byte
}

func pngFiles(field string, n int) []formFile {
	files := make([]formFile, 0, n)
	for i := range n {
		data := append(append([]byte{}, pngHeader...), byte(i))
		files = append(files, formFile{field: field, name: fmt.Sprintf("photo-%d.png", i), data: data})
	}

	return files
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func jsonBody(t *testing.T, payload any) io.Reader {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

type productBody struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Price   float64  `json:"price"`
	Image   string   `json:"image"`
	Images  []string `json:"images"`
	InStock bool     `json:"inStock"`
	Specs   []string `json:"specs"`
}

func mediaPath(t *testing.T, imageURL string) string {
	t.Helper()

	u, err := url.Parse(imageURL)
	require.NoError(t, err)

	return u.Path
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/health", nil, "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProducts_CreateWithoutImages(t *testing.T) {
	app := newTestApp(t)

	rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
		"name":        "Widget",
		"category":    "Tools",
		"price":       "100",
		"description": "A widget",
		"specs":       "steel, 10cm ,",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product productBody
	decode(t, rec, &product)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 100.0, product.Price)
	assert.Equal(t, "", product.Image)
	assert.Empty(t, product.Images)
	assert.NotNil(t, product.Images)
	assert.True(t, product.InStock)
	assert.Equal(t, []string{"steel", "10cm"}, product.Specs)
}

func TestProducts_CreateValidation(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing price", func(t *testing.T) {
		rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
			"name":        "Widget",
			"category":    "Tools",
			"description": "A widget",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body domainerrors.ErrorResponse
		decode(t, rec, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "price", body.Errors[0].Field)
	})

	t.Run("price is not a number", func(t *testing.T) {
		rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
			"name":        "Widget",
			"category":    "Tools",
			"description": "A widget",
			"price":       "cheap",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "price must be a number")
	})

	t.Run("more than five files", func(t *testing.T) {
		rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
			"name":        "Widget",
			"category":    "Tools",
			"description": "A widget",
			"price":       "10",
		}, pngFiles("images", 6)...)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body domainerrors.ErrorResponse
		decode(t, rec, &body)
		assert.Equal(t, domainerrors.ErrTooManyImages.Message(), body.Message)
	})

	t.Run("not an image", func(t *testing.T) {
		rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
			"name":        "Widget",
			"category":    "Tools",
			"description": "A widget",
			"price":       "10",
		}, formFile{field: "images", name: "notes.png", data: []byte("just some text")})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body domainerrors.ErrorResponse
		decode(t, rec, &body)
		assert.Equal(t, domainerrors.ErrInvalidFileType.Message(), body.Message)
	})
}

func TestProducts_WritesRequireToken(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, map[string]string{"name": "Widget"})
	rec := app.do(t, http.MethodPost, "/api/products", body, contentType, false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var out domainerrors.ErrorResponse
	decode(t, rec, &out)
	assert.Equal(t, domainerrors.ErrUnauthorized.Message(), out.Message)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/whatever", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec = httptest.NewRecorder()
	app.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProducts_UpdateTruncatesToFiveImages(t *testing.T) {
	app := newTestApp(t)

	rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
		"name":        "Widget",
		"category":    "Tools",
		"price":       "100",
		"description": "A widget",
	}, pngFiles("images", 2)...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created productBody
	decode(t, rec, &created)
	require.Len(t, created.Images, 2)

	rec = app.doForm(t, http.MethodPut, "/api/products/"+created.ID, map[string]string{
		"existingImages": "[]",
	}, pngFiles("newImages", 6)...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated productBody
	decode(t, rec, &updated)
	require.Len(t, updated.Images, 5)
	assert.Equal(t, updated.Images[0], updated.Image)
	assert.Equal(t, "Widget", updated.Name)
	for _, img := range updated.Images {
		assert.True(t, strings.HasPrefix(img, mediaBaseURL+"/pol-products/"), img)
		assert.NotContains(t, created.Images, img)
	}

	// Previously attached images were dropped from the set and removed remotely.
	for _, img := range created.Images {
		rec = app.do(t, http.MethodGet, mediaPath(t, img), nil, "", false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestProducts_UpdateKeepsExistingBeforeNewImages(t *testing.T) {
	app := newTestApp(t)

	rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
		"name":        "Widget",
		"category":    "Tools",
		"price":       "100",
		"description": "A widget",
	}, pngFiles("images", 2)...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created productBody
	decode(t, rec, &created)
	require.Len(t, created.Images, 2)

	keep, err := json.Marshal(created.Images)
	require.NoError(t, err)

	rec = app.doForm(t, http.MethodPut, "/api/products/"+created.ID, map[string]string{
		"existingImages": string(keep),
	}, pngFiles("newImages", 6)...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated productBody
	decode(t, rec, &updated)
	require.Len(t, updated.Images, 5)
	assert.Equal(t, created.Images, updated.Images[:2])

	// Only newImages carries uploads on update; files under the create field are not attached.
	keep, err = json.Marshal(updated.Images[:1])
	require.NoError(t, err)

	rec = app.doForm(t, http.MethodPut, "/api/products/"+created.ID, map[string]string{
		"existingImages": string(keep),
	}, pngFiles("images", 2)...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var trimmed productBody
	decode(t, rec, &trimmed)
	assert.Equal(t, created.Images[:1], trimmed.Images)
}

func TestProducts_RemoveImage(t *testing.T) {
	app := newTestApp(t)

	rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
		"name":        "Widget",
		"category":    "Tools",
		"price":       "100",
		"description": "A widget",
	}, pngFiles("images", 3)...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created productBody
	decode(t, rec, &created)
	require.Len(t, created.Images, 3)

	rec = app.do(t, http.MethodGet, mediaPath(t, created.Images[0]), nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = app.do(t, http.MethodDelete, "/api/products/"+created.ID+"/images/0", nil, "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated productBody
	decode(t, rec, &updated)
	assert.Equal(t, created.Images[1:], updated.Images)

	rec = app.do(t, http.MethodGet, mediaPath(t, created.Images[0]), nil, "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/products/"+created.ID+"/images/7", nil, "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProducts_AppendImages(t *testing.T) {
	app := newTestApp(t)

	rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
		"name":        "Widget",
		"category":    "Tools",
		"price":       "100",
		"description": "A widget",
	}, pngFiles("images", 4)...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created productBody
	decode(t, rec, &created)

	rec = app.doForm(t, http.MethodPost, "/api/products/"+created.ID+"/images", nil, pngFiles("images", 3)...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var appended productBody
	decode(t, rec, &appended)
	assert.Len(t, appended.Images, 5)
	assert.Equal(t, created.Images, appended.Images[:4])

	rec = app.doForm(t, http.MethodPost, "/api/products/"+created.ID+"/images", nil, pngFiles("images", 1)...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body domainerrors.ErrorResponse
	decode(t, rec, &body)
	assert.Equal(t, domainerrors.ErrImageCapacityReached.Message(), body.Message)

	rec = app.doForm(t, http.MethodPost, "/api/products/"+created.ID+"/images", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProducts_DeleteAndNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.doForm(t, http.MethodPost, "/api/products", map[string]string{
		"name":        "Widget",
		"category":    "Tools",
		"price":       "100",
		"description": "A widget",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created productBody
	decode(t, rec, &created)

	rec = app.do(t, http.MethodDelete, "/api/products/"+created.ID, nil, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/products/"+created.ID, nil, "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/products/not-a-uuid", nil, "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTickets_SequentialIDs(t *testing.T) {
	app := newTestApp(t)

	create := func() string {
		rec := app.do(t, http.MethodPost, "/api/tickets", jsonBody(t, map[string]string{
			"subject":  "Broken screen",
			"customer": "Ana",
		}), echo.MIMEApplicationJSON, false)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var ticket struct {
			TicketID string `json:"ticketId"`
			Priority string `json:"priority"`
			Status   string `json:"status"`
		}
		decode(t, rec, &ticket)
		assert.Equal(t, string(entity.PriorityMedium), ticket.Priority)
		assert.Equal(t, string(entity.StatusOpen), ticket.Status)

		return ticket.TicketID
	}

	first, second := create(), create()
	require.NotEqual(t, first, second)

	n1, err := strconv.Atoi(strings.TrimPrefix(first, "TCK-"))
	require.NoError(t, err)
	n2, err := strconv.Atoi(strings.TrimPrefix(second, "TCK-"))
	require.NoError(t, err)
	assert.Greater(t, n2, n1)
}

func TestTickets_PublicCreateIgnoresIdentityFields(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/tickets", jsonBody(t, map[string]string{
		"ticketId": "TCK-99999",
		"status":   string(entity.StatusClosed),
		"subject":  "Broken screen",
		"customer": "Ana",
	}), echo.MIMEApplicationJSON, false)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var ticket struct {
		TicketID string `json:"ticketId"`
		Status   string `json:"status"`
	}
	decode(t, rec, &ticket)
	assert.NotEqual(t, "TCK-99999", ticket.TicketID)
	assert.True(t, strings.HasPrefix(ticket.TicketID, "TCK-"), ticket.TicketID)
	assert.Equal(t, string(entity.StatusOpen), ticket.Status)

	// The sequence is unaffected by the ignored id.
	rec = app.do(t, http.MethodPost, "/api/tickets", jsonBody(t, map[string]string{
		"subject":  "Still broken",
		"customer": "Ana",
	}), echo.MIMEApplicationJSON, false)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/tickets/TCK-99999", nil, "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTickets_AdminRoutes(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/tickets", nil, "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/tickets", map[string]string{
		"ticketId": "TCK-42",
		"subject":  "Screen, cracked",
		"customer": "Ana",
		"priority": "High",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.doJSON(t, http.MethodPatch, "/api/tickets/TCK-42", map[string]string{"status": "Closed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"Closed"`)
	assert.Contains(t, rec.Body.String(), `"priority":"High"`)

	rec = app.do(t, http.MethodGet, "/api/tickets/export", nil, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	assert.Contains(t, rec.Body.String(), `"Screen, cracked"`)

	rec = app.do(t, http.MethodGet, "/api/tickets/TCK-42/qrcode", nil, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = app.doJSON(t, http.MethodPost, "/api/tickets", map[string]string{
		"ticketId": "TCK-42",
		"subject":  "Again",
		"customer": "Ana",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/tickets/TCK-42", nil, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Ticket deleted successfully"}`, rec.Body.String())
}

func TestSettings_PartialUpdate(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/settings", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var before entity.Settings
	decode(t, rec, &before)

	rec = app.doJSON(t, http.MethodPatch, "/api/settings", map[string]bool{"maintenanceMode": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/settings", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var after entity.Settings
	decode(t, rec, &after)

	assert.True(t, after.MaintenanceMode)
	assert.Equal(t, before.ShowScrollingHeadline, after.ShowScrollingHeadline)
	assert.Equal(t, before.ShowSidebar, after.ShowSidebar)
	assert.Equal(t, before.EnableTicketing, after.EnableTicketing)
	assert.Equal(t, before.Headlines, after.Headlines)

	rec = app.doJSON(t, http.MethodPut, "/api/settings", map[string]any{"headlines": []string{"Sale"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &after)
	assert.Equal(t, []string{"Sale"}, after.Headlines)
	assert.True(t, after.MaintenanceMode)
}

func TestServices_CRUD(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/api/services", map[string]any{"title": "Repair"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var invalid domainerrors.ErrorResponse
	decode(t, rec, &invalid)
	assert.Len(t, invalid.Errors, 2)

	rec = app.doJSON(t, http.MethodPost, "/api/services", map[string]any{
		"title":       "Repair",
		"description": "We fix things",
		"icon":        "wrench",
		"features":    []string{"Fast"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var svc struct {
		ID      string `json:"id"`
		Color   string `json:"color"`
		Enabled bool   `json:"enabled"`
	}
	decode(t, rec, &svc)
	assert.Equal(t, "blue", svc.Color)
	assert.True(t, svc.Enabled)

	rec = app.doJSON(t, http.MethodPatch, "/api/services/"+svc.ID, map[string]any{"order": 3})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"order":3`)
	assert.Contains(t, rec.Body.String(), `"title":"Repair"`)

	rec = app.do(t, http.MethodDelete, "/api/services/"+svc.ID, nil, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Service deleted successfully"}`, rec.Body.String())
}

func TestBlogs_ImportAndLookupBySlug(t *testing.T) {
	app := newTestApp(t)

	content := []byte("# Hello\n\nSome words for the article body.")
	rec := app.doForm(t, http.MethodPost, "/api/blogs/import", map[string]string{
		"author":   "Team",
		"featured": "true",
	}, formFile{field: "file", name: "hello-world.md", data: content})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var blog struct {
		Slug     string `json:"slug"`
		Author   string `json:"author"`
		Featured bool   `json:"featured"`
	}
	decode(t, rec, &blog)
	assert.Equal(t, "hello-world", blog.Slug)
	assert.Equal(t, "Team", blog.Author)
	assert.True(t, blog.Featured)

	rec = app.do(t, http.MethodGet, "/api/blogs/hello-world", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.doForm(t, http.MethodPost, "/api/blogs/import", nil,
		formFile{field: "file", name: "hello-world.txt", data: content})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.doForm(t, http.MethodPost, "/api/blogs/import", map[string]string{"author": "Team"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body domainerrors.ErrorResponse
	decode(t, rec, &body)
	assert.Equal(t, domainerrors.ErrNoBlogFile.Message(), body.Message)
}

func TestUpload(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, nil, pngFiles("image", 1)...)
	rec := app.do(t, http.MethodPost, "/api/upload", body, contentType, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stored struct {
		URL      string `json:"url"`
		PublicID string `json:"public_id"`
	}
	decode(t, rec, &stored)
	assert.True(t, strings.HasPrefix(stored.URL, mediaBaseURL+"/pol-products/"))
	assert.True(t, strings.HasPrefix(stored.PublicID, "pol-products/"))

	body, contentType = multipartBody(t, nil, pngFiles("images", 6)...)
	rec = app.do(t, http.MethodPost, "/api/upload/multiple", body, contentType, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, contentType = multipartBody(t, nil)
	rec = app.do(t, http.MethodPost, "/api/upload", body, contentType, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var out domainerrors.ErrorResponse
	decode(t, rec, &out)
	assert.Equal(t, domainerrors.ErrNoImageFile.Message(), out.Message)
}

func TestAuth_VerifyAndChangePassword(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/auth/verify", nil, "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = app.doJSON(t, http.MethodPost, "/api/auth/change-password", map[string]string{
		"currentPassword": "wrong-password",
		"newPassword":     "battery-staple",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/auth/change-password", map[string]string{
		"currentPassword": testAdminPassword,
		"newPassword":     "battery-staple",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(t, http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
		"username": testAdminUsername,
		"password": testAdminPassword,
	}), echo.MIMEApplicationJSON, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{}), echo.MIMEApplicationJSON, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body domainerrors.ErrorResponse
	decode(t, rec, &body)
	assert.Len(t, body.Errors, 2)
}
