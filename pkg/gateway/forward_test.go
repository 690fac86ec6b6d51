package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newForwarder(t *testing.T) *Forwarder {
	t.Helper()
	return &Forwarder{
		Client: &http.Client{},
		Log:    zaptest.NewLogger(t),
	}
}

// upstreamRecord captures what the fake backend saw.
type upstreamRecord struct {
	Method string
	Path   string
	Query  string
	Cookie string
	Body   []byte
	Header http.Header
}

func fakeUpstream(t *testing.T, status int, body string, header http.Header, rec *upstreamRecord) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.RawQuery
		rec.Cookie = r.Header.Get("Cookie")
		rec.Header = r.Header.Clone()
		rec.Body, _ = io.ReadAll(r.Body)
		for k, vals := range header {
			for _, v := range vals {
				w.Header().Add(k, v)
			}
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// serveRoute runs one request through a single-route chi router so
// path parameters resolve the way they do in production.
func serveRoute(f *Forwarder, rt Route, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(rt.Method, rt.GatewayPattern(), f.Handler(rt))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestForward_PathSubstitution(t *testing.T) {
	var rec upstreamRecord
	srv := fakeUpstream(t, http.StatusOK, `{"ok":true}`, nil, &rec)
	rt := Route{
		Method:  http.MethodPut,
		Prefix:  "rol",
		Pattern: "/{id}",
		Service: Service{Name: "auth-service", BaseURL: srv.URL},
		Path:    "/auth-service/rol/{id}",
		Body:    BodyJSON,
		Action:  "actualizar el rol",
	}
	body := bytes.NewBufferString(`{"nombre":"admin"}`)
	req := httptest.NewRequest(http.MethodPut, "/api-gateway/rol/42", body)
	req.Header.Set("Content-Type", "application/json")

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/auth-service/rol/42", rec.Path)
	assert.JSONEq(t, `{"nombre":"admin"}`, string(rec.Body))
}

func TestForward_Passthrough(t *testing.T) {
	var rec upstreamRecord
	srv := fakeUpstream(t, http.StatusOK, `{"id":99,"nombre":"Nike"}`, nil, &rec)
	rt := Route{
		Method:  http.MethodGet,
		Prefix:  "marca",
		Pattern: "/{id}",
		Service: Service{Name: "producto-service", BaseURL: srv.URL},
		Path:    "/producto-service/marca/{id}",
		Action:  "obtener la marca",
	}
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/marca/99", nil)
	req.Header.Set("Cookie", "token=abc")

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":99,"nombre":"Nike"}`, w.Body.String())
	assert.Equal(t, "/producto-service/marca/99", rec.Path)
	assert.Equal(t, "token=abc", rec.Cookie)
}

func TestForward_QueryRelay(t *testing.T) {
	var rec upstreamRecord
	srv := fakeUpstream(t, http.StatusOK, `[]`, nil, &rec)
	rt := Route{
		Method:  http.MethodGet,
		Prefix:  "promocion",
		Pattern: "/",
		Service: Service{Name: "producto-service", BaseURL: srv.URL},
		Path:    "/producto-service/promocion",
		Action:  "obtener las promociones",
	}
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/promocion?page=2&limit=10", nil)

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "page=2&limit=10", rec.Query)
}

func TestForward_UpstreamError(t *testing.T) {
	var rec upstreamRecord
	srv := fakeUpstream(t, http.StatusNotFound, `{"message":"Marca no encontrada"}`, nil, &rec)
	rt := Route{
		Method:  http.MethodGet,
		Prefix:  "marca",
		Pattern: "/{id}",
		Service: Service{Name: "producto-service", BaseURL: srv.URL},
		Path:    "/producto-service/marca/{id}",
		Action:  "obtener la marca",
	}
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/marca/7", nil)

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Marca no encontrada"}`, w.Body.String())
}

func TestForward_UpstreamErrorFallbackMessage(t *testing.T) {
	var rec upstreamRecord
	srv := fakeUpstream(t, http.StatusBadRequest, `nonsense`, nil, &rec)
	rt := Route{
		Method:  http.MethodDelete,
		Prefix:  "marca",
		Pattern: "/{id}",
		Service: Service{Name: "producto-service", BaseURL: srv.URL},
		Path:    "/producto-service/marca/{id}",
		Action:  "eliminar la marca",
	}
	req := httptest.NewRequest(http.MethodDelete, "/api-gateway/marca/7", nil)

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Error al eliminar la marca."}`, w.Body.String())
}

func TestForward_UpstreamUnreachable(t *testing.T) {
	rt := Route{
		Method:  http.MethodGet,
		Prefix:  "marca",
		Pattern: "/",
		Service: Service{Name: "producto-service", BaseURL: "http://127.0.0.1:1"},
		Path:    "/producto-service/marca",
		Action:  "obtener las marcas",
	}
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/marca", nil)

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Error de conexión con producto-service."}`, w.Body.String())
}

func TestForward_AuthorizationRelay(t *testing.T) {
	var rec upstreamRecord
	srv := fakeUpstream(t, http.StatusOK, `[]`, nil, &rec)
	rt := Route{
		Method:  http.MethodGet,
		Prefix:  "marca",
		Pattern: "/",
		Service: Service{Name: "producto-service", BaseURL: srv.URL},
		Path:    "/producto-service/marca",
		Action:  "obtener las marcas",
	}
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/marca", nil)
	req.Header.Set("Authorization", "Bearer abc")

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer abc", rec.Header.Get("Authorization"))
}

func TestForward_JSONBodyTooLarge(t *testing.T) {
	var rec upstreamRecord
	srv := fakeUpstream(t, http.StatusOK, `{}`, nil, &rec)
	rt := Route{
		Method:  http.MethodPost,
		Prefix:  "producto",
		Pattern: "/",
		Service: Service{Name: "producto-service", BaseURL: srv.URL},
		Path:    "/producto-service/producto",
		Body:    BodyJSON,
		Action:  "crear el producto",
	}
	req := httptest.NewRequest(http.MethodPost, "/api-gateway/producto",
		bytes.NewReader(make([]byte, maxBodyBytes+1)))
	req.Header.Set("Content-Type", "application/json")

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	// The oversized body never reaches the upstream.
	assert.Empty(t, rec.Method)
}

// A shutdown of the serving process cancels forwards still waiting on
// an upstream, through the server's base context.
func TestForward_ShutdownAbandonsInFlight(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(upstream.Close)

	rt := Route{
		Method:  http.MethodGet,
		Prefix:  "marca",
		Pattern: "/",
		Service: Service{Name: "producto-service", BaseURL: upstream.URL},
		Path:    "/producto-service/marca",
		Action:  "obtener las marcas",
	}
	f := newForwarder(t)
	router := chi.NewRouter()
	router.Method(rt.Method, rt.GatewayPattern(), f.Handler(rt))

	appCtx, cancel := context.WithCancel(context.Background())
	gw := httptest.NewUnstartedServer(router)
	gw.Config.BaseContext = func(net.Listener) context.Context { return appCtx }
	gw.Start()
	t.Cleanup(gw.Close)

	type result struct {
		code int
		body []byte
	}
	done := make(chan result, 1)
	go func() {
		resp, err := http.Get(gw.URL + "/api-gateway/marca")
		if err != nil {
			t.Error(err)
			done <- result{}
			return
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		done <- result{code: resp.StatusCode, body: body}
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case got := <-done:
		assert.Equal(t, http.StatusInternalServerError, got.code)
		assert.JSONEq(t, `{"success":false,"error":"Error de conexión con producto-service."}`, string(got.body))
	case <-time.After(5 * time.Second):
		t.Fatal("forward kept waiting on the upstream after shutdown")
	}
}

func TestForward_SetCookieRelay(t *testing.T) {
	var rec upstreamRecord
	header := http.Header{}
	header.Add("Set-Cookie", "token=abc; Path=/; HttpOnly")
	header.Add("Set-Cookie", "refreshToken=def; Path=/; HttpOnly")
	srv := fakeUpstream(t, http.StatusOK, `{"success":true}`, header, &rec)
	rt := Route{
		Method:  http.MethodPost,
		Prefix:  "usuario",
		Pattern: "/login",
		Service: Service{Name: "auth-service", BaseURL: srv.URL},
		Path:    "/auth-service/usuario/login",
		Body:    BodyJSON,
		Action:  "iniciar sesión",
	}
	req := httptest.NewRequest(http.MethodPost, "/api-gateway/usuario/login",
		bytes.NewBufferString(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{
		"token=abc; Path=/; HttpOnly",
		"refreshToken=def; Path=/; HttpOnly",
	}, w.Result().Header.Values("Set-Cookie"))
}

func TestForward_LocationRelay(t *testing.T) {
	var rec upstreamRecord
	header := http.Header{}
	header.Set("Location", "https://front.example.com/after-login")
	header.Add("Set-Cookie", "token=abc; Path=/")
	srv := fakeUpstream(t, http.StatusFound, "", header, &rec)
	rt := Route{
		Method:  http.MethodGet,
		Prefix:  "usuario",
		Pattern: "/auth/google/callback",
		Service: Service{Name: "auth-service", BaseURL: srv.URL},
		Path:    "/auth-service/usuario/auth/google/callback",
		Action:  "completar el inicio de sesión con Google",
	}
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/usuario/auth/google/callback?code=xyz", nil)

	// Client.Do must not follow the backend redirect itself.
	f := newForwarder(t)
	f.Client = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	w := serveRoute(f, rt, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://front.example.com/after-login", w.Result().Header.Get("Location"))
	assert.Equal(t, "token=abc; Path=/", w.Result().Header.Get("Set-Cookie"))
	assert.Equal(t, "code=xyz", rec.Query)
}

func TestForward_MultipartRelay(t *testing.T) {
	var rec upstreamRecord
	srv := fakeUpstream(t, http.StatusCreated, `{"id":1}`, nil, &rec)
	rt := Route{
		Method:  http.MethodPost,
		Prefix:  "producto-color",
		Pattern: "/",
		Service: Service{Name: "producto-service", BaseURL: srv.URL},
		Path:    "/producto-service/producto-color",
		Body:    BodyMultipart,
		Action:  "crear el color de producto",
	}

	var inbound bytes.Buffer
	mw := multipart.NewWriter(&inbound)
	require.NoError(t, mw.WriteField("color_id", "3"))
	part, err := mw.CreateFormFile("imagen", "zapato.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api-gateway/producto-color", &inbound)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := serveRoute(newForwarder(t), rt, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The upstream body is a fresh multipart form with a new boundary
	// that still carries both parts.
	mt, params, err := mime.ParseMediaType(rec.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mt)
	assert.NotEqual(t, mw.Boundary(), params["boundary"])

	mr := multipart.NewReader(bytes.NewReader(rec.Body), params["boundary"])
	form, err := mr.ReadForm(maxMultipartMemory)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, form.Value["color_id"])
	require.Len(t, form.File["imagen"], 1)
	fh := form.File["imagen"][0]
	assert.Equal(t, "zapato.png", fh.Filename)
	fc, err := fh.Open()
	require.NoError(t, err)
	defer fc.Close()
	data, err := io.ReadAll(fc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestCheckoutBody(t *testing.T) {
	ctx := authContext(t, 42, nil)
	out, err := checkoutBody(ctx, []byte(`{"items":[{"id":1,"qty":2}],"userId":999}`))
	require.NoError(t, err)
	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &got))
	assert.JSONEq(t, `[{"id":1,"qty":2}]`, string(got["items"]))
	// The client-supplied userId is discarded.
	assert.JSONEq(t, `42`, string(got["userId"]))

	out, err = checkoutBody(ctx, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"userId":42}`, string(out))
}
